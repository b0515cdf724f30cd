package ops

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// CreateDirectory creates path, and its missing ancestors when parents is set.
// An existing directory is not an error.
func (t *Toolkit) CreateDirectory(path string, parents bool) error {
	var err error
	if parents {
		err = os.MkdirAll(path, dirPerm)
	} else {
		err = os.Mkdir(path, dirPerm)
		if os.IsExist(err) {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				err = nil
			}
		}
	}
	if err != nil {
		t.logger.Error().Str("path", path).Err(err).Msg("Failed to create directory")
		return errors.Wrapf(err, "failed to create directory %s", path)
	}

	t.logger.Info().Str("path", path).Msg("Directory created/verified")
	return nil
}

// FileExists reports whether anything exists at path.
func (t *Toolkit) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFileLines returns the lines of path in order, with trailing whitespace removed.
func (t *Toolkit) ReadFileLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		t.logger.Error().Str("path", path).Msg("File not found")
		return nil, &NotFoundError{Path: path}
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			t.logger.Warn().Str("path", path).Err(closeErr).Msg("Failed to close file")
		}
	}()

	// Lines can be longer than a bufio.Scanner token.
	var lines []string
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
	}

	return lines, nil
}

// WriteFile replaces the content of path, creating the file if needed.
func (t *Toolkit) WriteFile(content, path string) error {
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		t.logger.Error().Str("path", path).Err(err).Msg("Failed to write file")
		return errors.Wrapf(err, "failed to write %s", path)
	}

	t.logger.Info().Str("path", path).Int("bytes", len(content)).Msg("Content written")
	return nil
}
