package ops

import (
	"encoding/json"
	"os"
	"strings"

	"opskit/pkg/models"

	"github.com/pkg/errors"
)

// ReadJSONFile parses the JSON document stored at path.
func (t *Toolkit) ReadJSONFile(path string) (models.Value, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.logger.Error().Str("path", path).Msg("File not found")
		return models.Null(), &NotFoundError{Path: path}
	} else if err != nil {
		return models.Null(), errors.Wrapf(err, "failed to read %s", path)
	}

	var value models.Value
	if err := json.Unmarshal(data, &value); err != nil {
		parseErr := &ParseError{Path: path, Err: err}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			parseErr.Offset = syntaxErr.Offset
		}
		t.logger.Error().Str("path", path).Err(err).Msg("Invalid JSON")
		return models.Null(), parseErr
	}

	return value, nil
}

// WriteJSONFile serializes data to path, indenting nested levels by indent spaces.
// A non-positive indent writes compact JSON. The file is created or truncated.
func (t *Toolkit) WriteJSONFile(data interface{}, path string, indent int) error {
	var (
		encoded []byte
		err     error
	)
	if indent > 0 {
		encoded, err = json.MarshalIndent(data, "", strings.Repeat(" ", indent))
	} else {
		encoded, err = json.Marshal(data)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to encode JSON for %s", path)
	}

	if err := os.WriteFile(path, encoded, filePerm); err != nil {
		t.logger.Error().Str("path", path).Err(err).Msg("Failed to write JSON file")
		return errors.Wrapf(err, "failed to write %s", path)
	}

	t.logger.Info().Str("path", path).Int("bytes", len(encoded)).Msg("Data written")
	return nil
}
