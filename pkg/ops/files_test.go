package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// FilesTestSuite tests directory and plain file helpers
type FilesTestSuite struct {
	suite.Suite
	tempDir string
	toolkit *Toolkit
}

// SetupTest runs before each test
func (s *FilesTestSuite) SetupTest() {
	var err error
	s.tempDir, err = os.MkdirTemp("", "files-test-*")
	s.Require().NoError(err)
	s.toolkit = New(zerolog.Nop(), 0)
}

// TearDownTest runs after each test
func (s *FilesTestSuite) TearDownTest() {
	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}
}

// TestCreateDirectoryTwice tests that creating a directory is idempotent
func (s *FilesTestSuite) TestCreateDirectoryTwice() {
	for _, parents := range []bool{true, false} {
		path := filepath.Join(s.tempDir, "twice")

		s.NoError(s.toolkit.CreateDirectory(path, parents))
		s.NoError(s.toolkit.CreateDirectory(path, parents))
		s.DirExists(path)

		s.Require().NoError(os.RemoveAll(path))
	}
}

// TestCreateDirectoryParents tests creation of missing ancestors
func (s *FilesTestSuite) TestCreateDirectoryParents() {
	path := filepath.Join(s.tempDir, "a", "b", "c")

	s.NoError(s.toolkit.CreateDirectory(path, true))
	s.DirExists(path)
}

// TestCreateDirectoryNoParents tests that missing ancestors fail without parents
func (s *FilesTestSuite) TestCreateDirectoryNoParents() {
	path := filepath.Join(s.tempDir, "missing", "child")

	err := s.toolkit.CreateDirectory(path, false)
	s.Error(err)
	s.ErrorIs(err, os.ErrNotExist)
	s.NoDirExists(path)
}

// TestCreateDirectoryOverFile tests that an existing file at the path is an error
func (s *FilesTestSuite) TestCreateDirectoryOverFile() {
	path := filepath.Join(s.tempDir, "file")
	s.Require().NoError(os.WriteFile(path, []byte("x"), 0644))

	s.Error(s.toolkit.CreateDirectory(path, false))
	s.Error(s.toolkit.CreateDirectory(path, true))
}

// TestFileExists tests the existence check
func (s *FilesTestSuite) TestFileExists() {
	path := filepath.Join(s.tempDir, "present.txt")
	s.Require().NoError(os.WriteFile(path, nil, 0644))

	s.True(s.toolkit.FileExists(path))
	s.True(s.toolkit.FileExists(s.tempDir))
	s.False(s.toolkit.FileExists(filepath.Join(s.tempDir, "absent.txt")))
	s.False(s.toolkit.FileExists(""))
}

// TestReadFileLines tests line splitting and trailing whitespace removal
func (s *FilesTestSuite) TestReadFileLines() {
	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{"trailing_newline", "one\ntwo\n", []string{"one", "two"}},
		{"no_trailing_newline", "one\ntwo", []string{"one", "two"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"trailing_spaces", "one  \t\ntwo ", []string{"one", "two"}},
		{"leading_spaces_kept", "  indented\n", []string{"  indented"}},
		{"blank_lines", "\n\nthree\n", []string{"", "", "three"}},
		{"empty", "", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			path := filepath.Join(s.tempDir, tc.name+".txt")
			s.Require().NoError(os.WriteFile(path, []byte(tc.content), 0644))

			lines, err := s.toolkit.ReadFileLines(path)
			s.Require().NoError(err)
			s.Equal(tc.expected, lines)
		})
	}
}

// TestReadFileLinesLongLine tests lines longer than a scanner token
func (s *FilesTestSuite) TestReadFileLinesLongLine() {
	long := make([]byte, 200*1024)
	for i := range long {
		long[i] = 'x'
	}
	path := filepath.Join(s.tempDir, "long.txt")
	s.Require().NoError(os.WriteFile(path, append(long, []byte("\nshort\n")...), 0644))

	lines, err := s.toolkit.ReadFileLines(path)
	s.Require().NoError(err)
	s.Require().Len(lines, 2)
	s.Len(lines[0], len(long))
	s.Equal("short", lines[1])
}

// TestReadFileLinesMissing tests that an absent file is a NotFoundError
func (s *FilesTestSuite) TestReadFileLinesMissing() {
	path := filepath.Join(s.tempDir, "missing.txt")

	lines, err := s.toolkit.ReadFileLines(path)
	s.Nil(lines)

	var notFound *NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal(path, notFound.Path)
}

// TestWriteFile tests creating and overwriting a file
func (s *FilesTestSuite) TestWriteFile() {
	path := filepath.Join(s.tempDir, "out.txt")

	s.Require().NoError(s.toolkit.WriteFile("first version\n", path))
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("first version\n", string(data))

	s.Require().NoError(s.toolkit.WriteFile("v2", path))
	data, err = os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("v2", string(data))
}

// TestWriteFileMissingDirectory tests writing into a missing directory
func (s *FilesTestSuite) TestWriteFileMissingDirectory() {
	err := s.toolkit.WriteFile("x", filepath.Join(s.tempDir, "nope", "out.txt"))
	s.Error(err)
	s.ErrorIs(err, os.ErrNotExist)
}

// TestSuite runs the files test suite
func TestFilesSuite(t *testing.T) {
	suite.Run(t, new(FilesTestSuite))
}
