package ops

import "regexp"

// ParseLogFile returns the lines of path that contain a match for pattern, in file order.
// An empty pattern returns every line.
func (t *Toolkit) ParseLogFile(path, pattern string) ([]string, error) {
	var regex *regexp.Regexp
	if pattern != "" {
		var err error
		if regex, err = regexp.Compile(pattern); err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
	}

	lines, err := t.ReadFileLines(path)
	if err != nil {
		return nil, err
	}
	if regex == nil {
		return lines, nil
	}

	matched := make([]string, 0, len(lines))
	for _, line := range lines {
		if regex.MatchString(line) {
			matched = append(matched, line)
		}
	}

	t.logger.Debug().
		Str("path", path).
		Str("pattern", pattern).
		Int("lines", len(lines)).
		Int("matched", len(matched)).
		Msg("Log file filtered")

	return matched, nil
}
