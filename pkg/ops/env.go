package ops

import "os"

// GetEnvironmentVariable returns the value of name, failing with *MissingConfigError when it is unset.
// A variable set to the empty string counts as set.
func (t *Toolkit) GetEnvironmentVariable(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		t.logger.Debug().Str("name", name).Msg("Environment variable not set")
		return "", &MissingConfigError{Name: name}
	}
	return value, nil
}

// GetEnvironmentVariableOr returns the value of name, or fallback when it is unset.
func (t *Toolkit) GetEnvironmentVariableOr(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}
