package pipeline

import (
	"fmt"
)

// ConfigError reports a missing mandatory credential.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// InputError reports an unusable request.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// SearchError wraps a failed search call.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return e.Err.Error()
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

func missingKeyError(provider string) error {
	return fmt.Errorf("Missing %s API Key", provider)
}
