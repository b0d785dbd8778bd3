package gencache

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("gencache: invalid config")

// ConfigError reports an Options field New could not accept.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("gencache: invalid %s: %v", e.Field, e.Value)
	}
	return fmt.Sprintf("gencache: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
