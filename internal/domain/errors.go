package domain

import "fmt"

// ConfigError marks a validation failure raised eagerly at input time, as
// opposed to an unsatisfiable schedule (which is never an error — see
// domain.Result).
type ConfigError struct {
	Entity string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Entity, e.Reason)
}

func newConfigError(entity, format string, args ...any) *ConfigError {
	return &ConfigError{Entity: entity, Reason: fmt.Sprintf(format, args...)}
}
