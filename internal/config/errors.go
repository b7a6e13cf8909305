package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates the agent config file is missing, not a
	// regular file, or unreadable. Non-fatal: the agent runs on defaults.
	ErrConfigNotFound = errors.New("agent config file not found")

	// ErrFrozen indicates a bind attempt on a config that already passed
	// the validation gate.
	ErrFrozen = errors.New("agent config is frozen")
)

// InitializationError is the fatal outcome of the validation gate: a
// mandatory configuration key is blank after all layers were applied.
type InitializationError struct {
	// Key is the dotted configuration key that is missing.
	Key string
}

func newInitializationError(key string) *InitializationError {
	return &InitializationError{Key: key}
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("`%s` is missing", e.Key)
}
