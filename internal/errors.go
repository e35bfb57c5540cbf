package internal

import (
	"errors"
	"fmt"
)

// ErrNoPriorActivity is returned by Builder.Generate when a repository has no
// checkout entries dated yesterday, so today's first session has no starting
// boundary to bridge from.
var ErrNoPriorActivity = errors.New("no prior-day activity recorded")

// ReflogError represents errors parsing a reflog entry
type ReflogError struct {
	Line string
	Err  error
}

func (e *ReflogError) Error() string {
	return fmt.Sprintf("reflog error %q: %v", e.Line, e.Err)
}

func (e *ReflogError) Unwrap() error {
	return e.Err
}

// StoreError represents errors reading or writing persisted repository state
type StoreError struct {
	Op   string // "open", "load", "persist", "reset"
	Repo string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Repo, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConfigError represents an unsupported setting value
type ConfigError struct {
	Key   string
	Value interface{}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: unsupported value %v for %s", e.Value, e.Key)
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
