package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup by identifier matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrRepositoryExecution is matched by every RepositoryExecutionError.
	ErrRepositoryExecution = errors.New("repository execution failed")
)

// RepositoryExecutionError wraps any failure raised while the store executes
// a statement: constraint violations, lost connections, bad SQL.
type RepositoryExecutionError struct {
	Op  string
	Err error
}

func (e *RepositoryExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryExecutionError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrRepositoryExecution) match without inspecting Op.
func (e *RepositoryExecutionError) Is(target error) bool {
	return target == ErrRepositoryExecution
}

// StartupConnectionError means the store could not be reached at boot.
// Nothing is served while it is unresolved.
type StartupConnectionError struct {
	Driver string
	Err    error
}

func (e *StartupConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s store: %v", e.Driver, e.Err)
}

func (e *StartupConnectionError) Unwrap() error { return e.Err }
