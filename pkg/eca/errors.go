package eca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule is returned when a rule is built from an entry outside
	// {0, 1} or a number outside [0, 255].
	ErrInvalidRule = errors.New("eca: invalid rule")

	// ErrNotSimulated is returned by observers on an automaton without history.
	ErrNotSimulated = errors.New("eca: automaton not simulated")

	// ErrWorkerFailure is matched by every *WorkerError.
	ErrWorkerFailure = errors.New("eca: worker failure")
)

// WorkerError reports the workers of a SimulateAll run that failed or panicked.
type WorkerError struct {
	Failures int
	First    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("eca: %d worker(s) failed, first: %v", e.Failures, e.First)
}

// Unwrap exposes both ErrWorkerFailure and the first worker error.
func (e *WorkerError) Unwrap() []error {
	return []error{ErrWorkerFailure, e.First}
}
