package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound is the durable-store miss sentinel. It never
	// crosses the repository boundary; reads self-heal instead.
	ErrRecordNotFound = errors.New("record not found")

	// ErrScoringInput marks profile preference data the scoring engine
	// cannot use (NaN or an inverted wave-size range).
	ErrScoringInput = errors.New("invalid scoring input")
)

// PersistenceError is the only error the profile repository surfaces to
// callers: both the durable write and the fallback write failed.
type PersistenceError struct {
	DurableErr  error
	FallbackErr error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("profile persistence failed: durable: %v; fallback: %v", e.DurableErr, e.FallbackErr)
}

func (e *PersistenceError) Unwrap() error {
	return e.DurableErr
}
