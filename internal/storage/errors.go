package storage

import (
	"errors"
	"fmt"
)

// ErrStorageFailure matches (errors.Is) every failure of the durable medium:
// unreachable backend, quota exceeded, undecodable record.
var ErrStorageFailure = errors.New("storage failure")

type FailureError struct {
	Op  string
	Key string
	Err error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

func (e *FailureError) Is(target error) bool {
	return target == ErrStorageFailure
}
