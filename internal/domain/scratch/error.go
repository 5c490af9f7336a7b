package scratch

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrIneligible       = errors.New("scratch is not allowed yet")
	ErrAllocationFailed = errors.New("allocation failed")
	ErrUserNotFound     = errors.New("user not found")
)

// IneligibleError is returned when the user is still cooling down or asked
// for a bonus scratch without a grant.
type IneligibleError struct {
	Remaining time.Duration
}

func (e IneligibleError) Error() string {
	return fmt.Sprintf("%v, next scratch in %s", ErrIneligible, e.Remaining)
}

func (e IneligibleError) Unwrap() error {
	return ErrIneligible
}

func allocationFailed(err error) error {
	return fmt.Errorf("%w: %v", ErrAllocationFailed, err)
}
