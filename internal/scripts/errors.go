package scripts

import (
	"errors"
	"fmt"

	"github.com/scriptbin/scriptbin/internal/store"
)

// ErrNotFound is the normal negative result for lookups by id or by linked
// pair. Callers branch on it; it is not a fault.
var ErrNotFound = errors.New("not found")

// ErrInvalidJSON rejects a payload that is not syntactically valid JSON at
// store time. Business semantics of the payload are the caller's problem;
// syntax is not.
var ErrInvalidJSON = errors.New("payload is not valid JSON")

// AllocationExhaustedError reports that the bounded insertion-retry budget
// ran out without landing a unique identifier. Effectively unreachable
// given the growth policy; surfaced as a server-side failure, never as a
// user input error.
type AllocationExhaustedError struct {
	// Category is the content namespace the allocation targeted.
	Category store.Category

	// Attempts is the exhausted insertion budget.
	Attempts int
}

// Error implements the error interface.
func (e *AllocationExhaustedError) Error() string {
	return fmt.Sprintf("allocation exhausted: no unique id for category %q after %d attempts", e.Category, e.Attempts)
}

// MalformedPayloadError reports a stored payload that no longer
// deserializes on read-back (corrupted storage). The record is unusable
// either way, so the error unwraps to ErrNotFound and callers that only
// branch on existence treat it as a miss.
type MalformedPayloadError struct {
	Category store.Category
	ID       string
}

// Error implements the error interface.
func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload: category %q id %q is not valid JSON", e.Category, e.ID)
}

// Unwrap makes the error a NotFound-equivalent.
func (e *MalformedPayloadError) Unwrap() error {
	return ErrNotFound
}

// IsNotFound returns true for the negative lookup result, including the
// malformed-payload case. Uses errors.Is to handle wrapped errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAllocationExhausted returns true if the error is retry-budget
// exhaustion. Uses errors.As to handle wrapped errors.
func IsAllocationExhausted(err error) bool {
	var ae *AllocationExhaustedError
	return errors.As(err, &ae)
}
