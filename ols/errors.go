package ols

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a single-term lookup matches zero or
	// several terms, or when a direct fetch yields nothing.
	ErrNotFound = errors.New("ols: term not found")
	// ErrEmptyResponse is returned by transports for a successful response without a body.
	ErrEmptyResponse = errors.New("ols: empty response body")
	// ErrPageCycle is returned when a "next" link points back to a page
	// already fetched in the same chain.
	ErrPageCycle = errors.New("ols: pagination links form a cycle")
	// ErrInvalidNotation is returned for identifiers of an unknown notation.
	ErrInvalidNotation = errors.New("ols: invalid identifier notation")
	// ErrNegativeDistance is returned when a traversal is asked for a negative hop count.
	ErrNegativeDistance = errors.New("ols: negative traversal distance")
)

// RequestError is returned for responses with a non-2xx status.
type RequestError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("ols: request failed: %d %v (%s)", e.StatusCode, e.Status, e.URL)
}

// TransportError wraps connectivity and decoding failures.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ols: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsNotFound reports whether err means the requested term does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// isMissing reports whether a direct fetch failed in a way that only tells
// the resource is not there: any non-2xx status or an empty body.
func isMissing(err error) bool {
	var re *RequestError
	return errors.As(err, &re) || errors.Is(err, ErrEmptyResponse)
}
