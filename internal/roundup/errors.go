package roundup

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindMalformedRequest  Kind = "MalformedRequest"
	KindPublisherNotFound Kind = "PublisherNotFound"
	KindNetwork           Kind = "NetworkError"
	KindStructureMissing  Kind = "DocumentStructureMissing"
	KindInternal          Kind = "InternalExtractionError"
)

var (
	ErrPublisherNotFound = errors.New("publisher not found")
	ErrMissingHref       = errors.New("anchor has no href")
)

// Error is a request-level failure. Field-level absence never produces one.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "roundup error"
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain, or "" when
// err was not produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
