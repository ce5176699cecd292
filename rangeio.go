package rangeio

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilValue      = errors.New("nil value inserted")
	ErrNotStream     = errors.New("not a stream")
	ErrStreamFailed  = errors.New("stream failed")
	ErrUnknownFlag   = errors.New("unknown flag")
	ErrInvalidFill   = errors.New("invalid fill character")
	ErrInvalidFormat = errors.New("invalid format")
)

// Inserter is implemented by values that know how to insert themselves into
// a stream. The stream hands control to InsertTo instead of formatting the
// value itself, so the implementation decides which formatting attributes it
// honors. Stateful delimiters, user types and deferred range writes all hook
// in this way.
//
// InsertTo is called even when the stream has already failed; inserting into
// a failed stream is a no-op, so most implementations need not check.
type Inserter interface {
	InsertTo(s Stream)
}

// IsStream reports whether v behaves like a stream. It is the capability
// check used by [Print] to tell a stream apart from the values being written.
func IsStream(v any) bool {
	_, ok := v.(Stream)
	return ok
}

// Print inserts args[1:] into args[0], which must be a [Stream]. It returns
// the stream's error if any insertion failed.
//
//	first, last := rangeio.Slice(xs)
//	err := rangeio.Print(out, "{ ", rangeio.Defer(first, last), " }")
func Print(args ...any) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no arguments", ErrNotStream)
	}
	if !IsStream(args[0]) {
		return fmt.Errorf("%w: %T", ErrNotStream, args[0])
	}
	s := args[0].(Stream)
	for _, a := range args[1:] {
		s = s.Insert(a)
	}
	return streamErr(s)
}

func streamErr(s Stream) error {
	if s.Good() {
		return nil
	}
	if e, ok := s.(interface{ Err() error }); ok && e.Err() != nil {
		return e.Err()
	}
	return ErrStreamFailed
}
