package feed

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a single feed resolution failed.
type ErrorKind int

const (
	// ErrorNetwork covers unreachable upstreams, timeouts and non-2xx responses.
	ErrorNetwork ErrorKind = iota
	// ErrorParse covers malformed XML, an unrecognized dialect, a missing
	// required field or an unparseable date.
	ErrorParse
	// ErrorCache covers storage faults in the document cache.
	ErrorCache
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorNetwork:
		return "network"
	case ErrorParse:
		return "parse"
	case ErrorCache:
		return "cache"
	}
	return "unknown"
}

// ErrUnknownSyntax marks a document that is neither RSS nor Atom.
var ErrUnknownSyntax = errors.New("unknown feed syntax")

// FetchError is the typed failure of one feed resolution. It aborts only the
// feed it belongs to; the aggregate fan-out drops the feed and carries on.
type FetchError struct {
	Kind ErrorKind
	Feed string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("feed %q: %s: %v", e.Feed, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf extracts the error kind from a resolution error.
func KindOf(err error) (ErrorKind, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
