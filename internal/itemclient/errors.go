package itemclient

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by client errors carrying a 404 status.
var ErrNotFound = errors.New("not found")

// Kind is a coarse-grained categorization of gateway failures.
type Kind string

const (
	KindClient    Kind = "client_error"
	KindServer    Kind = "server_error"
	KindTransport Kind = "transport_error"
)

// Error carries the classified outcome of a failed call to the item service.
// Message holds the response body text for client and server kinds.
type Error struct {
	Op      string
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Status != 0 {
		base += fmt.Sprintf(" (status=%d)", e.Status)
	}
	if e.Message != "" {
		base += ": " + e.Message
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func clientError(op string, status int, message string) *Error {
	e := &Error{Op: op, Kind: KindClient, Status: status, Message: message}
	if status == 404 {
		e.Err = ErrNotFound
	}
	return e
}

func serverError(op string, status int, message string) *Error {
	return &Error{Op: op, Kind: KindServer, Status: status, Message: message}
}

func transportError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindTransport, Err: err}
}
