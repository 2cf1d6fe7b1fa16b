package greeter

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// BindReason classifies a bind failure
type BindReason int

const (
	ReasonUnknown BindReason = iota
	ReasonInUse
	ReasonPermission
	ReasonInvalidPort
)

func (r BindReason) String() string {
	switch r {
	case ReasonInUse:
		return "address in use"
	case ReasonPermission:
		return "permission denied"
	case ReasonInvalidPort:
		return "invalid port"
	}
	return "unknown"
}

// ErrInvalidPort is wrapped by a BindError when the port is out of range
var ErrInvalidPort = errors.New("port out of range")

// BindError is returned when the listener cannot be bound
type BindError struct {
	Addr   string
	Port   int
	Reason BindReason
	// Hint is a human readable diagnostic filled in by Diagnose
	Hint string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("cannot bind %s: %s: %v", e.Addr, e.Reason, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

func newBindError(addr string, port int, err error) *BindError {
	return &BindError{
		Addr:   addr,
		Port:   port,
		Reason: classify(err),
		Err:    err,
	}
}

func classify(err error) BindReason {
	switch {
	case errors.Is(err, ErrInvalidPort):
		return ReasonInvalidPort
	case errors.Is(err, unix.EADDRINUSE):
		return ReasonInUse
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return ReasonPermission
	}
	return ReasonUnknown
}
