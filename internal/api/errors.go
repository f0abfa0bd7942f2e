package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call.
type Kind int

const (
	// KindNetwork covers connectivity failures and timeouts: the request
	// never produced a usable response.
	KindNetwork Kind = iota + 1
	// KindAuth is a 401-equivalent response. The stored token has already
	// been cleared by the time the caller sees this error.
	KindAuth
	// KindValidation is any other 4xx; Detail carries the server's message
	// verbatim for the command layer to display.
	KindValidation
	// KindServer is a 5xx.
	KindServer
)

// Error is the failure of one backend call.
type Error struct {
	Kind    Kind
	Status  int
	Detail  string
	Timeout bool
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		if e.Timeout {
			return fmt.Sprintf("request timed out: %v", e.Err)
		}
		return fmt.Sprintf("request failed: %v", e.Err)
	case KindAuth:
		if e.Detail != "" {
			return fmt.Sprintf("not authenticated: %s", e.Detail)
		}
		return "not authenticated"
	case KindServer:
		return fmt.Sprintf("server error (status %d)", e.Status)
	default:
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("request rejected (status %d)", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func errorKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool { return errorKind(err, KindAuth) }

// IsValidation reports whether err is a 4xx rejection other than 401.
func IsValidation(err error) bool { return errorKind(err, KindValidation) }

// IsServer reports whether err is a 5xx response.
func IsServer(err error) bool { return errorKind(err, KindServer) }

// IsNetwork reports whether err is a connectivity failure or timeout.
func IsNetwork(err error) bool { return errorKind(err, KindNetwork) }

// IsTimeout reports whether err is specifically a request timeout.
func IsTimeout(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Timeout
}
