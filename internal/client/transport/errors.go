package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies why a request failed.
type Kind int

const (
	// KindUnknown covers failures outside the transport itself, such as an
	// undecodable success body.
	KindUnknown Kind = iota
	// KindTimeout: the client timeout fired or the caller cancelled.
	KindTimeout
	// KindOffline: no response and the host looks offline.
	KindOffline
	// KindConnection: no response for any other reason.
	KindConnection
	// KindServer: the server answered with status >= 400.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindOffline:
		return "offline"
	case KindConnection:
		return "connection"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// User-facing messages for failures where no response was received.
const (
	MsgTimeout    = "The server is not responding. Please try again later."
	MsgOffline    = "No internet connection. Please check your connection."
	MsgConnection = "Connection error. Please try again."
)

// Sentinels for errors.Is against *Error.
var (
	ErrTimeout      = errors.New("request timed out")
	ErrOffline      = errors.New("client offline")
	ErrConnection   = errors.New("connection failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is the single failure shape the client surfaces: a short
// human-readable Message plus the classification behind it.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("request failed: %d %s", e.Status, http.StatusText(e.Status))
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request failed"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrOffline:
		return e.Kind == KindOffline
	case ErrConnection:
		return e.Kind == KindConnection
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// Normalize turns any error into an *Error with a non-empty Message.
// A transport error keeps its classification and its message when it has
// one; otherwise fallback is used. Normalize(nil, ...) is nil.
func Normalize(err error, fallback string) *Error {
	if err == nil {
		return nil
	}

	var te *Error
	if errors.As(err, &te) {
		out := *te
		if out.Message == "" {
			out.Message = fallback
		}
		return &out
	}
	return &Error{Kind: KindUnknown, Message: fallback, Err: err}
}

// Message returns the user-facing message carried by err, or fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	return Normalize(err, fallback).Message
}
