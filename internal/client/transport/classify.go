package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"syscall"
)

// classifyNoResponse maps a failure where no HTTP response arrived.
// Timeout and cancellation win over connectivity checks.
func (t *Transport) classifyNoResponse(ctx context.Context, err error) *Error {
	if isTimeout(ctx, err) {
		return &Error{Kind: KindTimeout, Message: MsgTimeout, Err: err}
	}
	if t.isOffline(err) {
		return &Error{Kind: KindOffline, Message: MsgOffline, Err: err}
	}
	return &Error{Kind: KindConnection, Message: MsgConnection, Err: err}
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// isOffline defers to the connectivity probe when one is installed, so a
// DNS failure on a connected host stays a connection error. Without a probe
// resolver and unreachable-network errors are the only signal.
func (t *Transport) isOffline(err error) bool {
	if t.online != nil {
		return !t.online()
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.EHOSTUNREACH)
}

// serverMessage extracts the backend's error text from a JSON body
// shaped like {"message": "..."} or {"error": "..."}.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
