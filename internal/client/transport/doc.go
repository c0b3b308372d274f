// Package transport is the client's HTTP layer.
//
// # Overview
//
// A Transport is configured once with the API base URL and a bounded
// timeout (DefaultTimeout when unset). For every request it:
//  1. sets Content-Type (JSON, or the multipart boundary type for forms),
//     Accept and a fresh X-Request-ID;
//  2. asks its TokenSource for a bearer token and sets Authorization when
//     one exists;
//  3. runs the extra RequestInterceptors in registration order.
//
// # Error Handling
//
// Every failure is an *Error. Requests that get no response are classified
// as KindTimeout, KindOffline or KindConnection, each with a fixed
// user-facing message. Responses with status >= 400 become KindServer with
// the backend's message, if the body carried one. A 401 additionally
// notifies the UnauthorizedHandler registered at construction; that is the
// only way the transport reaches back into session state.
//
// Match classifications with errors.Is: ErrTimeout, ErrOffline,
// ErrConnection, ErrUnauthorized. Use Normalize to apply an
// operation-specific fallback message.
package transport
