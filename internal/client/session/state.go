package session

import "github.com/dmitrijs2005/challengehub/internal/client/models"

// Status is the authentication lifecycle position.
type Status int

const (
	StatusAnonymous Status = iota
	StatusAuthenticating
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is a point-in-time copy of the session. IsAuthenticated implies a
// non-empty Token.
//
// PendingConfirmation is set when the session was restored from storage and
// the server has not yet confirmed the token.
type State struct {
	User                *models.User
	Token               string
	IsAuthenticated     bool
	IsLoading           bool
	Error               string
	Status              Status
	PendingConfirmation bool
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
