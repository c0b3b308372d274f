package session

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/transport"
	"github.com/dmitrijs2005/challengehub/internal/common"
)

const (
	MsgLoginTimeout = "Login timed out. Please try again."

	msgLoginFailed    = "Login failed."
	msgRegisterFailed = "Registration failed."
	msgSessionFailed  = "Failed to fetch user data."
)

// Login authenticates with identity (email or username) and password. The
// attempt is abandoned after the login timeout; a timeout of either kind is
// reported as MsgLoginTimeout. On failure the previous session is left as
// it was and State().Error carries the message.
func (m *Manager) Login(ctx context.Context, identity, password string) (*models.User, error) {
	backend, err := m.backendOrErr()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(identity) == "" || password == "" {
		m.fail(ctx, common.ErrEmptyCredentials.Error())
		return nil, common.ErrEmptyCredentials
	}

	m.begin(ctx, true)

	lctx, cancel := context.WithTimeout(ctx, m.loginTimeout)
	defer cancel()

	res, err := backend.Login(lctx, models.Credentials{Identity: identity, Password: password})
	if err == nil && (res == nil || res.Token == "") {
		err = errors.New("login response carried no token")
	}
	if err != nil {
		msg := transport.Message(err, msgLoginFailed)
		if errors.Is(err, transport.ErrTimeout) || errors.Is(lctx.Err(), context.DeadlineExceeded) {
			msg = MsgLoginTimeout
		}
		m.log.Warn(ctx, "login failed", "identity", identity, "error", err)
		return nil, m.endWithError(ctx, err, msg)
	}

	m.signIn(ctx, res)
	m.log.Info(ctx, "logged in", "user", userName(res.User))
	return res.User, nil
}

// Register creates an account and signs it in. A non-empty ConfirmPassword
// must match Password.
func (m *Manager) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	backend, err := m.backendOrErr()
	if err != nil {
		return nil, err
	}
	if reg.ConfirmPassword != "" && reg.ConfirmPassword != reg.Password {
		m.fail(ctx, common.ErrPasswordMismatch.Error())
		return nil, common.ErrPasswordMismatch
	}

	m.begin(ctx, true)

	res, err := backend.Register(ctx, reg)
	if err == nil && (res == nil || res.Token == "") {
		err = errors.New("register response carried no token")
	}
	if err != nil {
		m.log.Warn(ctx, "registration failed", "username", reg.Username, "error", err)
		return nil, m.endWithError(ctx, err, transport.Message(err, msgRegisterFailed))
	}

	m.signIn(ctx, res)
	m.log.Info(ctx, "registered", "user", userName(res.User))
	return res.User, nil
}

// Logout clears user, token and any pending error and persists the
// anonymous record. It needs
// no server call and is safe to repeat.
func (m *Manager) Logout(ctx context.Context) {
	m.update(ctx, true, clearSession)
	m.log.Debug(ctx, "logged out")
}

// HandleUnauthorized is the transport's 401 hook: any rejected token ends
// the session.
func (m *Manager) HandleUnauthorized(ctx context.Context) {
	if m.State().Token != "" {
		m.log.Warn(ctx, "server rejected the session token, logging out")
	}
	m.Logout(ctx)
}

// FetchCurrentSession confirms the token with the server and refreshes the
// user. Without a token it does nothing. Any failure ends the session.
func (m *Manager) FetchCurrentSession(ctx context.Context) (*models.User, error) {
	backend, err := m.backendOrErr()
	if err != nil {
		return nil, err
	}

	token := m.State().Token
	if token == "" {
		return nil, nil
	}

	user, err := backend.CurrentUser(ctx)
	if err == nil && user == nil {
		err = errors.New("current user response carried no user")
	}
	if err != nil {
		m.log.Warn(ctx, "failed to fetch current user, logging out", "error", err)
		m.Logout(ctx)
		return nil, normalize(err, msgSessionFailed)
	}

	m.update(ctx, true, func(s *State) {
		// A login or logout that finished meanwhile owns the state now.
		if s.Token != token {
			return
		}
		s.User = user
		s.IsAuthenticated = true
		s.Status = StatusAuthenticated
		s.PendingConfirmation = false
	})
	return user, nil
}

func (m *Manager) signIn(ctx context.Context, res *models.AuthResult) {
	m.end(ctx, true, func(s *State) {
		s.User = res.User
		s.Token = res.Token
		s.IsAuthenticated = true
		s.Status = StatusAuthenticated
		s.PendingConfirmation = false
		s.Error = ""
	})
}

// endWithError closes an in-flight operation with msg as the visible error
// and returns err carrying that same message.
func (m *Manager) endWithError(ctx context.Context, err error, msg string) error {
	m.end(ctx, true, func(s *State) {
		s.Error = msg
		if s.Token != "" {
			s.Status = StatusAuthenticated
		} else {
			s.Status = StatusAnonymous
		}
	})
	e := normalize(err, msg)
	e.Message = msg
	return e
}

// fail records a locally detected error without touching the session.
func (m *Manager) fail(ctx context.Context, msg string) {
	m.update(ctx, false, func(s *State) { s.Error = msg })
}

func clearSession(s *State) {
	s.User = nil
	s.Token = ""
	s.IsAuthenticated = false
	s.Status = StatusAnonymous
	s.PendingConfirmation = false
	s.Error = ""
}

func normalize(err error, fallback string) *transport.Error {
	return transport.Normalize(err, fallback)
}
