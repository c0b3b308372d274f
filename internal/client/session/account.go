package session

import (
	"bytes"
	"context"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/transport"
	"github.com/dmitrijs2005/challengehub/internal/common"
)

const (
	msgUpdateProfileFailed  = "Failed to update profile."
	msgUpdatePasswordFailed = "Failed to change password."
	msgDeleteAccountFailed  = "Failed to delete account."
)

// UpdateProfile sends the changed fields and optional image, then merges the
// returned user fields into the current user. Fields the response omits are
// kept. A response that arrives after the session changed hands is dropped.
func (m *Manager) UpdateProfile(ctx context.Context, p models.ProfileUpdate, image *models.Upload) (*models.User, error) {
	backend, err := m.backendOrErr()
	if err != nil {
		return nil, err
	}

	token := m.State().Token
	m.begin(ctx, false)

	patch, err := backend.UpdateProfile(ctx, p, image)
	if err != nil {
		m.log.Warn(ctx, "profile update failed", "error", err)
		return nil, m.endWithError(ctx, err, transport.Message(err, msgUpdateProfileFailed))
	}

	var (
		merged   *models.User
		mergeErr error
	)
	snap := m.end(ctx, true, func(s *State) {
		if s.Token != token {
			return
		}
		patch = bytes.TrimSpace(patch)
		if len(patch) == 0 || bytes.Equal(patch, []byte("null")) {
			return
		}
		merged, mergeErr = s.User.Merge(patch)
		if mergeErr != nil {
			s.Error = msgUpdateProfileFailed
			return
		}
		s.User = merged
	})
	if mergeErr != nil {
		m.log.Error(ctx, "cannot merge profile response", "error", mergeErr)
		return nil, normalize(mergeErr, msgUpdateProfileFailed)
	}
	return snap.User, nil
}

// UpdatePassword changes the password. A confirm that differs from next
// fails locally with common.ErrPasswordMismatch and no request is made.
func (m *Manager) UpdatePassword(ctx context.Context, old, next, confirm string) error {
	backend, err := m.backendOrErr()
	if err != nil {
		return err
	}
	if next != confirm {
		m.fail(ctx, common.ErrPasswordMismatch.Error())
		return common.ErrPasswordMismatch
	}

	m.begin(ctx, false)

	err = backend.UpdatePassword(ctx, models.PasswordChange{OldPassword: old, NewPassword: next, ConfirmPassword: confirm})
	if err != nil {
		m.log.Warn(ctx, "password update failed", "error", err)
		return m.endWithError(ctx, err, transport.Message(err, msgUpdatePasswordFailed))
	}

	m.end(ctx, false, func(*State) {})
	m.log.Info(ctx, "password updated")
	return nil
}

// DeleteAccount removes the account on the server and, on success, ends the
// session it was issued from.
func (m *Manager) DeleteAccount(ctx context.Context) error {
	backend, err := m.backendOrErr()
	if err != nil {
		return err
	}

	token := m.State().Token
	m.begin(ctx, false)

	if err := backend.DeleteAccount(ctx); err != nil {
		m.log.Warn(ctx, "account deletion failed", "error", err)
		return m.endWithError(ctx, err, transport.Message(err, msgDeleteAccountFailed))
	}

	m.end(ctx, true, func(s *State) {
		// A login that finished meanwhile belongs to another account.
		if s.Token != token {
			return
		}
		clearSession(s)
	})
	m.log.Info(ctx, "account deleted")
	return nil
}
