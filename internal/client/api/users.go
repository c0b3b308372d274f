package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/transport"
)

const (
	msgProfileFailed        = "Failed to fetch profile."
	msgUpdateProfileFailed  = "Failed to update profile."
	msgUpdatePasswordFailed = "Failed to change password."
	msgDeleteAccountFailed  = "Failed to delete account."
	msgHistoryFailed        = "Failed to fetch challenge history."
	msgUserBadgesFailed     = "Failed to fetch badges."
	msgSubmitProofFailed    = "Failed to submit proof."
)

func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/user/profile", &raw, msgProfileFailed); err != nil {
		return nil, err
	}
	u, err := unwrapUser(raw)
	if err != nil {
		return nil, transport.Normalize(err, msgProfileFailed)
	}
	return u, nil
}

// UpdateProfile sends the non-empty fields and the optional image as
// multipart and returns the user object from the response as-is, which may
// hold only the fields the server changed.
func (c *Client) UpdateProfile(ctx context.Context, p models.ProfileUpdate, image *models.Upload) (json.RawMessage, error) {
	form := &transport.Form{Fields: map[string]string{}}
	if p.Firstname != "" {
		form.Fields["firstname"] = p.Firstname
	}
	if p.Lastname != "" {
		form.Fields["lastname"] = p.Lastname
	}
	if image != nil {
		form.Files = uploads("profileImage", *image)
	}

	var res struct {
		User json.RawMessage `json:"user"`
	}
	r := &transport.Request{Method: http.MethodPatch, Path: "/user/update-profile", Form: form}
	if err := c.call(ctx, r, &res, msgUpdateProfileFailed); err != nil {
		return nil, err
	}
	return res.User, nil
}

func (c *Client) UpdatePassword(ctx context.Context, p models.PasswordChange) error {
	_, err := c.send(ctx, http.MethodPatch, "/user/update-password", p, msgUpdatePasswordFailed)
	return err
}

func (c *Client) DeleteAccount(ctx context.Context) error {
	_, err := c.send(ctx, http.MethodDelete, "/user/delete-account", nil, msgDeleteAccountFailed)
	return err
}

func (c *Client) ChallengeHistory(ctx context.Context) ([]models.Participation, error) {
	return getList[models.Participation](ctx, c, "/user/challenge-history", "history", msgHistoryFailed)
}

func (c *Client) UserBadges(ctx context.Context) ([]models.UserBadge, error) {
	return getList[models.UserBadge](ctx, c, "/user/badges", "badges", msgUserBadgesFailed)
}

// SubmitChallengeProof attaches a single proof file to a joined challenge.
func (c *Client) SubmitChallengeProof(ctx context.Context, challengeID models.ID, note string, file *models.Upload) (models.Ack, error) {
	form := &transport.Form{Fields: map[string]string{"note": note}}
	if file != nil {
		form.Files = uploads("proofFile", *file)
	}

	r := &transport.Request{Method: http.MethodPatch, Path: endpoint("/user/challenges/%s/submit", challengeID), Form: form}
	return c.ack(ctx, r, msgSubmitProofFailed)
}

// unwrapUser accepts both {"user": {...}} and a bare user object.
func unwrapUser(raw json.RawMessage) (*models.User, error) {
	var wrapped struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.User != nil {
		return wrapped.User, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
