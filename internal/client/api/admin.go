package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
)

const (
	msgUsersFailed       = "Failed to fetch users."
	msgBanFailed         = "Failed to ban user."
	msgUnbanFailed       = "Failed to unban user."
	msgReviewProofFailed = "Failed to review proof."
)

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, c, "/admin/users", "users", msgUsersFailed)
}

func (c *Client) BanUser(ctx context.Context, req models.BanRequest) (models.Ack, error) {
	return c.send(ctx, http.MethodPost, "/admin/ban-user", req, msgBanFailed)
}

func (c *Client) UnbanUser(ctx context.Context, req models.UnbanRequest) (models.Ack, error) {
	return c.send(ctx, http.MethodPost, "/admin/unban-user", req, msgUnbanFailed)
}

// ReviewProof approves or rejects a submitted proof.
func (c *Client) ReviewProof(ctx context.Context, challengeID, proofID models.ID, review models.ProofReview) (models.Ack, error) {
	return c.send(ctx, http.MethodPatch, endpoint("/admin/challenges/%s/proof/%s", challengeID, proofID), review, msgReviewProofFailed)
}
