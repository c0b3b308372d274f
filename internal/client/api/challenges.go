package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/transport"
)

const (
	msgChallengesFailed       = "Failed to fetch challenges."
	msgCreateChallengeFailed  = "Failed to create challenge."
	msgJoinChallengeFailed    = "Failed to join challenge."
	msgCancelChallengeFailed  = "Failed to delete challenge."
	msgJoinedChallengesFailed = "Failed to fetch your challenges."
	msgCreatedChallengeFailed = "Failed to fetch created challenges."
)

func (c *Client) Challenges(ctx context.Context) ([]models.Challenge, error) {
	return getList[models.Challenge](ctx, c, "/challenges", "challenges", msgChallengesFailed)
}

func (c *Client) CreateChallenge(ctx context.Context, in models.NewChallenge) (models.Ack, error) {
	return c.send(ctx, http.MethodPost, "/challenges", in, msgCreateChallengeFailed)
}

func (c *Client) JoinChallenge(ctx context.Context, id models.ID) (models.Ack, error) {
	return c.send(ctx, http.MethodPost, endpoint("/challenges/%s/join", id), nil, msgJoinChallengeFailed)
}

// SubmitProof uploads every file under the repeated proofImages field.
func (c *Client) SubmitProof(ctx context.Context, id models.ID, proof models.ProofSubmission) (models.Ack, error) {
	form := &transport.Form{
		Fields: map[string]string{"note": proof.Note},
		Files:  uploads("proofImages", proof.Files...),
	}

	r := &transport.Request{Method: http.MethodPost, Path: endpoint("/challenges/%s/submit", id), Form: form}
	return c.ack(ctx, r, msgSubmitProofFailed)
}

func (c *Client) CancelChallenge(ctx context.Context, id models.ID) (models.Ack, error) {
	return c.send(ctx, http.MethodDelete, endpoint("/challenges/%s/cancel", id), nil, msgCancelChallengeFailed)
}

func (c *Client) JoinedChallenges(ctx context.Context) ([]models.Participation, error) {
	return getList[models.Participation](ctx, c, "/user/challenges", "challenges", msgJoinedChallengesFailed)
}

func (c *Client) CreatedChallenges(ctx context.Context) ([]models.Challenge, error) {
	return getList[models.Challenge](ctx, c, "/user/created-challenges", "challenges", msgCreatedChallengeFailed)
}
