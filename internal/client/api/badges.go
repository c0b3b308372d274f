package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
)

const (
	msgBadgesFailed         = "Failed to fetch badges."
	msgEligibleBadgesFailed = "Failed to fetch eligible badges."
	msgCreateBadgeFailed    = "Failed to create badge."
	msgUpdateBadgeFailed    = "Failed to update badge."
	msgDeleteBadgeFailed    = "Failed to delete badge."
	msgAssignBadgeFailed    = "Failed to assign badge."
)

func (c *Client) Badges(ctx context.Context) ([]models.Badge, error) {
	return getList[models.Badge](ctx, c, "/badges", "badges", msgBadgesFailed)
}

func (c *Client) EligibleBadges(ctx context.Context) ([]models.Badge, error) {
	return getList[models.Badge](ctx, c, "/user/badges/eligible", "badges", msgEligibleBadgesFailed)
}

func (c *Client) CreateBadge(ctx context.Context, in models.BadgeInput) (models.Ack, error) {
	return c.send(ctx, http.MethodPost, "/admin/badges", in, msgCreateBadgeFailed)
}

func (c *Client) UpdateBadge(ctx context.Context, id models.ID, in models.BadgeInput) (models.Ack, error) {
	return c.send(ctx, http.MethodPatch, endpoint("/admin/badges/%s", id), in, msgUpdateBadgeFailed)
}

func (c *Client) DeleteBadge(ctx context.Context, id models.ID) (models.Ack, error) {
	return c.send(ctx, http.MethodDelete, endpoint("/admin/badges/%s", id), nil, msgDeleteBadgeFailed)
}

func (c *Client) AssignBadge(ctx context.Context, in models.BadgeAssignment) (models.Ack, error) {
	return c.send(ctx, http.MethodPost, "/admin/badges/assign", in, msgAssignBadgeFailed)
}
