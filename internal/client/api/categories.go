package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
)

const (
	msgCategoriesFailed     = "Failed to fetch categories."
	msgCreateCategoryFailed = "Failed to create category."
	msgUpdateCategoryFailed = "Failed to update category."
	msgDeleteCategoryFailed = "Failed to delete category."
)

// Categories accepts both a bare array and {"categories": [...]}.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	return getList[models.Category](ctx, c, "/categories", "categories", msgCategoriesFailed)
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (models.Ack, error) {
	return c.send(ctx, http.MethodPost, "/admin/categories", in, msgCreateCategoryFailed)
}

func (c *Client) UpdateCategory(ctx context.Context, id models.ID, in models.CategoryInput) (models.Ack, error) {
	return c.send(ctx, http.MethodPatch, endpoint("/admin/categories/%s", id), in, msgUpdateCategoryFailed)
}

func (c *Client) DeleteCategory(ctx context.Context, id models.ID) (models.Ack, error) {
	return c.send(ctx, http.MethodDelete, endpoint("/admin/categories/%s", id), nil, msgDeleteCategoryFailed)
}
