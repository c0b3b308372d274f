// Package api exposes one method per backend endpoint. Methods are thin:
// they shape the request, let the transport send it and attach an
// operation-specific fallback message to failures that carry none.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/transport"
)

// Doer sends a request; *transport.Transport implements it.
type Doer interface {
	Do(ctx context.Context, r *transport.Request, out any) error
}

// Client is stateless and safe for concurrent use.
type Client struct {
	doer Doer
}

func New(doer Doer) *Client {
	return &Client{doer: doer}
}

// call runs r and normalizes any failure with fallback.
func (c *Client) call(ctx context.Context, r *transport.Request, out any, fallback string) error {
	if err := c.doer.Do(ctx, r, out); err != nil {
		return transport.Normalize(err, fallback)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any, fallback string) error {
	return c.call(ctx, &transport.Request{Method: http.MethodGet, Path: path}, out, fallback)
}

func (c *Client) send(ctx context.Context, method, path string, body any, fallback string) (models.Ack, error) {
	return c.ack(ctx, &transport.Request{Method: method, Path: path, Body: body}, fallback)
}

// ack runs r for an endpoint that only confirms success. A body that is not
// a JSON object is kept under "data".
func (c *Client) ack(ctx context.Context, r *transport.Request, fallback string) (models.Ack, error) {
	var raw json.RawMessage
	if err := c.call(ctx, r, &raw, fallback); err != nil {
		return nil, err
	}

	out := models.Ack{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.Ack{"data": raw}, nil
	}
	return out, nil
}

// getList fetches a collection that the server returns either as a bare
// array or wrapped in an object under key.
func getList[T any](ctx context.Context, c *Client, path, key, fallback string) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw, fallback); err != nil {
		return nil, err
	}
	items, err := decodeList[T](raw, key)
	if err != nil {
		return nil, transport.Normalize(err, fallback)
	}
	return items, nil
}

func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}

	if raw[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		inner, ok := wrapper[key]
		if !ok {
			return []T{}, nil
		}
		raw = inner
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func endpoint(format string, ids ...models.ID) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(string(id))
	}
	return fmt.Sprintf(format, args...)
}

func uploads(field string, files ...models.Upload) []transport.FormFile {
	out := make([]transport.FormFile, 0, len(files))
	for _, f := range files {
		if f.Content == nil {
			continue
		}
		out = append(out, transport.FormFile{Field: field, FileName: f.FileName, Content: f.Content})
	}
	return out
}
