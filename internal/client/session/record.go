package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/storage"
	"github.com/dmitrijs2005/challengehub/internal/common"
)

// record is the persisted projection of State:
//
//	{"state":{"user":...,"token":...,"isAuthenticated":...},"version":0}
type record struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

type persistedState struct {
	User            *models.User `json:"user"`
	Token           *string      `json:"token"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

func encodeRecord(s State) ([]byte, error) {
	rec := record{
		State:   persistedState{User: s.User, IsAuthenticated: s.IsAuthenticated},
		Version: common.SessionRecordVersion,
	}
	if s.Token != "" {
		token := s.Token
		rec.State.Token = &token
	}
	return json.Marshal(rec)
}

func decodeRecord(data []byte) (record, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, fmt.Errorf("decode session record: %w", err)
	}
	return rec, nil
}

func (r record) token() string {
	if r.State.Token == nil {
		return ""
	}
	return *r.State.Token
}

// StoredTokenSource reads the bearer token from the persisted session record
// on every call. A missing record means no token.
type StoredTokenSource struct {
	store storage.Store
}

func NewStoredTokenSource(store storage.Store) *StoredTokenSource {
	return &StoredTokenSource{store: store}
}

func (s *StoredTokenSource) Token(ctx context.Context) (string, error) {
	data, err := s.store.Get(ctx, common.SessionStorageKey)
	if err != nil {
		return "", fmt.Errorf("read session record: %w", err)
	}
	if data == nil {
		return "", nil
	}
	rec, err := decodeRecord(data)
	if err != nil {
		return "", err
	}
	return rec.token(), nil
}
