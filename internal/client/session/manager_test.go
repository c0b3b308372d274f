package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/storage"
	"github.com/dmitrijs2005/challengehub/internal/client/transport"
	"github.com/dmitrijs2005/challengehub/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	login          func(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
	register       func(ctx context.Context, reg models.Registration) (*models.AuthResult, error)
	currentUser    func(ctx context.Context) (*models.User, error)
	updateProfile  func(ctx context.Context, p models.ProfileUpdate, image *models.Upload) (json.RawMessage, error)
	updatePassword func(ctx context.Context, p models.PasswordChange) error
	deleteAccount  func(ctx context.Context) error
}

func (f *fakeBackend) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	return f.login(ctx, creds)
}

func (f *fakeBackend) Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error) {
	return f.register(ctx, reg)
}

func (f *fakeBackend) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.currentUser(ctx)
}

func (f *fakeBackend) UpdateProfile(ctx context.Context, p models.ProfileUpdate, image *models.Upload) (json.RawMessage, error) {
	return f.updateProfile(ctx, p, image)
}

func (f *fakeBackend) UpdatePassword(ctx context.Context, p models.PasswordChange) error {
	return f.updatePassword(ctx, p)
}

func (f *fakeBackend) DeleteAccount(ctx context.Context) error {
	return f.deleteAccount(ctx)
}

func strPtr(s string) *string { return &s }

func alice() *models.User {
	return &models.User{ID: "1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser, Lastname: strPtr("B")}
}

func okLogin(token string) func(context.Context, models.Credentials) (*models.AuthResult, error) {
	return func(context.Context, models.Credentials) (*models.AuthResult, error) {
		return &models.AuthResult{Token: token, User: alice()}, nil
	}
}

func serverError(status int, msg string) error {
	return &transport.Error{Kind: transport.KindServer, Status: status, Message: msg}
}

func newManager(t *testing.T, store storage.Store, b Backend, opts ...Option) *Manager {
	t.Helper()
	if store == nil {
		store = storage.NewMemory()
	}
	m := New(store, opts...)
	require.NoError(t, m.Init(context.Background(), b))
	return m
}

func persisted(t *testing.T, store storage.Store) record {
	t.Helper()
	data, err := store.Get(context.Background(), common.SessionStorageKey)
	require.NoError(t, err)
	require.NotNil(t, data, "session record must exist")
	rec, err := decodeRecord(data)
	require.NoError(t, err)
	return rec
}

func assertAnonymous(t *testing.T, s State) {
	t.Helper()
	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
	assert.False(t, s.IsAuthenticated)
	assert.Equal(t, StatusAnonymous, s.Status)
}

func TestNotInitialized(t *testing.T) {
	m := New(storage.NewMemory())
	ctx := context.Background()

	_, err := m.Login(ctx, "alice", "pw")
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = m.FetchCurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, m.DeleteAccount(ctx), ErrNotInitialized)
	assert.ErrorIs(t, m.UpdatePassword(ctx, "a", "b", "b"), ErrNotInitialized)

	require.Error(t, m.Init(ctx, nil))
}

func TestLogin_Success(t *testing.T) {
	store := storage.NewMemory()
	var got models.Credentials
	m := newManager(t, store, &fakeBackend{login: func(_ context.Context, c models.Credentials) (*models.AuthResult, error) {
		got = c
		return &models.AuthResult{Token: "tok", User: alice()}, nil
	}})

	u, err := m.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, models.Credentials{Identity: "alice", Password: "secret"}, got)

	s := m.State()
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, "tok", s.Token)
	assert.Equal(t, StatusAuthenticated, s.Status)
	assert.False(t, s.IsLoading)
	assert.Empty(t, s.Error)

	rec := persisted(t, store)
	assert.Equal(t, "tok", rec.token())
	assert.True(t, rec.State.IsAuthenticated)
	assert.Equal(t, common.SessionRecordVersion, rec.Version)
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{login: func(context.Context, models.Credentials) (*models.AuthResult, error) {
		return nil, serverError(http.StatusUnauthorized, "invalid credentials")
	}})

	_, err := m.Login(context.Background(), "alice", "wrong")
	require.EqualError(t, err, "invalid credentials")
	assert.ErrorIs(t, err, transport.ErrUnauthorized)

	s := m.State()
	assertAnonymous(t, s)
	assert.Equal(t, "invalid credentials", s.Error)
	assert.False(t, s.IsLoading)
}

func TestLogin_FailureKeepsExistingSession(t *testing.T) {
	calls := 0
	m := newManager(t, nil, &fakeBackend{login: func(context.Context, models.Credentials) (*models.AuthResult, error) {
		calls++
		if calls == 1 {
			return &models.AuthResult{Token: "tok", User: alice()}, nil
		}
		return nil, serverError(http.StatusBadRequest, "")
	}})
	ctx := context.Background()

	_, err := m.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	_, err = m.Login(ctx, "alice", "pw")
	require.EqualError(t, err, msgLoginFailed)

	s := m.State()
	assert.Equal(t, "tok", s.Token)
	assert.Equal(t, StatusAuthenticated, s.Status)
	assert.Equal(t, msgLoginFailed, s.Error)
}

func TestLogin_EmptyCredentialsRejectedLocally(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{login: func(context.Context, models.Credentials) (*models.AuthResult, error) {
		t.Fatal("backend must not be called")
		return nil, nil
	}})

	_, err := m.Login(context.Background(), " ", "pw")
	require.ErrorIs(t, err, common.ErrEmptyCredentials)
	assert.Equal(t, common.ErrEmptyCredentials.Error(), m.State().Error)
}

func TestLogin_TimeoutMessage(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{login: func(ctx context.Context, _ models.Credentials) (*models.AuthResult, error) {
		<-ctx.Done()
		return nil, &transport.Error{Kind: transport.KindTimeout, Message: transport.MsgTimeout, Err: ctx.Err()}
	}}, WithLoginTimeout(20*time.Millisecond))

	_, err := m.Login(context.Background(), "alice", "pw")
	require.EqualError(t, err, MsgLoginTimeout)
	assert.ErrorIs(t, err, transport.ErrTimeout)
	assert.Equal(t, MsgLoginTimeout, m.State().Error)
	assert.NotEqual(t, transport.MsgConnection, MsgLoginTimeout)
}

func TestLogin_NoTokenInResponse(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{login: func(context.Context, models.Credentials) (*models.AuthResult, error) {
		return &models.AuthResult{User: alice()}, nil
	}})

	_, err := m.Login(context.Background(), "alice", "pw")
	require.EqualError(t, err, msgLoginFailed)
	assertAnonymous(t, m.State())
}

func TestLogin_IsLoadingWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	m := newManager(t, nil, &fakeBackend{login: func(context.Context, models.Credentials) (*models.AuthResult, error) {
		<-release
		return &models.AuthResult{Token: "tok", User: alice()}, nil
	}})

	done := make(chan error, 1)
	go func() {
		_, err := m.Login(context.Background(), "alice", "pw")
		done <- err
	}()

	require.Eventually(t, func() bool {
		s := m.State()
		return s.IsLoading && s.Status == StatusAuthenticating
	}, time.Second, 5*time.Millisecond)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, m.State().IsLoading)
}

func TestRegister(t *testing.T) {
	store := storage.NewMemory()
	m := newManager(t, store, &fakeBackend{register: func(_ context.Context, reg models.Registration) (*models.AuthResult, error) {
		return &models.AuthResult{Token: "reg-tok", User: &models.User{ID: "9", Username: reg.Username}}, nil
	}})
	ctx := context.Background()

	_, err := m.Register(ctx, models.Registration{Username: "bob", Password: "a", ConfirmPassword: "b"})
	require.ErrorIs(t, err, common.ErrPasswordMismatch)
	assertAnonymous(t, m.State())

	u, err := m.Register(ctx, models.Registration{Username: "bob", Email: "bob@example.com", Password: "a", ConfirmPassword: "a"})
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.True(t, m.State().IsAuthenticated)
	assert.Equal(t, "reg-tok", persisted(t, store).token())
}

func TestRegister_ServerMessage(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{register: func(context.Context, models.Registration) (*models.AuthResult, error) {
		return nil, serverError(http.StatusConflict, "username taken")
	}})

	_, err := m.Register(context.Background(), models.Registration{Username: "bob", Password: "a"})
	require.EqualError(t, err, "username taken")
	assert.Equal(t, "username taken", m.State().Error)
}

func TestLogout_ClearsAndIsIdempotent(t *testing.T) {
	store := storage.NewMemory()
	m := newManager(t, store, &fakeBackend{
		login: okLogin("tok"),
		updatePassword: func(context.Context, models.PasswordChange) error {
			return serverError(http.StatusBadRequest, "old password wrong")
		},
	})
	ctx := context.Background()

	_, err := m.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	require.Error(t, m.UpdatePassword(ctx, "bad", "new", "new"))
	require.Equal(t, "old password wrong", m.State().Error)

	m.Logout(ctx)
	once := m.State()
	assert.Empty(t, once.Error, "logout clears a pending error")
	onceRecord, err := store.Get(ctx, common.SessionStorageKey)
	require.NoError(t, err)

	m.Logout(ctx)
	twice := m.State()
	twiceRecord, err := store.Get(ctx, common.SessionStorageKey)
	require.NoError(t, err)

	assertAnonymous(t, once)
	assert.Equal(t, once, twice)
	assert.JSONEq(t, string(onceRecord), string(twiceRecord))
	assert.JSONEq(t, `{"state":{"user":null,"token":null,"isAuthenticated":false},"version":0}`, string(twiceRecord))
}

func TestAuthInvariant_HoldsAcrossOperations(t *testing.T) {
	logins := 0
	b := &fakeBackend{
		login: func(context.Context, models.Credentials) (*models.AuthResult, error) {
			logins++
			if logins%2 == 0 {
				return nil, serverError(http.StatusUnauthorized, "nope")
			}
			return &models.AuthResult{Token: "tok", User: alice()}, nil
		},
		currentUser:   func(context.Context) (*models.User, error) { return nil, serverError(http.StatusUnauthorized, "") },
		deleteAccount: func(context.Context) error { return nil },
	}
	m := newManager(t, nil, b)
	ctx := context.Background()

	var violations atomic.Int32
	cancel := m.Subscribe(func(s State) {
		if s.IsAuthenticated && s.Token == "" {
			violations.Add(1)
		}
	})
	defer cancel()

	steps := []func(){
		func() { _, _ = m.Login(ctx, "alice", "pw") },
		func() { _, _ = m.Login(ctx, "alice", "pw") },
		func() { m.Logout(ctx) },
		func() { _, _ = m.Login(ctx, "alice", "pw") },
		func() { _, _ = m.FetchCurrentSession(ctx) },
		func() { _, _ = m.Login(ctx, "alice", "pw") },
		func() { _, _ = m.Login(ctx, "alice", "pw") },
		func() { _ = m.DeleteAccount(ctx) },
	}
	for _, step := range steps {
		step()
		s := m.State()
		if s.IsAuthenticated {
			assert.NotEmpty(t, s.Token)
		}
	}
	assert.Zero(t, violations.Load())
	assertAnonymous(t, m.State())
}

func TestPersistence_RoundTrip(t *testing.T) {
	store := storage.NewMemory()
	first := newManager(t, store, &fakeBackend{login: okLogin("opaque-token")})

	_, err := first.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	want := first.State()

	second := newManager(t, store, &fakeBackend{})
	got := second.State()

	assert.Equal(t, want.User, got.User)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.IsAuthenticated, got.IsAuthenticated)
	assert.True(t, got.PendingConfirmation)
	assert.Equal(t, StatusAuthenticated, got.Status)
}

func TestInit_ExpiredJWTStartsAnonymous(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	expired := signedToken(t, now.Add(-time.Minute))

	store := storage.NewMemory()
	data, err := encodeRecord(State{User: alice(), Token: expired, IsAuthenticated: true})
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), common.SessionStorageKey, data))

	m := newManager(t, store, &fakeBackend{}, WithClock(func() time.Time { return now }))

	assertAnonymous(t, m.State())
	left, err := store.Get(context.Background(), common.SessionStorageKey)
	require.NoError(t, err)
	assert.Nil(t, left, "expired record is removed")
}

func TestInit_ValidJWTKept(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	valid := signedToken(t, now.Add(time.Hour))

	store := storage.NewMemory()
	data, err := encodeRecord(State{User: alice(), Token: valid, IsAuthenticated: true})
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), common.SessionStorageKey, data))

	m := newManager(t, store, &fakeBackend{}, WithClock(func() time.Time { return now }))
	assert.Equal(t, valid, m.State().Token)
}

func TestInit_CorruptRecordDiscarded(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(context.Background(), common.SessionStorageKey, []byte("{not json")))

	m := newManager(t, store, &fakeBackend{})

	assertAnonymous(t, m.State())
	left, err := store.Get(context.Background(), common.SessionStorageKey)
	require.NoError(t, err)
	assert.Nil(t, left)
}

func TestInit_RehydratesOnlyOnce(t *testing.T) {
	store := storage.NewMemory()
	m := newManager(t, store, &fakeBackend{})

	data, err := encodeRecord(State{User: alice(), Token: "late", IsAuthenticated: true})
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), common.SessionStorageKey, data))

	require.NoError(t, m.Init(context.Background(), &fakeBackend{}))
	assertAnonymous(t, m.State())
}

func TestFetchCurrentSession(t *testing.T) {
	store := storage.NewMemory()
	data, err := encodeRecord(State{User: alice(), Token: "tok", IsAuthenticated: true})
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), common.SessionStorageKey, data))

	fresh := alice()
	fresh.Firstname = strPtr("Alice")
	m := newManager(t, store, &fakeBackend{currentUser: func(context.Context) (*models.User, error) { return fresh, nil }})
	require.True(t, m.State().PendingConfirmation)

	u, err := m.FetchCurrentSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", *u.Firstname)

	s := m.State()
	assert.False(t, s.PendingConfirmation)
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, "Alice", *persisted(t, store).State.User.Firstname)
}

func TestFetchCurrentSession_NoTokenIsNoop(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{currentUser: func(context.Context) (*models.User, error) {
		t.Fatal("backend must not be called")
		return nil, nil
	}})

	u, err := m.FetchCurrentSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFetchCurrentSession_FailureLogsOut(t *testing.T) {
	store := storage.NewMemory()
	data, err := encodeRecord(State{User: alice(), Token: "revoked", IsAuthenticated: true})
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), common.SessionStorageKey, data))

	m := newManager(t, store, &fakeBackend{currentUser: func(context.Context) (*models.User, error) {
		return nil, serverError(http.StatusUnauthorized, "")
	}})

	_, err = m.FetchCurrentSession(context.Background())
	require.EqualError(t, err, msgSessionFailed)
	assertAnonymous(t, m.State())
	assert.Empty(t, persisted(t, store).token())
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	store := storage.NewMemory()
	m := newManager(t, store, &fakeBackend{
		login: okLogin("tok"),
		updateProfile: func(_ context.Context, p models.ProfileUpdate, _ *models.Upload) (json.RawMessage, error) {
			assert.Equal(t, "A", p.Firstname)
			return json.RawMessage(`{"firstname":"A"}`), nil
		},
	})
	ctx := context.Background()
	_, err := m.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	u, err := m.UpdateProfile(ctx, models.ProfileUpdate{Firstname: "A"}, nil)
	require.NoError(t, err)
	require.NotNil(t, u.Firstname)
	require.NotNil(t, u.Lastname)
	assert.Equal(t, "A", *u.Firstname)
	assert.Equal(t, "B", *u.Lastname)
	assert.Equal(t, "alice", u.Username)

	saved := persisted(t, store).State.User
	assert.Equal(t, "A", *saved.Firstname)
	assert.Equal(t, "B", *saved.Lastname)
}

func TestUpdateProfile_FailureKeepsUser(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{
		login: okLogin("tok"),
		updateProfile: func(context.Context, models.ProfileUpdate, *models.Upload) (json.RawMessage, error) {
			return nil, errors.New("socket closed")
		},
	})
	ctx := context.Background()
	_, err := m.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	_, err = m.UpdateProfile(ctx, models.ProfileUpdate{Firstname: "A"}, nil)
	require.EqualError(t, err, msgUpdateProfileFailed)

	s := m.State()
	assert.Nil(t, s.User.Firstname)
	assert.Equal(t, msgUpdateProfileFailed, s.Error)
	assert.True(t, s.IsAuthenticated)
}

func TestUpdateProfile_LateResponseAfterLogoutIsDropped(t *testing.T) {
	store := storage.NewMemory()
	started := make(chan struct{})
	release := make(chan struct{})
	m := newManager(t, store, &fakeBackend{
		login: okLogin("tok"),
		updateProfile: func(context.Context, models.ProfileUpdate, *models.Upload) (json.RawMessage, error) {
			close(started)
			<-release
			return json.RawMessage(`{"firstname":"A"}`), nil
		},
	})
	ctx := context.Background()
	_, err := m.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := m.UpdateProfile(ctx, models.ProfileUpdate{Firstname: "A"}, nil)
		done <- err
	}()

	<-started
	m.Logout(ctx)
	close(release)
	require.NoError(t, <-done)

	s := m.State()
	assertAnonymous(t, s)
	assert.False(t, s.IsLoading)
	assert.Nil(t, persisted(t, store).State.User)
}

func TestUpdatePassword(t *testing.T) {
	var sent models.PasswordChange
	m := newManager(t, nil, &fakeBackend{updatePassword: func(_ context.Context, p models.PasswordChange) error {
		sent = p
		return nil
	}})
	ctx := context.Background()

	err := m.UpdatePassword(ctx, "old", "new", "other")
	require.ErrorIs(t, err, common.ErrPasswordMismatch)
	assert.Equal(t, common.ErrPasswordMismatch.Error(), m.State().Error)
	assert.Empty(t, sent.NewPassword, "mismatch makes no request")

	require.NoError(t, m.UpdatePassword(ctx, "old", "new", "new"))
	assert.Equal(t, models.PasswordChange{OldPassword: "old", NewPassword: "new", ConfirmPassword: "new"}, sent)
	assert.Empty(t, m.State().Error, "a new operation clears the previous error")
}

func TestDeleteAccount(t *testing.T) {
	fail := true
	m := newManager(t, nil, &fakeBackend{
		login: okLogin("tok"),
		deleteAccount: func(context.Context) error {
			if fail {
				return serverError(http.StatusInternalServerError, "")
			}
			return nil
		},
	})
	ctx := context.Background()
	_, err := m.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	require.EqualError(t, m.DeleteAccount(ctx), msgDeleteAccountFailed)
	assert.True(t, m.State().IsAuthenticated)

	fail = false
	require.NoError(t, m.DeleteAccount(ctx))
	assertAnonymous(t, m.State())
}

func TestDeleteAccount_LateSuccessKeepsNewerSession(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	tokens := []string{"first", "second"}
	m := newManager(t, nil, &fakeBackend{
		login: func(context.Context, models.Credentials) (*models.AuthResult, error) {
			tok := tokens[0]
			tokens = tokens[1:]
			return &models.AuthResult{Token: tok, User: alice()}, nil
		},
		deleteAccount: func(context.Context) error {
			close(started)
			<-release
			return nil
		},
	})
	ctx := context.Background()
	_, err := m.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- m.DeleteAccount(ctx) }()

	<-started
	_, err = m.Login(ctx, "bob", "pw")
	require.NoError(t, err)
	close(release)
	require.NoError(t, <-done)

	s := m.State()
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, "second", s.Token)
}

func TestClearError(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{})
	_, _ = m.Login(context.Background(), "", "")
	require.NotEmpty(t, m.State().Error)

	m.ClearError()
	assert.Empty(t, m.State().Error)
}

func TestSubscribe(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{login: okLogin("tok")})
	ctx := context.Background()

	var (
		mu       sync.Mutex
		statuses []Status
	)
	cancel := m.Subscribe(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		statuses = append(statuses, s.Status)
	})

	_, err := m.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	cancel()
	cancel()
	m.Logout(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Status{StatusAuthenticating, StatusAuthenticated}, statuses)
}

func TestState_ReturnsCopy(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{login: okLogin("tok")})
	_, err := m.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	s := m.State()
	s.User.Username = "mallory"
	assert.Equal(t, "alice", m.State().User.Username)
}

type failingStore struct {
	*storage.Memory
}

func (failingStore) Set(context.Context, string, []byte) error { return errors.New("disk full") }

func TestPersistFailure_StateStaysAuthoritative(t *testing.T) {
	m := newManager(t, failingStore{storage.NewMemory()}, &fakeBackend{login: okLogin("tok")})

	_, err := m.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.True(t, m.State().IsAuthenticated)
}

func TestDispose(t *testing.T) {
	m := newManager(t, nil, &fakeBackend{login: okLogin("tok")})
	ctx := context.Background()

	called := false
	m.Subscribe(func(State) { called = true })
	require.NoError(t, m.Dispose(ctx))

	_, err := m.Login(ctx, "alice", "pw")
	require.ErrorIs(t, err, ErrNotInitialized)
	m.Logout(ctx)
	assert.False(t, called)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "anonymous", StatusAnonymous.String())
	assert.Equal(t, "authenticating", StatusAuthenticating.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}
