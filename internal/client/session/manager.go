// Package session owns the client's authentication state: who is signed in,
// with which token, whether a request is in flight and the last error.
//
// A Manager is the only writer of that state and of its persisted record.
// Every change replaces the whole record in storage; readers such as the
// transport's token source only ever read it.
//
// Concurrent mutating calls are not serialized. The last response to arrive
// wins, so callers that care should not start a second operation while
// State().IsLoading is true.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/storage"
	"github.com/dmitrijs2005/challengehub/internal/common"
	"github.com/dmitrijs2005/challengehub/internal/logging"
)

// DefaultLoginTimeout bounds a login attempt on top of the transport timeout.
const DefaultLoginTimeout = 15 * time.Second

var ErrNotInitialized = errors.New("session manager not initialized")

// Backend is the slice of the server API the session needs.
type Backend interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, p models.ProfileUpdate, image *models.Upload) (json.RawMessage, error)
	UpdatePassword(ctx context.Context, p models.PasswordChange) error
	DeleteAccount(ctx context.Context) error
}

type Option func(*Manager)

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithLoginTimeout overrides DefaultLoginTimeout. Non-positive values are
// ignored.
func WithLoginTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.loginTimeout = d
		}
	}
}

// WithClock replaces time.Now, used to judge token expiry at Init.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

type Manager struct {
	store        storage.Store
	log          logging.Logger
	loginTimeout time.Duration
	now          func() time.Time

	mu          sync.Mutex
	backend     Backend
	initialized bool
	state       State
	inFlight    int
	listeners   map[int]func(State)
	nextID      int
}

func New(store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		store:        store,
		log:          logging.Nop(),
		loginTimeout: DefaultLoginTimeout,
		now:          time.Now,
		listeners:    make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init binds the backend and, on the first call, restores the persisted
// session. A storage or decode failure is logged and leaves the session
// anonymous.
func (m *Manager) Init(ctx context.Context, backend Backend) error {
	if backend == nil {
		return errors.New("session backend is required")
	}

	m.mu.Lock()
	m.backend = backend
	if m.initialized {
		m.mu.Unlock()
		return nil
	}
	m.initialized = true
	m.mu.Unlock()

	restored, ok := m.rehydrate(ctx)
	if !ok {
		return nil
	}

	m.mu.Lock()
	m.state = restored
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "user", userName(restored.User))
	m.notify(snap)
	return nil
}

func (m *Manager) rehydrate(ctx context.Context) (State, bool) {
	data, err := m.store.Get(ctx, common.SessionStorageKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted session", "error", err)
		return State{}, false
	}
	if data == nil {
		return State{}, false
	}

	rec, err := decodeRecord(data)
	if err != nil {
		m.log.Warn(ctx, "discarding unreadable session record", "error", err)
		m.removeRecord(ctx)
		return State{}, false
	}

	token := rec.token()
	if token == "" {
		return State{}, false
	}
	if err := checkToken(token, m.now()); err != nil {
		m.log.Info(ctx, "starting anonymous", "error", err)
		m.removeRecord(ctx)
		return State{}, false
	}

	return State{
		User:                rec.State.User,
		Token:               token,
		IsAuthenticated:     true,
		Status:              StatusAuthenticated,
		PendingConfirmation: true,
	}, true
}

// Dispose drops listeners, unbinds the backend and closes the store.
func (m *Manager) Dispose(ctx context.Context) error {
	m.mu.Lock()
	m.listeners = make(map[int]func(State))
	m.backend = nil
	m.initialized = false
	m.mu.Unlock()

	m.log.Debug(ctx, "session manager disposed")
	return m.store.Close()
}

// State returns a copy of the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Token implements transport.TokenSource from memory.
func (m *Manager) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Token, nil
}

// Subscribe registers fn to receive every new state. fn runs on the goroutine
// that made the change, after the manager's lock is released.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.listeners, id)
		})
	}
}

func (m *Manager) ClearError() {
	m.update(context.Background(), false, func(s *State) { s.Error = "" })
}

func (m *Manager) backendOrErr() (Backend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.backend == nil {
		return nil, ErrNotInitialized
	}
	return m.backend, nil
}

func (m *Manager) snapshotLocked() State {
	s := m.state.clone()
	s.IsLoading = m.inFlight > 0
	return s
}

// update applies fn under the lock, persists when asked and notifies
// listeners.
func (m *Manager) update(ctx context.Context, persist bool, fn func(s *State)) State {
	m.mu.Lock()
	fn(&m.state)
	if persist {
		m.persistLocked(ctx)
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return snap
}

// begin marks an operation in flight and clears the previous error.
// Sign-in operations also move the status to StatusAuthenticating.
func (m *Manager) begin(ctx context.Context, signingIn bool) {
	m.update(ctx, false, func(s *State) {
		m.inFlight++
		s.Error = ""
		if signingIn {
			s.Status = StatusAuthenticating
		}
	})
}

// end closes an operation started with begin.
func (m *Manager) end(ctx context.Context, persist bool, fn func(s *State)) State {
	return m.update(ctx, persist, func(s *State) {
		if m.inFlight > 0 {
			m.inFlight--
		}
		fn(s)
	})
}

func (m *Manager) persistLocked(ctx context.Context) {
	data, err := encodeRecord(m.state)
	if err != nil {
		m.log.Error(ctx, "failed to encode session record", "error", err)
		return
	}
	if err := m.store.Set(context.WithoutCancel(ctx), common.SessionStorageKey, data); err != nil {
		m.log.Error(ctx, "failed to persist session", "error", err)
	}
}

func (m *Manager) removeRecord(ctx context.Context) {
	if err := m.store.Delete(ctx, common.SessionStorageKey); err != nil {
		m.log.Warn(ctx, "failed to remove session record", "error", err)
	}
}

func (m *Manager) notify(s State) {
	m.mu.Lock()
	fns := make([]func(State), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

func userName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}
