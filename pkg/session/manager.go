package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/logging"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/ports"
	"github.com/google/uuid"
)

// DefaultLockTTL bounds how long a distributed session lock survives a crashed holder.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Session is one traversal restored from the store.
// Tree is a private copy; moving its cursor does not touch the stored state.
type Session struct {
	ID   string
	Tree *decisiontree.Tree
}

// Manager runs traversals whose state lives in a StateStore, so a session
// can be continued by any request or replica.
// Access to one session is serialized; locks are reference counted and
// dropped once unused.
type Manager struct {
	trees ports.TreeSource
	store ports.StateStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker
	lockTTL time.Duration
	newID   func() string
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL sets the distributed lock expiry.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithIDGenerator replaces the random UUID session IDs.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

// NewManager creates a session manager over trees and store.
func NewManager(trees ports.TreeSource, store ports.StateStore, opts ...Option) *Manager {
	m := &Manager{
		trees:   trees,
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		newID:   uuid.NewString,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// WithLock executes fn while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, sessionID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"session_id", sessionID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Start opens a new traversal of the referenced tree (name or slug) and
// persists it under a fresh ID.
func (m *Manager) Start(ctx context.Context, treeRef string) (*Session, error) {
	tree, err := m.trees.Open(treeRef)
	if err != nil {
		return nil, err
	}
	id := m.newID()

	err = m.WithLock(ctx, id, func(ctx context.Context) error {
		if _, err := m.store.Load(ctx, id); err == nil {
			return fmt.Errorf("session %s already exists", id)
		} else if !errors.Is(err, domain.ErrSessionNotFound) {
			return fmt.Errorf("failed to check session existence: %w", err)
		}
		if err := m.store.Save(ctx, id, tree.State()); err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.Debug("session started", "session_id", id, "tree", tree.Name())
	return &Session{ID: id, Tree: tree}, nil
}

// Current loads a session without moving it.
func (m *Manager) Current(ctx context.Context, sessionID string) (*Session, error) {
	var s *Session
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		s, err = m.load(ctx, sessionID)
		return err
	})
	return s, err
}

// Answer submits answers for the current node of a session. On an invalid
// answer the error wraps domain.ErrInvalidAnswer and nothing is saved.
func (m *Manager) Answer(ctx context.Context, sessionID string, answers ...string) (*Session, error) {
	return m.update(ctx, sessionID, func(t *decisiontree.Tree) error {
		return t.ProvideAnswers(answers...)
	})
}

// Jump moves a session to any node of its tree, by name or slug.
func (m *Manager) Jump(ctx context.Context, sessionID, nodeRef string) (*Session, error) {
	return m.update(ctx, sessionID, func(t *decisiontree.Tree) error {
		return t.SetState(nodeRef)
	})
}

// Reset moves a session back to the start node.
func (m *Manager) Reset(ctx context.Context, sessionID string) (*Session, error) {
	return m.update(ctx, sessionID, func(t *decisiontree.Tree) error {
		t.Reset()
		return nil
	})
}

// End removes a session. It fails with domain.ErrSessionNotFound when the
// session does not exist.
func (m *Manager) End(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		if _, err := m.store.Load(ctx, sessionID); err != nil {
			return err
		}
		if err := m.store.Delete(ctx, sessionID); err != nil {
			return err
		}
		m.logger.Debug("session ended", "session_id", sessionID)
		return nil
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying state store.
func (m *Manager) Store() ports.StateStore {
	return m.store
}

func (m *Manager) update(ctx context.Context, sessionID string, step func(*decisiontree.Tree) error) (*Session, error) {
	var s *Session
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		loaded, err := m.load(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := step(loaded.Tree); err != nil {
			return err
		}
		if err := m.store.Save(ctx, sessionID, loaded.Tree.State()); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		s = loaded
		return nil
	})
	return s, err
}

// load must be called with the session lock held.
func (m *Manager) load(ctx context.Context, sessionID string) (*Session, error) {
	state, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	tree, err := m.trees.Open(state.Tree)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	if err := tree.Restore(state); err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return &Session{ID: sessionID, Tree: tree}, nil
}
