package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/internal/cartmirror"
	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
)

// SaverFactory builds the persistence bridge for a new session.
type SaverFactory func(sessionID string) CartSaver

// ManagerOptions wires a Manager.
type ManagerOptions struct {
	Catalogue   []catalog.Product
	Pricing     config.PricingConfig
	StockPolicy cart.StockPolicy
	NewSaver    SaverFactory
	Mirror      cartmirror.Service
	Log         *logger.Logger
}

// Manager keys session states by session id. Each HTTP request resolves its
// session here; creation is lazy and rehydrates the cart from the mirror on
// a best-effort basis.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     ManagerOptions
	closed   bool
}

// NewManager builds a manager over the startup catalogue. An empty catalogue
// is a valid storefront with nothing to sell.
func NewManager(opts ManagerOptions) (*Manager, error) {
	if opts.StockPolicy == "" {
		opts.StockPolicy = cart.StockPolicyIgnore
	}
	if !opts.StockPolicy.IsValid() {
		return nil, errors.New("storefront: invalid stock policy")
	}
	if opts.NewSaver == nil {
		opts.NewSaver = func(string) CartSaver { return NopSaver{} }
	}
	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
	}, nil
}

// Session returns the state for the given session id, creating it on first
// sight.
func (m *Manager) Session(ctx context.Context, sessionID string) *Session {
	m.mu.RLock()
	session, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok {
		return session
	}

	m.mu.Lock()
	if session, ok = m.sessions[sessionID]; ok {
		m.mu.Unlock()
		return session
	}
	session = newSession(sessionID, m.opts.Catalogue, m.opts.Pricing, m.opts.StockPolicy, m.opts.NewSaver(sessionID))
	m.sessions[sessionID] = session
	m.mu.Unlock()

	m.rehydrate(ctx, session)
	return session
}

func (m *Manager) rehydrate(ctx context.Context, session *Session) {
	if m.opts.Mirror == nil {
		return
	}
	items, err := m.opts.Mirror.Restore(ctx, session.ID())
	if err != nil {
		if m.opts.Log != nil {
			m.opts.Log.Warn(m.opts.Log.WithSessionID(ctx, session.ID()), "cart rehydration failed")
		}
		return
	}
	if len(items) > 0 {
		session.restore(items)
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close tears down every session's saver. Idempotent.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for _, session := range m.sessions {
		session.close()
	}
}
