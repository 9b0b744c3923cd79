package cartsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/Kingleseu/GestionStocke/pkg/debounce"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
	"github.com/Kingleseu/GestionStocke/pkg/metrics"
)

const (
	saverName  = "cart"
	csrfHeader = "X-CSRFToken"
)

// payload is the replace-whole-cart body the sync endpoint accepts.
type payload struct {
	Cart []cart.LineItem `json:"cart"`
}

// Saver mirrors the cart to the remote sync endpoint with a trailing-edge
// debounce. Rapid mutations collapse into a single write of the latest state.
// Failures are logged and swallowed; the in-memory cart stays authoritative.
type Saver struct {
	mu        sync.Mutex
	endpoint  string
	csrfToken string
	client    *http.Client
	log       *logger.Logger
	metrics   *metrics.SaverMetrics
	debouncer *debounce.Debouncer
	snapshot  []cart.LineItem
	notified  bool
}

// NewSaver builds a saver from the sync configuration. An empty endpoint
// disables writes; the saver then degrades to a no-op mirror.
func NewSaver(cfg config.SyncConfig, log *logger.Logger, m *metrics.SaverMetrics) *Saver {
	s := &Saver{
		endpoint:  cfg.Endpoint,
		csrfToken: cfg.CSRFToken,
		client:    &http.Client{Timeout: cfg.HTTPTimeout},
		log:       log,
		metrics:   m,
	}
	s.debouncer = debounce.New(cfg.DebounceDelay, func() {
		s.send(context.Background())
	})
	return s
}

// Notify records the latest cart state and (re)arms the debounce window.
// Called on every cart mutation.
func (s *Saver) Notify(ctx context.Context, items []cart.LineItem) {
	s.mu.Lock()
	s.snapshot = make([]cart.LineItem, len(items))
	copy(s.snapshot, items)
	s.notified = true
	s.mu.Unlock()

	if s.debouncer.Trigger() {
		s.metrics.IncCollapsed(saverName)
	}
}

// Flush cancels any pending window and writes the latest state synchronously.
// Checkout calls this so the last debounced write is never lost mid-flight.
func (s *Saver) Flush(ctx context.Context) {
	s.debouncer.Cancel()

	s.mu.Lock()
	notified := s.notified
	s.mu.Unlock()
	if !notified {
		return
	}
	s.send(ctx)
}

// Close cancels any pending write. Idempotent.
func (s *Saver) Close() {
	s.debouncer.Close()
}

func (s *Saver) send(ctx context.Context) {
	if s.endpoint == "" {
		return
	}

	s.mu.Lock()
	items := make([]cart.LineItem, len(s.snapshot))
	copy(items, s.snapshot)
	s.mu.Unlock()

	started := time.Now()
	err := s.post(ctx, items)
	s.metrics.ObserveDuration(saverName, time.Since(started))
	if err != nil {
		s.metrics.IncFailure(saverName)
		if s.log != nil {
			s.log.Warn(s.log.WithField(ctx, "error", err.Error()), "cart sync failed")
		}
		return
	}
	s.metrics.IncSuccess(saverName)
}

func (s *Saver) post(ctx context.Context, items []cart.LineItem) error {
	body, err := json.Marshal(payload{Cart: items})
	if err != nil {
		return fmt.Errorf("marshaling cart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.csrfToken != "" {
		req.Header.Set(csrfHeader, s.csrfToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting cart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sync endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
