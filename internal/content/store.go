package content

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/Kingleseu/GestionStocke/pkg/debounce"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
	"github.com/Kingleseu/GestionStocke/pkg/metrics"
	"github.com/Kingleseu/GestionStocke/pkg/redis"
)

const saverName = "content"

// Store owns the site-content document. Reads always come from memory;
// section updates mutate the in-memory copy and schedule a debounced write
// of the whole document to the key-value backend.
type Store struct {
	mu       sync.Mutex
	kv       redis.KV
	key      string
	log      *logger.Logger
	metrics  *metrics.SaverMetrics
	saver    *debounce.Debouncer
	current  SiteContent
	defaults SiteContent
}

// NewStore builds a store seeded with the structural defaults. Call Load to
// hydrate from the backend.
func NewStore(kv redis.KV, key string, cfg config.ContentConfig, log *logger.Logger, m *metrics.SaverMetrics) *Store {
	defaults := DefaultContent()
	s := &Store{
		kv:       kv,
		key:      key,
		log:      log,
		metrics:  m,
		current:  defaults.Clone(),
		defaults: defaults,
	}
	s.saver = debounce.New(cfg.DebounceDelay, func() {
		s.save(context.Background())
	})
	return s
}

// Load reads the stored document. A missing or corrupt payload is treated as
// absent and replaced by the defaults, never surfaced as an error.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !redis.IsMissing(err) && s.log != nil {
			s.log.Warn(s.log.WithField(ctx, "error", err.Error()), "site content read failed, using defaults")
		}
		return
	}

	var doc SiteContent
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		if s.log != nil {
			s.log.Warn(s.log.WithField(ctx, "error", err.Error()), "corrupt site content, using defaults")
		}
		return
	}

	s.mu.Lock()
	s.current = doc
	s.mu.Unlock()
}

// Get returns a copy of the current document.
func (s *Store) Get() SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// UpdateHero replaces the hero section and schedules a save.
func (s *Store) UpdateHero(hero Hero) {
	s.mu.Lock()
	s.current.Hero = hero
	s.mu.Unlock()
	s.schedule()
}

// UpdateHeroCard replaces one hero grid card and schedules a save.
func (s *Store) UpdateHeroCard(index int, card HeroCard) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.current.HeroGrid) {
		s.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("hero card index %d out of range", index))
	}
	s.current.HeroGrid[index] = card
	s.mu.Unlock()
	s.schedule()
	return nil
}

// UpdateAbout replaces the about section and schedules a save.
func (s *Store) UpdateAbout(about About) {
	s.mu.Lock()
	s.current.About = about
	s.mu.Unlock()
	s.schedule()
}

// Reset restores the structural defaults and writes them out immediately.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.current = s.defaults.Clone()
	s.mu.Unlock()

	s.saver.Cancel()
	s.save(ctx)
}

// Flush writes any pending state synchronously.
func (s *Store) Flush(ctx context.Context) {
	if s.saver.Cancel() {
		s.save(ctx)
	}
}

// Close drops any pending write. Idempotent.
func (s *Store) Close() {
	s.saver.Close()
}

func (s *Store) schedule() {
	if s.saver.Trigger() {
		s.metrics.IncCollapsed(saverName)
	}
}

func (s *Store) save(ctx context.Context) {
	doc := s.Get()
	body, err := json.Marshal(doc)
	if err != nil {
		s.metrics.IncFailure(saverName)
		if s.log != nil {
			s.log.Error(ctx, "marshaling site content", err)
		}
		return
	}

	started := time.Now()
	err = s.kv.Set(ctx, s.key, string(body), 0)
	s.metrics.ObserveDuration(saverName, time.Since(started))
	if err != nil {
		s.metrics.IncFailure(saverName)
		if s.log != nil {
			s.log.Warn(s.log.WithField(ctx, "error", err.Error()), "site content save failed")
		}
		return
	}
	s.metrics.IncSuccess(saverName)
}
