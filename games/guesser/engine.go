/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Engine bundles the read-only reference data and the components built on
// it. One Engine serves any number of sessions; it holds no per-game state.
type Engine struct {
	entities []Entity
	matrix   *Matrix
	catalog  *Catalog
	cfg      Config

	jitter    JitterSource
	logger    *zap.Logger
	iconic    []string
	rareTypes []string
	now       func() time.Time

	ranker     *Ranker
	selector   *Selector
	tieBreaker *TieBreaker
}

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithJitter replaces the default tie jitter, which is seeded from the clock.
func WithJitter(j JitterSource) Option {
	return func(e *Engine) {
		if j != nil {
			e.jitter = j
		}
	}
}

func WithIconic(ids []string) Option {
	return func(e *Engine) {
		e.iconic = ids
	}
}

func WithRareTypes(types []string) Option {
	return func(e *Engine) {
		e.rareTypes = types
	}
}

func withClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(entities []Entity, matrix *Matrix, catalog *Catalog, cfg Config, opts ...Option) (*Engine, error) {
	if len(entities) == 0 {
		return nil, fmt.Errorf("%w: no entities to guess from", ErrInvalidData)
	}
	if catalog == nil {
		return nil, fmt.Errorf("%w: missing trait catalog", ErrInvalidData)
	}
	if matrix == nil {
		matrix = NewMatrix(nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		entities:  append([]Entity(nil), entities...),
		matrix:    matrix,
		catalog:   catalog,
		cfg:       cfg,
		logger:    zap.NewNop(),
		iconic:    DefaultIconic,
		rareTypes: DefaultRareTypes,
		now:       time.Now,
	}
	e.cfg.Quotas = make(map[Category]int, len(cfg.Quotas))
	for c, q := range cfg.Quotas {
		e.cfg.Quotas[c] = q
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.jitter == nil {
		e.jitter = NewSeededJitter(uint64(e.now().UnixNano()))
	}

	e.ranker = NewRanker(e.entities, e.matrix, e.catalog, e.cfg, e.jitter)
	e.selector = NewSelector(e.catalog, e.matrix, e.ranker, e.cfg, e.logger)
	e.tieBreaker = NewTieBreaker(e.cfg.TieEpsilon, e.iconic, e.rareTypes)

	for _, t := range e.catalog.traits {
		if !e.matrix.Covers(t.Key) {
			e.logger.Debug("trait has no matrix row and can never split candidates",
				zap.String("trait", t.Key),
			)
		}
	}

	return e, nil
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

func (e *Engine) Ranker() *Ranker {
	return e.ranker
}

func (e *Engine) Selector() *Selector {
	return e.selector
}

func (e *Engine) TieBreaker() *TieBreaker {
	return e.tieBreaker
}

// Entity looks up an entity by identifier.
func (e *Engine) Entity(id string) (*Entity, bool) {
	for i := range e.entities {
		if e.entities[i].ID == id {
			return &e.entities[i], true
		}
	}

	return nil, false
}

func (e *Engine) NumEntities() int {
	return len(e.entities)
}

// NewBelief returns an empty belief using the engine's catalog and quotas.
func (e *Engine) NewBelief() *Belief {
	return NewBelief(e.catalog, e.cfg.Quotas)
}
