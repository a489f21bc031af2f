// Package recommender implements the recommendation core: a hard categorical
// eligibility filter with wildcard fallbacks, category-weighted one-hot
// feature encoding, two interchangeable scoring strategies (explicit rule
// bonuses and cosine similarity) and stable top-N selection.
package recommender

import (
	"context"
	"fmt"
	"sync"

	"github.com/umputun/chow/pkg/domain"
)

//go:generate moq -out mocks/catalog_provider.go -pkg mocks -skip-ensure -fmt goimports . CatalogProvider

// CatalogProvider supplies immutable catalog snapshots. A failed load must
// surface as an error, the engine never substitutes an empty catalog.
type CatalogProvider interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// Engine runs the full recommendation pipeline: snapshot, filter, score,
// top-N. It caches the feature space per catalog version, so the pass over
// all items happens only when the catalog changes. Safe for concurrent use,
// each request owns its preference and derived vectors.
type Engine struct {
	provider CatalogProvider
	strategy Strategy
	weights  Weights
	topN     int

	mu    sync.Mutex
	space *FeatureSpace
}

// DefaultTopN is the number of recommendations returned unless configured
const DefaultTopN = 3

// Params holds engine construction parameters, zero values fall back to
// defaults
type Params struct {
	Provider CatalogProvider
	Strategy Strategy
	Weights  Weights
	TopN     int
}

// NewEngine creates a recommendation engine
func NewEngine(p Params) *Engine {
	if p.Strategy == nil {
		p.Strategy = &RuleStrategy{Bonuses: DefaultBonuses()}
	}
	if p.Weights == (Weights{}) {
		p.Weights = DefaultWeights()
	}
	if p.TopN <= 0 {
		p.TopN = DefaultTopN
	}
	return &Engine{provider: p.Provider, strategy: p.Strategy, weights: p.Weights, topN: p.TopN}
}

// Recommend returns the top-N catalog items for a preference, ordered by
// descending relevance with catalog order breaking ties. An empty catalog or
// an empty eligible set yields an empty list without error, only a failed
// catalog load is a fault.
//
// A requested breed missing from the catalog's breed vocabulary is treated
// as no breed constraint: it contributes no vector key and only
// wildcard-breed items pass the breed clause.
func (e *Engine) Recommend(ctx context.Context, pref domain.Preference) ([]ScoredItem, error) {
	snap, err := e.provider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	space := e.featureSpace(snap)
	if pref.Breed != "" && !space.HasBreed(pref.Breed) {
		pref.Breed = ""
	}

	eligible := Eligible(snap.Items, pref)
	scored := e.strategy.Score(space, pref, eligible)
	return TopN(scored, e.topN), nil
}

// TopN returns the configured result count
func (e *Engine) TopN() int { return e.topN }

// Strategy returns the config name of the active scoring strategy
func (e *Engine) Strategy() string { return e.strategy.Name() }

// featureSpace returns the cached feature space, rebuilding it when the
// catalog version moved
func (e *Engine) featureSpace(snap *domain.Snapshot) *FeatureSpace {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.space == nil || e.space.Version() != snap.Version {
		e.space = NewFeatureSpace(snap.Items, e.weights, snap.Version)
	}
	return e.space
}
