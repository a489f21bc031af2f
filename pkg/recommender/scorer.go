package recommender

import (
	"fmt"
	"math"

	"github.com/umputun/chow/pkg/domain"
)

// ScoredItem pairs a catalog item with its relevance score for one request
type ScoredItem struct {
	Item  domain.Item
	Score float64
}

// Strategy scores a set of eligible items against a preference. Both
// implementations are deterministic and never fail, an empty input yields an
// empty result. The returned slice preserves the input (catalog) order,
// ranking happens later in TopN.
type Strategy interface {
	Score(space *FeatureSpace, pref domain.Preference, items []domain.Item) []ScoredItem
	Name() string
}

// strategy names accepted by StrategyByName
const (
	StrategyRules  = "rules"
	StrategyCosine = "cosine"
)

// StrategyByName returns the scoring strategy for a config value
func StrategyByName(name string, bonuses Bonuses) (Strategy, error) {
	switch name {
	case StrategyRules, "":
		return &RuleStrategy{Bonuses: bonuses}, nil
	case StrategyCosine:
		return &CosineStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown scoring strategy %q", name)
}

// Bonuses configure the weighted rule strategy. Each bonus is added to an
// item's score when the corresponding match holds.
type Bonuses struct {
	Condition     float64 // condition matches, or both sides have none
	SizeOrStage   float64 // exact size or exact life stage match
	BreedExact    float64 // exact breed match
	BreedWildcard float64 // wildcard-breed item, mutually exclusive with exact
}

// DefaultBonuses mirror the category weights ordering: condition fit worth
// the most, a wildcard breed worth less than an exact one
func DefaultBonuses() Bonuses {
	return Bonuses{Condition: 3, SizeOrStage: 2, BreedExact: 1, BreedWildcard: 0.5}
}

// RuleStrategy accumulates explicit match bonuses per item. Fully explainable
// and always non-negative, adding a matching attribute never lowers a score.
type RuleStrategy struct {
	Bonuses Bonuses
}

// Name returns the config name of the strategy
func (s *RuleStrategy) Name() string { return StrategyRules }

// Score computes the weighted rule score for each item. The feature space is
// unused here, rule scoring works directly off the categorical attributes.
func (s *RuleStrategy) Score(_ *FeatureSpace, pref domain.Preference, items []domain.Item) []ScoredItem {
	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		scored = append(scored, ScoredItem{Item: item, Score: s.score(item, pref)})
	}
	return scored
}

func (s *RuleStrategy) score(item domain.Item, pref domain.Preference) float64 {
	score := 0.0

	// condition bonus: both sides agree on no condition, or the item's tag
	// was explicitly requested
	switch {
	case item.Condition == "" && len(pref.Conditions) == 0:
		score += s.Bonuses.Condition
	case item.Condition != "" && pref.WantsCondition(item.Condition):
		score += s.Bonuses.Condition
	}

	// one bonus for matching either size or life stage exactly, wildcard
	// items earn nothing here
	if item.Size == pref.Size || item.LifeStage == pref.LifeStage {
		score += s.Bonuses.SizeOrStage
	}

	// exact and wildcard breed bonuses are mutually exclusive
	switch {
	case pref.Breed != "" && item.Breed == pref.Breed:
		score += s.Bonuses.BreedExact
	case item.Breed == domain.Wildcard:
		score += s.Bonuses.BreedWildcard
	}

	return score
}

// CosineStrategy scores items by cosine similarity between the item's
// weighted feature vector and the preference vector over the shared feature
// space
type CosineStrategy struct{}

// Name returns the config name of the strategy
func (s *CosineStrategy) Name() string { return StrategyCosine }

// Score computes cosine similarity per item. Zero-magnitude vectors (empty
// feature space, or a preference with no keys in the space) score 0 by
// convention, never a divide-by-zero.
func (s *CosineStrategy) Score(space *FeatureSpace, pref domain.Preference, items []domain.Item) []ScoredItem {
	prefVec := space.EncodePreference(pref)
	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		scored = append(scored, ScoredItem{Item: item, Score: cosine(space.EncodeItem(item), prefVec)})
	}
	return scored
}

// cosine returns similarity in [-1, 1], or 0 when either vector has zero
// magnitude
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
