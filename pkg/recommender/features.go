package recommender

import (
	"github.com/umputun/chow/pkg/domain"
)

// feature categories forming the (category, value) key space
const (
	categoryBreed     = "breed"
	categorySize      = "size"
	categoryLifeStage = "lifeStage"
	categoryCondition = "condition"
)

// FeatureKey identifies one categorical feature as a (category, value) pair,
// e.g. (breed, "Labrador") or (condition, "Joint Care")
type FeatureKey struct {
	Category string
	Value    string
}

// Weights hold the per-category multipliers applied to encoded vectors before
// similarity scoring. Higher weight means the category contributes more to
// cosine relevance.
type Weights struct {
	Breed     float64
	Size      float64
	LifeStage float64
	Condition float64
}

// DefaultWeights favor dietary/health fit over everything else: condition
// highest, breed next, size and life stage lowest
func DefaultWeights() Weights {
	return Weights{Breed: 2, Size: 1, LifeStage: 1, Condition: 3}
}

func (w Weights) forCategory(category string) float64 {
	switch category {
	case categoryBreed:
		return w.Breed
	case categorySize:
		return w.Size
	case categoryLifeStage:
		return w.LifeStage
	case categoryCondition:
		return w.Condition
	}
	return 1
}

// FeatureSpace is the ordered set of distinct feature keys observed across a
// catalog snapshot. It defines the coordinate system for one-hot encoding of
// items and preferences, and is tied to the snapshot version it was built
// from so callers can reuse it until the catalog changes. Read-only after
// construction, safe for concurrent use.
type FeatureSpace struct {
	keys    []FeatureKey
	index   map[FeatureKey]int
	weights Weights
	version int64
}

// NewFeatureSpace scans the items and collects distinct feature keys in
// first-seen order. Items without a condition contribute no condition key,
// absence is a legitimate sparse state. An empty catalog yields an empty
// space, encoding over it produces empty vectors.
func NewFeatureSpace(items []domain.Item, weights Weights, version int64) *FeatureSpace {
	fs := &FeatureSpace{
		index:   make(map[FeatureKey]int),
		weights: weights,
		version: version,
	}
	for _, item := range items {
		for _, key := range itemKeys(item) {
			fs.add(key)
		}
	}
	return fs
}

func itemKeys(item domain.Item) []FeatureKey {
	keys := []FeatureKey{
		{Category: categoryBreed, Value: item.Breed},
		{Category: categorySize, Value: string(item.Size)},
		{Category: categoryLifeStage, Value: string(item.LifeStage)},
	}
	if item.Condition != "" {
		keys = append(keys, FeatureKey{Category: categoryCondition, Value: item.Condition})
	}
	return keys
}

func (fs *FeatureSpace) add(key FeatureKey) {
	if _, ok := fs.index[key]; ok {
		return
	}
	fs.index[key] = len(fs.keys)
	fs.keys = append(fs.keys, key)
}

// Size returns the number of distinct feature keys
func (fs *FeatureSpace) Size() int { return len(fs.keys) }

// Version returns the catalog version the space was built from
func (fs *FeatureSpace) Version() int64 { return fs.version }

// Has reports whether the key exists in the space
func (fs *FeatureSpace) Has(key FeatureKey) bool {
	_, ok := fs.index[key]
	return ok
}

// HasBreed reports whether the breed value exists in the catalog's breed
// vocabulary, wildcard included
func (fs *FeatureSpace) HasBreed(breed string) bool {
	return fs.Has(FeatureKey{Category: categoryBreed, Value: breed})
}

// EncodeItem produces the category-weighted one-hot vector for an item over
// the shared feature space
func (fs *FeatureSpace) EncodeItem(item domain.Item) []float64 {
	vec := make([]float64, len(fs.keys))
	for _, key := range itemKeys(item) {
		fs.set(vec, key)
	}
	return vec
}

// EncodePreference produces the category-weighted vector for a preference
// over the same feature space as the items. A breed missing from the space
// contributes no key, it neither creates a new feature nor maps to the
// wildcard. Requested conditions absent from the catalog are skipped the
// same way.
func (fs *FeatureSpace) EncodePreference(pref domain.Preference) []float64 {
	vec := make([]float64, len(fs.keys))
	fs.set(vec, FeatureKey{Category: categorySize, Value: string(pref.Size)})
	fs.set(vec, FeatureKey{Category: categoryLifeStage, Value: string(pref.LifeStage)})
	if pref.Breed != "" {
		fs.set(vec, FeatureKey{Category: categoryBreed, Value: pref.Breed})
	}
	for _, condition := range pref.Conditions {
		fs.set(vec, FeatureKey{Category: categoryCondition, Value: condition})
	}
	return vec
}

// set writes the weighted one-hot value for key, no-op when the key is not
// part of the space
func (fs *FeatureSpace) set(vec []float64, key FeatureKey) {
	if i, ok := fs.index[key]; ok {
		vec[i] = fs.weights.forCategory(key.Category)
	}
}
