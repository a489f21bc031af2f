package domain

import "fmt"

// Wildcard is the catalog attribute value matching any requested value
// for its category. Used by breed, size and life stage.
const Wildcard = "All"

// Size is the animal size class a product targets
type Size string

// size classes, ordered smallest to largest
const (
	SizeXSmall Size = "X-Small"
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
	SizeGiant  Size = "Giant"
	SizeAll    Size = Wildcard
)

// LifeStage is the life stage a product targets
type LifeStage string

// life stages
const (
	StagePuppy  LifeStage = "Puppy"
	StageAdult  LifeStage = "Adult"
	StageSenior LifeStage = "Senior"
	StageAll    LifeStage = Wildcard
)

// Item represents one catalog product with its categorical attributes.
// Breed, Size and LifeStage are either a concrete value or the "All" wildcard.
// Condition is a canonical condition tag, empty means no targeted condition.
// Items are loaded once and never mutated after that.
type Item struct {
	ID        string
	Name      string
	Brand     string
	Condition string
	WeightLb  float64
	WeightKg  float64
	Price     float64
	Calories  float64
	Breed     string
	Size      Size
	LifeStage LifeStage
	Picture   string
}

// Snapshot is an immutable view of the full catalog. Version changes whenever
// the catalog content changes, so derived state (feature space) can be cached
// against it. Safe for concurrent read-only access.
type Snapshot struct {
	Items   []Item
	Version int64
}

// ParseSize converts a raw string to a Size, accepting the wildcard
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeXSmall, SizeSmall, SizeMedium, SizeLarge, SizeGiant, SizeAll:
		return Size(s), nil
	}
	return "", fmt.Errorf("unknown size class %q", s)
}

// ParseLifeStage converts a raw string to a LifeStage, accepting the wildcard
func ParseLifeStage(s string) (LifeStage, error) {
	switch LifeStage(s) {
	case StagePuppy, StageAdult, StageSenior, StageAll:
		return LifeStage(s), nil
	}
	return "", fmt.Errorf("unknown life stage %q", s)
}
