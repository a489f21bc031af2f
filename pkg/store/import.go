package store

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/chow/pkg/domain"
)

// fileItem is the JSON catalog file representation of a product
type fileItem struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Condition *string `json:"condition"`
	WeightLb  float64 `json:"packageWeight_lb"`
	WeightKg  float64 `json:"packageWeight_kg"`
	Price     float64 `json:"price"`
	Calories  float64 `json:"calories"`
	Breed     string  `json:"breed"`
	Size      string  `json:"animalSize"`
	LifeStage string  `json:"lifeStage"`
	Picture   string  `json:"picture"`
}

// ImportFile loads a JSON catalog file and replaces the stored catalog with
// its content. Free-text fields are sanitized, the catalog comes from an
// external feed and its values end up in web UIs. Items with unknown size,
// life stage or condition values are rejected, the import is all or nothing.
// Returns the number of imported items.
func (s *Store) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path) //nolint:gosec // catalog path comes from config
	if err != nil {
		return 0, fmt.Errorf("%w: read catalog file: %v", ErrCatalogUnavailable, err)
	}

	var fileItems []fileItem
	if err := json.Unmarshal(data, &fileItems); err != nil {
		return 0, fmt.Errorf("%w: parse catalog file: %v", ErrCatalogUnavailable, err)
	}

	sanitizer := bluemonday.StrictPolicy()
	items := make([]domain.Item, 0, len(fileItems))
	for i, fi := range fileItems {
		item, err := fi.toDomain(sanitizer)
		if err != nil {
			return 0, fmt.Errorf("%w: catalog record %d: %v", ErrCatalogUnavailable, i, err)
		}
		items = append(items, item)
	}

	if err := s.ReplaceItems(ctx, items); err != nil {
		return 0, fmt.Errorf("replace catalog: %w", err)
	}
	return len(items), nil
}

func (fi fileItem) toDomain(sanitizer *bluemonday.Policy) (domain.Item, error) {
	if fi.ID == "" {
		return domain.Item{}, fmt.Errorf("missing item id")
	}

	size, err := domain.ParseSize(fi.Size)
	if err != nil {
		return domain.Item{}, err
	}
	stage, err := domain.ParseLifeStage(fi.LifeStage)
	if err != nil {
		return domain.Item{}, err
	}

	item := domain.Item{
		ID:        fi.ID,
		Name:      sanitizer.Sanitize(fi.Name),
		Brand:     sanitizer.Sanitize(fi.Brand),
		WeightLb:  fi.WeightLb,
		WeightKg:  fi.WeightKg,
		Price:     fi.Price,
		Calories:  fi.Calories,
		Breed:     sanitizer.Sanitize(fi.Breed),
		Size:      size,
		LifeStage: stage,
		Picture:   sanitizer.Sanitize(fi.Picture),
	}
	if item.Breed == "" {
		return domain.Item{}, fmt.Errorf("missing breed for item %s", fi.ID)
	}

	if fi.Condition != nil && *fi.Condition != "" {
		if !domain.KnownCondition(*fi.Condition) {
			return domain.Item{}, fmt.Errorf("unknown condition %q for item %s", *fi.Condition, fi.ID)
		}
		item.Condition = *fi.Condition
	}
	return item, nil
}
