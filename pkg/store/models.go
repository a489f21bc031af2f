package store

import (
	"database/sql"

	"github.com/umputun/chow/pkg/domain"
)

// itemRecord is the database representation of a catalog item
type itemRecord struct {
	Seq       int64          `db:"seq"`
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Brand     string         `db:"brand"`
	Condition sql.NullString `db:"condition"`
	WeightLb  float64        `db:"weight_lb"`
	WeightKg  float64        `db:"weight_kg"`
	Price     float64        `db:"price"`
	Calories  float64        `db:"calories"`
	Breed     string         `db:"breed"`
	Size      string         `db:"size"`
	LifeStage string         `db:"life_stage"`
	Picture   string         `db:"picture"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *itemRecord) toDomain() domain.Item {
	item := domain.Item{
		ID:        r.ID,
		Name:      r.Name,
		Brand:     r.Brand,
		WeightLb:  r.WeightLb,
		WeightKg:  r.WeightKg,
		Price:     r.Price,
		Calories:  r.Calories,
		Breed:     r.Breed,
		Size:      domain.Size(r.Size),
		LifeStage: domain.LifeStage(r.LifeStage),
		Picture:   r.Picture,
	}
	if r.Condition.Valid {
		item.Condition = r.Condition.String
	}
	return item
}

func toRecord(item domain.Item) itemRecord {
	rec := itemRecord{
		ID:        item.ID,
		Name:      item.Name,
		Brand:     item.Brand,
		WeightLb:  item.WeightLb,
		WeightKg:  item.WeightKg,
		Price:     item.Price,
		Calories:  item.Calories,
		Breed:     item.Breed,
		Size:      string(item.Size),
		LifeStage: string(item.LifeStage),
		Picture:   item.Picture,
	}
	if item.Condition != "" {
		rec.Condition = sql.NullString{String: item.Condition, Valid: true}
	}
	return rec
}
