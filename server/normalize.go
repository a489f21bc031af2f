package server

import (
	"fmt"
	"strings"

	"github.com/umputun/chow/pkg/domain"
)

// recommendationRequest is the raw inbound payload. Weight and age are
// pointers to tell a missing field from a zero value.
type recommendationRequest struct {
	Breed        string   `json:"breed"`
	AnimalWeight *float64 `json:"animalWeight"`
	Age          *float64 `json:"age"`
	Conditions   []string `json:"conditions"`
}

// normalize validates the raw request and maps it to a core preference:
// animal weight (lb) to a size class, age (years) to a life stage, free-text
// condition names to the canonical vocabulary. Breed passes through as
// stated, the engine treats a breed missing from the catalog vocabulary as
// no constraint beyond the wildcard.
func (r recommendationRequest) normalize() (domain.Preference, error) {
	if r.AnimalWeight == nil || *r.AnimalWeight <= 0 {
		return domain.Preference{}, fmt.Errorf("animalWeight must be a positive number")
	}
	if r.Age == nil || *r.Age < 0 {
		return domain.Preference{}, fmt.Errorf("age must be a non-negative number")
	}

	pref := domain.Preference{
		Breed:     strings.TrimSpace(r.Breed),
		Size:      sizeFromWeight(*r.AnimalWeight),
		LifeStage: stageFromAge(*r.Age),
	}

	for _, raw := range r.Conditions {
		tag, ok := canonicalCondition(raw)
		if !ok {
			return domain.Preference{}, fmt.Errorf("unknown condition %q, supported: %s",
				raw, strings.Join(domain.Conditions(), ", "))
		}
		if !pref.WantsCondition(tag) {
			pref.Conditions = append(pref.Conditions, tag)
		}
	}

	return pref, nil
}

// sizeFromWeight maps animal weight in pounds to a size class
func sizeFromWeight(lb float64) domain.Size {
	switch {
	case lb < 12:
		return domain.SizeXSmall
	case lb < 25:
		return domain.SizeSmall
	case lb < 60:
		return domain.SizeMedium
	case lb < 100:
		return domain.SizeLarge
	default:
		return domain.SizeGiant
	}
}

// stageFromAge maps age in years to a life stage, senior from 7, adult from 2
func stageFromAge(years float64) domain.LifeStage {
	switch {
	case years >= 7:
		return domain.StageSenior
	case years >= 2:
		return domain.StageAdult
	default:
		return domain.StagePuppy
	}
}

// conditionSynonyms maps lowercased free-text condition names to canonical tags
var conditionSynonyms = map[string]string{
	"joint care":        domain.ConditionJointCare,
	"joint":             domain.ConditionJointCare,
	"joints":            domain.ConditionJointCare,
	"mobility":          domain.ConditionJointCare,
	"weight management": domain.ConditionWeight,
	"weight":            domain.ConditionWeight,
	"obesity":           domain.ConditionWeight,
	"overweight":        domain.ConditionWeight,
	"skin & coat":       domain.ConditionSkinCoat,
	"skin and coat":     domain.ConditionSkinCoat,
	"skin":              domain.ConditionSkinCoat,
	"coat":              domain.ConditionSkinCoat,
	"digestive care":    domain.ConditionDigestive,
	"digestive":         domain.ConditionDigestive,
	"digestion":         domain.ConditionDigestive,
	"sensitive stomach": domain.ConditionDigestive,
	"dental care":       domain.ConditionDental,
	"dental":            domain.ConditionDental,
	"teeth":             domain.ConditionDental,
	"urinary care":      domain.ConditionUrinary,
	"urinary":           domain.ConditionUrinary,
}

// canonicalCondition resolves a raw condition name to a canonical tag
func canonicalCondition(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if domain.KnownCondition(trimmed) {
		return trimmed, true
	}
	tag, ok := conditionSynonyms[strings.ToLower(trimmed)]
	return tag, ok
}
