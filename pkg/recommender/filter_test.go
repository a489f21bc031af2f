package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/chow/pkg/domain"
)

func TestEligible_Wildcards(t *testing.T) {
	items := []domain.Item{
		{ID: "f1", Breed: "All", Size: domain.SizeAll, LifeStage: domain.StageAll},
	}

	prefs := []domain.Preference{
		{Breed: "Labrador", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
		{Breed: "", Size: domain.SizeXSmall, LifeStage: domain.StagePuppy},
		{Breed: "Poodle", Size: domain.SizeGiant, LifeStage: domain.StageSenior, Conditions: []string{domain.ConditionJointCare}},
	}

	// all-wildcard item passes regardless of requested values
	for _, pref := range prefs {
		eligible := Eligible(items, pref)
		assert.Len(t, eligible, 1, "pref %+v", pref)
	}
}

func TestEligible_SizeAndLifeStage(t *testing.T) {
	items := []domain.Item{
		{ID: "f1", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
		{ID: "f2", Breed: "All", Size: domain.SizeSmall, LifeStage: domain.StageAdult},
		{ID: "f3", Breed: "All", Size: domain.SizeAll, LifeStage: domain.StagePuppy},
	}

	eligible := Eligible(items, domain.Preference{Size: domain.SizeLarge, LifeStage: domain.StageAdult})

	require.Len(t, eligible, 1)
	assert.Equal(t, "f1", eligible[0].ID)
}

func TestEligible_Breed(t *testing.T) {
	items := []domain.Item{
		{ID: "f1", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
		{ID: "f2", Breed: "Labrador", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
		{ID: "f3", Breed: "Poodle", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
	}

	t.Run("exact match plus wildcard", func(t *testing.T) {
		eligible := Eligible(items, domain.Preference{Breed: "Labrador", Size: domain.SizeLarge, LifeStage: domain.StageAdult})
		require.Len(t, eligible, 2)
		assert.Equal(t, "f1", eligible[0].ID)
		assert.Equal(t, "f2", eligible[1].ID)
	})

	t.Run("no resolvable breed leaves wildcard items only", func(t *testing.T) {
		eligible := Eligible(items, domain.Preference{Size: domain.SizeLarge, LifeStage: domain.StageAdult})
		require.Len(t, eligible, 1)
		assert.Equal(t, "f1", eligible[0].ID)
	})
}

func TestEligible_ConditionPermissive(t *testing.T) {
	items := []domain.Item{
		{ID: "f1", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
		{ID: "f2", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult, Condition: domain.ConditionJointCare},
		{ID: "f3", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult, Condition: domain.ConditionDental},
	}

	t.Run("no requested conditions passes everything", func(t *testing.T) {
		eligible := Eligible(items, domain.Preference{Size: domain.SizeLarge, LifeStage: domain.StageAdult})
		assert.Len(t, eligible, 3)
	})

	t.Run("requested condition excludes unrelated tags", func(t *testing.T) {
		eligible := Eligible(items, domain.Preference{
			Size: domain.SizeLarge, LifeStage: domain.StageAdult,
			Conditions: []string{domain.ConditionJointCare},
		})
		require.Len(t, eligible, 2)
		assert.Equal(t, "f1", eligible[0].ID, "untagged item always passes")
		assert.Equal(t, "f2", eligible[1].ID)
	})
}

func TestEligible_SubsetAndOrder(t *testing.T) {
	items := []domain.Item{
		{ID: "f1", Breed: "All", Size: domain.SizeAll, LifeStage: domain.StageAll},
		{ID: "f2", Breed: "All", Size: domain.SizeXSmall, LifeStage: domain.StageAll},
		{ID: "f3", Breed: "All", Size: domain.SizeAll, LifeStage: domain.StageAll},
	}

	eligible := Eligible(items, domain.Preference{Size: domain.SizeGiant, LifeStage: domain.StageSenior})

	// output is a subset of input, catalog order preserved
	require.Len(t, eligible, 2)
	assert.Equal(t, "f1", eligible[0].ID)
	assert.Equal(t, "f3", eligible[1].ID)
}

func TestEligible_EmptyCatalog(t *testing.T) {
	eligible := Eligible(nil, domain.Preference{Size: domain.SizeLarge, LifeStage: domain.StageAdult})
	assert.Empty(t, eligible)
	assert.NotNil(t, eligible)
}
