package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/chow/pkg/domain"
)

func TestRuleStrategy_Score(t *testing.T) {
	items := []domain.Item{
		{ID: "f1", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
		{ID: "f2", Breed: "Labrador", Size: domain.SizeLarge, LifeStage: domain.StageAdult, Condition: domain.ConditionJointCare},
	}
	pref := domain.Preference{
		Breed:      "Labrador",
		Size:       domain.SizeLarge,
		LifeStage:  domain.StageAdult,
		Conditions: []string{domain.ConditionJointCare},
	}

	strategy := &RuleStrategy{Bonuses: DefaultBonuses()}
	scored := strategy.Score(nil, pref, items)
	require.Len(t, scored, 2)

	// f1: no condition bonus (requester asked for one), size/stage 2, breed wildcard 0.5
	assert.InDelta(t, 2.5, scored[0].Score, 0.001)
	// f2: condition 3, size/stage 2, breed exact 1
	assert.InDelta(t, 6.0, scored[1].Score, 0.001)

	ranked := TopN(scored, 2)
	assert.Equal(t, "f2", ranked[0].Item.ID)
	assert.Equal(t, "f1", ranked[1].Item.ID)
}

func TestRuleStrategy_ConditionBonus(t *testing.T) {
	strategy := &RuleStrategy{Bonuses: DefaultBonuses()}

	t.Run("both sides without condition", func(t *testing.T) {
		scored := strategy.Score(nil, domain.Preference{Size: domain.SizeSmall, LifeStage: domain.StagePuppy},
			[]domain.Item{{ID: "f1", Breed: "All", Size: domain.SizeAll, LifeStage: domain.StageAll}})
		assert.InDelta(t, 3.5, scored[0].Score, 0.001) // condition 3 + breed wildcard 0.5
	})

	t.Run("tagged item without matching request earns nothing", func(t *testing.T) {
		scored := strategy.Score(nil, domain.Preference{Size: domain.SizeSmall, LifeStage: domain.StagePuppy},
			[]domain.Item{{ID: "f1", Breed: "All", Size: domain.SizeAll, LifeStage: domain.StageAll, Condition: domain.ConditionDental}})
		assert.InDelta(t, 0.5, scored[0].Score, 0.001)
	})
}

func TestRuleStrategy_SizeOrStageBonus(t *testing.T) {
	strategy := &RuleStrategy{Bonuses: DefaultBonuses()}
	pref := domain.Preference{Size: domain.SizeLarge, LifeStage: domain.StageAdult, Conditions: []string{domain.ConditionJointCare}}

	// matching only life stage still earns the full bonus, it is an OR
	scored := strategy.Score(nil, pref,
		[]domain.Item{{ID: "f1", Breed: "Poodle", Size: domain.SizeSmall, LifeStage: domain.StageAdult}})
	assert.InDelta(t, 2.0, scored[0].Score, 0.001)
}

func TestRuleStrategy_Monotonic(t *testing.T) {
	strategy := &RuleStrategy{Bonuses: DefaultBonuses()}
	pref := domain.Preference{
		Breed:      "Labrador",
		Size:       domain.SizeLarge,
		LifeStage:  domain.StageAdult,
		Conditions: []string{domain.ConditionJointCare},
	}

	base := domain.Item{ID: "f1", Breed: "Poodle", Size: domain.SizeSmall, LifeStage: domain.StagePuppy}
	withStage := base
	withStage.LifeStage = domain.StageAdult
	withCondition := withStage
	withCondition.Condition = domain.ConditionJointCare
	withBreed := withCondition
	withBreed.Breed = "Labrador"

	scored := strategy.Score(nil, pref, []domain.Item{base, withStage, withCondition, withBreed})
	require.Len(t, scored, 4)

	// adding a matching attribute never lowers the score
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i].Score, scored[i-1].Score)
	}
	assert.GreaterOrEqual(t, scored[0].Score, 0.0)
}

func TestCosineStrategy_Score(t *testing.T) {
	items := []domain.Item{
		{ID: "f1", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
		{ID: "f2", Breed: "Labrador", Size: domain.SizeLarge, LifeStage: domain.StageAdult, Condition: domain.ConditionJointCare},
	}
	pref := domain.Preference{
		Breed:      "Labrador",
		Size:       domain.SizeLarge,
		LifeStage:  domain.StageAdult,
		Conditions: []string{domain.ConditionJointCare},
	}

	space := NewFeatureSpace(items, DefaultWeights(), 1)
	strategy := &CosineStrategy{}
	scored := strategy.Score(space, pref, items)
	require.Len(t, scored, 2)

	// f2 matches the preference vector exactly
	assert.InDelta(t, 1.0, scored[1].Score, 0.001)
	// f1 overlaps on size and life stage only
	assert.InDelta(t, 0.2108, scored[0].Score, 0.001)

	for _, sc := range scored {
		assert.GreaterOrEqual(t, sc.Score, -1.0)
		assert.LessOrEqual(t, sc.Score, 1.0)
	}

	ranked := TopN(scored, 2)
	assert.Equal(t, "f2", ranked[0].Item.ID)
}

func TestCosineStrategy_DegenerateVectors(t *testing.T) {
	strategy := &CosineStrategy{}

	t.Run("empty feature space", func(t *testing.T) {
		space := NewFeatureSpace(nil, DefaultWeights(), 1)
		scored := strategy.Score(space, domain.Preference{Size: domain.SizeLarge, LifeStage: domain.StageAdult},
			[]domain.Item{{ID: "f1", Breed: "All", Size: domain.SizeAll, LifeStage: domain.StageAll}})
		require.Len(t, scored, 1)
		assert.Zero(t, scored[0].Score)
	})

	t.Run("preference with no keys in space", func(t *testing.T) {
		items := []domain.Item{{ID: "f1", Breed: "All", Size: domain.SizeAll, LifeStage: domain.StageAll}}
		space := NewFeatureSpace(items, DefaultWeights(), 1)
		// concrete size/stage/breed none of which exist in the catalog vocabulary
		scored := strategy.Score(space, domain.Preference{Breed: "Poodle", Size: domain.SizeLarge, LifeStage: domain.StageAdult}, items)
		require.Len(t, scored, 1)
		assert.Zero(t, scored[0].Score)
	})
}

func TestStrategies_Deterministic(t *testing.T) {
	items := []domain.Item{
		{ID: "f1", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
		{ID: "f2", Breed: "Labrador", Size: domain.SizeLarge, LifeStage: domain.StageAdult, Condition: domain.ConditionJointCare},
		{ID: "f3", Breed: "Labrador", Size: domain.SizeSmall, LifeStage: domain.StageSenior},
	}
	pref := domain.Preference{Breed: "Labrador", Size: domain.SizeLarge, LifeStage: domain.StageAdult}
	space := NewFeatureSpace(items, DefaultWeights(), 1)

	for _, strategy := range []Strategy{&RuleStrategy{Bonuses: DefaultBonuses()}, &CosineStrategy{}} {
		first := TopN(strategy.Score(space, pref, items), 3)
		second := TopN(strategy.Score(space, pref, items), 3)
		assert.Equal(t, first, second, "strategy %s", strategy.Name())
	}
}

func TestStrategyByName(t *testing.T) {
	s, err := StrategyByName("rules", DefaultBonuses())
	require.NoError(t, err)
	assert.Equal(t, StrategyRules, s.Name())

	s, err = StrategyByName("", DefaultBonuses())
	require.NoError(t, err)
	assert.Equal(t, StrategyRules, s.Name())

	s, err = StrategyByName("cosine", DefaultBonuses())
	require.NoError(t, err)
	assert.Equal(t, StrategyCosine, s.Name())

	_, err = StrategyByName("ml", DefaultBonuses())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scoring strategy")
}
