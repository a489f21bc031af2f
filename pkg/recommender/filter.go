package recommender

import (
	"github.com/umputun/chow/pkg/domain"
)

// Eligible applies the hard categorical match rules and returns the subset of
// items a preference can be scored against. The result preserves catalog
// order and may legitimately be empty, that is a valid "no matches" outcome,
// not an error.
//
// Rules, all must hold:
//   - breed: exact match or wildcard item. With no resolvable requested breed
//     only wildcard items pass.
//   - size and life stage: exact match or wildcard item.
//   - condition: an untagged item always passes. A condition-tagged item
//     passes only when the requester asked for that condition, except when no
//     conditions were requested at all, then every item passes the clause
//     and tagged items are merely deprioritized in scoring (permissive
//     policy, the filter never excludes purely on a missing preference).
func Eligible(items []domain.Item, pref domain.Preference) []domain.Item {
	eligible := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if matches(item, pref) {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

func matches(item domain.Item, pref domain.Preference) bool {
	if item.Breed != domain.Wildcard && (pref.Breed == "" || item.Breed != pref.Breed) {
		return false
	}
	if item.Size != domain.SizeAll && item.Size != pref.Size {
		return false
	}
	if item.LifeStage != domain.StageAll && item.LifeStage != pref.LifeStage {
		return false
	}
	if item.Condition != "" && len(pref.Conditions) > 0 && !pref.WantsCondition(item.Condition) {
		return false
	}
	return true
}
