package domain

// Preference holds the requester's constraints for a single recommendation
// request. Size and LifeStage are always concrete values, never the wildcard.
// Breed is empty when the requester supplied no breed or the supplied breed
// could not be resolved against the catalog vocabulary. Conditions carries
// zero or more canonical condition tags. A Preference is built fresh per
// request and owned by that request.
type Preference struct {
	Breed      string
	Size       Size
	LifeStage  LifeStage
	Conditions []string
}

// WantsCondition reports whether the given condition tag is among the
// requested ones
func (p Preference) WantsCondition(condition string) bool {
	for _, c := range p.Conditions {
		if c == condition {
			return true
		}
	}
	return false
}
