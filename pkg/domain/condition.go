package domain

// canonical health condition vocabulary. The HTTP layer maps free-text
// synonyms to these tags before anything reaches the recommendation core.
const (
	ConditionJointCare = "Joint Care"
	ConditionWeight    = "Weight Management"
	ConditionSkinCoat  = "Skin & Coat"
	ConditionDigestive = "Digestive Care"
	ConditionDental    = "Dental Care"
	ConditionUrinary   = "Urinary Care"
)

// Conditions returns the full canonical condition vocabulary
func Conditions() []string {
	return []string{
		ConditionJointCare,
		ConditionWeight,
		ConditionSkinCoat,
		ConditionDigestive,
		ConditionDental,
		ConditionUrinary,
	}
}

// KnownCondition reports whether the tag belongs to the canonical vocabulary
func KnownCondition(tag string) bool {
	for _, c := range Conditions() {
		if c == tag {
			return true
		}
	}
	return false
}
