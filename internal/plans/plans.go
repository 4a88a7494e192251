package plans

import "github.com/sbilibin2017/health-planner/internal/models"

// Recognized condition tokens.
const (
	ConditionNone          = "none"
	ConditionDiabetes      = "diabetes"
	ConditionBloodPressure = "blood-pressure"
	ConditionHeartDisease  = "heart-disease"
	ConditionObesity       = "obesity"
	ConditionThyroid       = "thyroid"
)

// templates maps a condition token to its static weekly plan.
// The plan bodies live in templates.go; adding a condition means adding a
// template there and an entry here, the selector itself does not change.
var templates = map[string]models.PlanDocument{
	ConditionNone:          normalPlan,
	ConditionDiabetes:      diabeticPlan,
	ConditionBloodPressure: bloodPressurePlan,
	ConditionHeartDisease:  heartPlan,
	ConditionObesity:       weightLossPlan,
	ConditionThyroid:       thyroidPlan,
}

// Select returns the weekly plan for the given condition token.
// Unrecognized or empty tokens fall back to the normal plan.
func Select(condition string) models.PlanDocument {
	if plan, ok := templates[condition]; ok {
		return plan
	}
	return normalPlan
}

// IsRecognized reports whether the token names one of the fixed conditions.
func IsRecognized(condition string) bool {
	_, ok := templates[condition]
	return ok
}
