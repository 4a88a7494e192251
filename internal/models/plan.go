package models

// PlanDay is one day entry of a weekly diet plan.
type PlanDay struct {
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

// PlanDocument is the structured weekly diet/exercise plan: seven day entries,
// an exercise recommendation, a water-intake recommendation and a list of tips.
type PlanDocument struct {
	Days     []PlanDay `json:"days"`
	Exercise string    `json:"exercise"`
	Water    string    `json:"water"`
	Tips     []string  `json:"tips"`
}
