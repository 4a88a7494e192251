package models

import "time"

// PlanEvent is published to Kafka whenever a diet plan is generated for a user.
type PlanEvent struct {
	EventID   string    `json:"event_id"`  // Unique event identifier
	UserID    int64     `json:"user_id"`   // User the plan was generated for
	Disease   string    `json:"disease"`   // Condition token used for selection
	BMI       float64   `json:"bmi"`       // BMI computed from the submitted biometrics
	CreatedAt time.Time `json:"created_at"`
}
