package models

import "time"

// DietPlanDB represents a stored diet plan in the database.
// The plan payload is kept as an opaque serialized document; the store never
// parses it. Exactly one row per user, overwritten on regeneration.
type DietPlanDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning user, unique
	PlanData  string    `json:"plan_data" db:"plan_data"`   // Serialized plan document
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
