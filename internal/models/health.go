package models

import "time"

// HealthRecordDB represents a biometric record in the database.
// One row per user; bmi is always recomputed from weight and height at write time.
type HealthRecordDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning user, unique
	Age       int       `json:"age" db:"age"`               // Age in years
	Weight    float64   `json:"weight" db:"weight"`         // Weight in kilograms
	Height    float64   `json:"height" db:"height"`         // Height in centimeters
	Gender    string    `json:"gender" db:"gender"`         // Gender label
	Disease   string    `json:"disease" db:"disease"`       // Condition token, may be empty
	BMI       float64   `json:"bmi" db:"bmi"`               // Derived, rounded to 2 decimals
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// HealthData is the wire shape of a health record on the dashboard.
type HealthData struct {
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
	Height  float64 `json:"height"`
	Gender  string  `json:"gender"`
	Disease string  `json:"disease"`
	BMI     float64 `json:"bmi"`
}
