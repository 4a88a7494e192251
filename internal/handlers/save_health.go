package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/health-planner/internal/logger"
	"github.com/sbilibin2017/health-planner/internal/models"
	"github.com/sbilibin2017/health-planner/internal/services"
)

// HealthSaver stores biometrics and derives the BMI and diet plan for them.
type HealthSaver interface {
	SaveHealth(ctx context.Context, userID int64, age int, weight, height float64, gender, disease string) (float64, *models.PlanDocument, error)
}

// SaveHealthResponse is returned on successful biometrics submission.
type SaveHealthResponse struct {
	// Whether the action succeeded
	Success bool `json:"success"`

	// Body mass index derived from the submitted measurements
	BMI float64 `json:"bmi"`

	// The weekly diet plan selected for the submitted condition
	DietPlan *models.PlanDocument `json:"dietPlan"`
}

// NewSaveHealthHandler returns a handler for the save-health action.
//
// @Summary      Submit biometrics
// @Description  Stores the measurements, computes BMI and selects a weekly diet plan.
// @Tags         health
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        action   formData  string  true  "Must be save-health"
// @Param        age      formData  int     true  "Age in years"
// @Param        weight   formData  number  true  "Weight in kilograms"
// @Param        height   formData  number  true  "Height in centimeters"
// @Param        gender   formData  string  true  "Gender label"
// @Param        disease  formData  string  true  "Condition label"
// @Success      200  {object}  SaveHealthResponse
// @Router       / [post]
func NewSaveHealthHandler(svc HealthSaver, sessions SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := sessions.Current(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to resolve session", "error", err)
			writeFailure(w, "Failed to save health data")
			return
		}
		if sess == nil {
			writeFailure(w, "Not logged in")
			return
		}

		age, ageErr := strconv.Atoi(r.PostFormValue("age"))
		weight, weightErr := strconv.ParseFloat(r.PostFormValue("weight"), 64)
		height, heightErr := strconv.ParseFloat(r.PostFormValue("height"), 64)
		if ageErr != nil || weightErr != nil || heightErr != nil {
			writeFailure(w, "Invalid health data")
			return
		}

		gender := sanitizeInput(r.PostFormValue("gender"))
		disease := sanitizeInput(r.PostFormValue("disease"))

		bmi, plan, err := svc.SaveHealth(ctx, sess.UserID, age, weight, height, gender, disease)
		if err != nil {
			if errors.Is(err, services.ErrInvalidMeasurements) {
				writeFailure(w, "Invalid health data")
				return
			}
			logger.Log.Errorw("failed to save health data", "user_id", sess.UserID, "error", err)
			writeFailure(w, "Failed to save health data")
			return
		}

		writeJSON(w, SaveHealthResponse{Success: true, BMI: bmi, DietPlan: plan})
	}
}
