package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/health-planner/internal/logger"
	"github.com/sbilibin2017/health-planner/internal/models"
	"github.com/sbilibin2017/health-planner/internal/services"
)

// DashboardGetter loads the stored biometrics and the serialized diet plan.
type DashboardGetter interface {
	Dashboard(ctx context.Context, userID int64) (*models.HealthData, string, error)
}

// DashboardResponse carries everything the dashboard view renders.
type DashboardResponse struct {
	// Whether the action succeeded
	Success bool `json:"success"`

	// Stored biometrics including the derived BMI
	HealthData *models.HealthData `json:"healthData"`

	// Serialized diet plan exactly as stored
	DietPlan string `json:"dietPlan"`
}

// NewDashboardHandler returns a handler for the get-dashboard action.
//
// @Summary      Load the dashboard
// @Description  Returns the stored biometrics and the serialized diet plan.
// @Tags         health
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        action  formData  string  true  "Must be get-dashboard"
// @Success      200  {object}  DashboardResponse
// @Router       / [post]
func NewDashboardHandler(svc DashboardGetter, sessions SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := sessions.Current(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to resolve session", "error", err)
			writeFailure(w, "Failed to load dashboard")
			return
		}
		if sess == nil {
			writeFailure(w, "Not logged in")
			return
		}

		data, planData, err := svc.Dashboard(ctx, sess.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoHealthData):
				writeFailure(w, "No health data found")
			case errors.Is(err, services.ErrNoDietPlan):
				writeFailure(w, "No diet plan found")
			default:
				logger.Log.Errorw("failed to load dashboard", "user_id", sess.UserID, "error", err)
				writeFailure(w, "Failed to load dashboard")
			}
			return
		}

		writeJSON(w, DashboardResponse{Success: true, HealthData: data, DietPlan: planData})
	}
}
