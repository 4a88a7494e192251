package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/health-planner/internal/logger"
)

// DietSaver stores a serialized diet plan for a user.
type DietSaver interface {
	SaveDiet(ctx context.Context, userID int64, planData string) error
}

// NewSaveDietHandler returns a handler for the save-diet action.
// The plan blob is stored as-is; clients that render plans locally
// push their copy back through this action.
//
// @Summary      Store a diet plan
// @Description  Persists the client-provided serialized diet plan.
// @Tags         health
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        action    formData  string  true  "Must be save-diet"
// @Param        dietPlan  formData  string  true  "Serialized diet plan"
// @Success      200  {object}  Response
// @Router       / [post]
func NewSaveDietHandler(svc DietSaver, sessions SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := sessions.Current(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to resolve session", "error", err)
			writeFailure(w, "Failed to save diet plan")
			return
		}
		if sess == nil {
			writeFailure(w, "Not logged in")
			return
		}

		planData := r.PostFormValue("dietPlan")
		if strings.TrimSpace(planData) == "" {
			writeFailure(w, "All fields are required")
			return
		}

		if err := svc.SaveDiet(ctx, sess.UserID, planData); err != nil {
			logger.Log.Errorw("failed to save diet plan", "user_id", sess.UserID, "error", err)
			writeFailure(w, "Failed to save diet plan")
			return
		}

		writeJSON(w, Response{Success: true})
	}
}
