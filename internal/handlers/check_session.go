package handlers

import (
	"net/http"

	"github.com/sbilibin2017/health-planner/internal/logger"
	"github.com/sbilibin2017/health-planner/internal/models"
)

// CheckSessionResponse tells the client whether it is authenticated.
// This envelope predates the success/message convention of the other
// actions and is kept as-is for client compatibility.
type CheckSessionResponse struct {
	// Whether a live session is attached to the request
	IsLoggedIn bool `json:"isLoggedIn"`

	// The authenticated account, present only when logged in
	User *models.UserSummary `json:"user,omitempty"`
}

// NewCheckSessionHandler returns a handler for the check-session action.
//
// @Summary      Check the session
// @Description  Reports whether the request carries a live session and for whom.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        action  formData  string  true  "Must be check-session"
// @Success      200  {object}  CheckSessionResponse
// @Router       / [post]
func NewCheckSessionHandler(sessions SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessions.Current(r.Context(), r)
		if err != nil {
			logger.Log.Errorw("failed to resolve session", "error", err)
			writeJSON(w, CheckSessionResponse{IsLoggedIn: false})
			return
		}
		if sess == nil {
			writeJSON(w, CheckSessionResponse{IsLoggedIn: false})
			return
		}

		writeJSON(w, CheckSessionResponse{
			IsLoggedIn: true,
			User:       &models.UserSummary{ID: sess.UserID, Name: sess.Name, Email: sess.Email},
		})
	}
}
