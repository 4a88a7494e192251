package handlers

import (
	"net/http"

	"github.com/sbilibin2017/health-planner/internal/logger"
)

// NewLogoutHandler returns a handler for the logout action.
// Logging out without a session is not an error.
//
// @Summary      Log out
// @Description  Destroys the current session and expires the session cookie.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        action  formData  string  true  "Must be logout"
// @Success      200  {object}  Response
// @Router       / [post]
func NewLogoutHandler(sessions SessionDestroyer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Teardown(r.Context(), w, r); err != nil {
			logger.Log.Errorw("failed to tear down session", "error", err)
			writeFailure(w, "Failed to log out")
			return
		}
		writeJSON(w, Response{Success: true})
	}
}
