package handlers

import (
	"net/http"

	"github.com/sbilibin2017/health-planner/internal/logger"
)

// Action labels accepted by the API endpoint.
const (
	ActionSignup       = "signup"
	ActionLogin        = "login"
	ActionSaveHealth   = "save-health"
	ActionSaveDiet     = "save-diet"
	ActionGetDashboard = "get-dashboard"
	ActionCheckSession = "check-session"
	ActionLogout       = "logout"
)

// ActionHandlers groups the handlers behind the single API endpoint.
type ActionHandlers struct {
	Signup       http.HandlerFunc
	Login        http.HandlerFunc
	SaveHealth   http.HandlerFunc
	SaveDiet     http.HandlerFunc
	Dashboard    http.HandlerFunc
	CheckSession http.HandlerFunc
	Logout       http.HandlerFunc
}

// NewActionHandler dispatches POSTed form bodies on their action field.
// Unknown or missing actions get a failure envelope, still with 200 OK.
func NewActionHandler(h ActionHandlers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			logger.Log.Errorw("failed to parse form", "error", err)
			writeFailure(w, "Invalid action")
			return
		}

		action := r.PostFormValue("action")
		switch action {
		case ActionSignup:
			h.Signup(w, r)
		case ActionLogin:
			h.Login(w, r)
		case ActionSaveHealth:
			h.SaveHealth(w, r)
		case ActionSaveDiet:
			h.SaveDiet(w, r)
		case ActionGetDashboard:
			h.Dashboard(w, r)
		case ActionCheckSession:
			h.CheckSession(w, r)
		case ActionLogout:
			h.Logout(w, r)
		default:
			logger.Log.Infow("unknown action", "action", action)
			writeFailure(w, "Invalid action")
		}
	}
}
