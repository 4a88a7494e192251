package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/health-planner/internal/logger"
	"github.com/sbilibin2017/health-planner/internal/models"
	"github.com/sbilibin2017/health-planner/internal/services"
)

// Authenticator verifies credentials and resolves the account they belong to.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.UserSummary, error)
}

// HealthChecker reports whether the user has already submitted biometrics.
type HealthChecker interface {
	HasHealthData(ctx context.Context, userID int64) (bool, error)
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	// Whether the action succeeded
	Success bool `json:"success"`

	// The authenticated account
	User *models.UserSummary `json:"user"`

	// Whether biometrics were already submitted, so the client
	// can route to the dashboard instead of the intake form
	HasHealthData bool `json:"hasHealthData"`
}

// NewLoginHandler returns a handler for the login action.
//
// @Summary      Log in
// @Description  Verifies credentials, opens a session and reports whether health data exists.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        action    formData  string  true  "Must be login"
// @Param        email     formData  string  true  "Email address"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  LoginResponse
// @Router       / [post]
func NewLoginHandler(svc Authenticator, health HealthChecker, sessions SessionEstablisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		email := sanitizeInput(r.PostFormValue("email"))
		password := r.PostFormValue("password")

		if email == "" || password == "" {
			writeFailure(w, "All fields are required")
			return
		}

		user, err := svc.Authenticate(ctx, email, password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeFailure(w, "Invalid credentials")
				return
			}
			logger.Log.Errorw("login failed", "email", email, "error", err)
			writeFailure(w, "Failed to log in")
			return
		}

		if err := sessions.Establish(ctx, w, models.Session{UserID: user.ID, Name: user.Name, Email: user.Email}); err != nil {
			logger.Log.Errorw("failed to establish session after login", "user_id", user.ID, "error", err)
			writeFailure(w, "Failed to log in")
			return
		}

		hasData, err := health.HasHealthData(ctx, user.ID)
		if err != nil {
			// Login itself succeeded; the client just falls back to the intake form.
			logger.Log.Errorw("failed to check health data on login", "user_id", user.ID, "error", err)
			hasData = false
		}

		writeJSON(w, LoginResponse{Success: true, User: user, HasHealthData: hasData})
	}
}
