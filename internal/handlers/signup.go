package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/health-planner/internal/logger"
	"github.com/sbilibin2017/health-planner/internal/models"
	"github.com/sbilibin2017/health-planner/internal/services"
)

// Registerer creates a new account from raw credentials.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.UserSummary, error)
}

// SignupResponse is returned on successful account creation.
type SignupResponse struct {
	// Whether the action succeeded
	Success bool `json:"success"`

	// The newly created account
	User *models.UserSummary `json:"user"`
}

// NewSignupHandler returns a handler for the signup action.
//
// @Summary      Create an account
// @Description  Validates the form fields, creates the account and opens a session.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        action    formData  string  true  "Must be signup"
// @Param        name      formData  string  true  "Display name"
// @Param        email     formData  string  true  "Email address"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  SignupResponse
// @Router       / [post]
func NewSignupHandler(svc Registerer, sessions SessionEstablisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		name := sanitizeInput(r.PostFormValue("name"))
		email := sanitizeInput(r.PostFormValue("email"))
		password := r.PostFormValue("password")

		if name == "" || email == "" || password == "" {
			writeFailure(w, "All fields are required")
			return
		}
		if !isValidEmail(email) {
			writeFailure(w, "Invalid email format")
			return
		}

		user, err := svc.Register(ctx, name, email, password)
		if err != nil {
			if errors.Is(err, services.ErrEmailAlreadyRegistered) {
				writeFailure(w, "Email already registered")
				return
			}
			logger.Log.Errorw("signup failed", "email", email, "error", err)
			writeFailure(w, "Failed to create account")
			return
		}

		if err := sessions.Establish(ctx, w, models.Session{UserID: user.ID, Name: user.Name, Email: user.Email}); err != nil {
			logger.Log.Errorw("failed to establish session after signup", "user_id", user.ID, "error", err)
			writeFailure(w, "Failed to create account")
			return
		}

		writeJSON(w, SignupResponse{Success: true, User: user})
	}
}
