package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/health-planner/internal/models"
)

// SessionEstablisher starts an authenticated session for the current client.
type SessionEstablisher interface {
	Establish(ctx context.Context, w http.ResponseWriter, sess models.Session) error
}

// SessionReader resolves the session attached to a request.
// A nil session with a nil error means the client is not authenticated.
type SessionReader interface {
	Current(ctx context.Context, r *http.Request) (*models.Session, error)
}

// SessionDestroyer tears down the current session.
type SessionDestroyer interface {
	Teardown(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}
