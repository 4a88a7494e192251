package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/health-planner/internal/logger"
	"github.com/sbilibin2017/health-planner/internal/models"
)

// CookieName is the name of the session cookie.
const CookieName = "hp_session"

// Manager holds session records in Redis keyed by a random session id and
// hands the client a signed cookie wrapping that id. Destroying the Redis
// record invalidates the cookie regardless of its expiry.
type Manager struct {
	client *redis.Client
	token  *Token
	exp    time.Duration
}

// NewManager creates a session manager with the given record TTL.
func NewManager(client *redis.Client, token *Token, expiration time.Duration) *Manager {
	return &Manager{
		client: client,
		token:  token,
		exp:    expiration,
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id)
}

// Establish stores the identity as a new session record and sets the cookie.
// Any previous session cookie is superseded by the new one.
func (m *Manager) Establish(ctx context.Context, w http.ResponseWriter, sess models.Session) error {
	sid := uuid.New()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if err := m.client.Set(ctx, sessionKey(sid), data, m.exp).Err(); err != nil {
		logger.Log.Errorw("failed to store session", "error", err)
		return err
	}

	tokenString, err := m.token.Generate(ctx, sid)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(m.exp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Current returns the session attached to the request, or nil when the client
// is not authenticated. A missing, malformed or expired cookie and a missing
// Redis record are all plain unauthenticated states, not errors.
func (m *Manager) Current(ctx context.Context, r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	sid, err := m.token.GetSessionID(ctx, cookie.Value)
	if err != nil {
		logger.Log.Debugw("rejected session cookie", "error", err)
		return nil, nil
	}

	val, err := m.client.Get(ctx, sessionKey(sid)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Errorw("failed to read session", "error", err)
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		logger.Log.Errorw("failed to decode session record", "error", err)
		return nil, err
	}

	return &sess, nil
}

// Teardown deletes the session record and expires the cookie. Idempotent:
// tearing down an absent session is a no-op.
func (m *Manager) Teardown(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if sid, err := m.token.GetSessionID(ctx, cookie.Value); err == nil {
			if err := m.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
				logger.Log.Errorw("failed to delete session", "error", err)
				return err
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
