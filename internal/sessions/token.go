package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token signs and verifies the session identifier carried in the cookie.
// The cookie value is tamper-evident; revocation stays server-side in Redis.
type Token struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// NewToken creates a new Token codec.
func NewToken(secretKey string, expiration time.Duration) *Token {
	return &Token{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token wrapping the given session id.
func (t *Token) Generate(ctx context.Context, sessionID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID.String(),
		"exp": time.Now().Add(t.Exp).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.SecretKey))
}

// GetSessionID parses the token string and returns the session id if valid.
func (t *Token) GetSessionID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(t.SecretKey), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sidStr, ok := claims["sid"].(string); ok {
			sid, err := uuid.Parse(sidStr)
			if err != nil {
				return uuid.Nil, errors.New("invalid sid format")
			}
			return sid, nil
		}
		return uuid.Nil, errors.New("sid not found in token")
	}
	return uuid.Nil, errors.New("invalid token")
}
