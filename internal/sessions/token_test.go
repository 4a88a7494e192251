package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToken_GenerateAndParse(t *testing.T) {
	tok := NewToken("test-secret", time.Minute)
	ctx := context.Background()

	sid := uuid.New()

	tokenString, err := tok.Generate(ctx, sid)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	got, err := tok.GetSessionID(ctx, tokenString)
	assert.NoError(t, err)
	assert.Equal(t, sid, got)
}

func TestToken_Expired(t *testing.T) {
	tok := NewToken("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	tokenString, err := tok.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	got, err := tok.GetSessionID(ctx, tokenString)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestToken_InvalidString(t *testing.T) {
	tok := NewToken("secret", time.Minute)
	ctx := context.Background()

	got, err := tok.GetSessionID(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestToken_WrongSecret(t *testing.T) {
	t1 := NewToken("secret1", time.Minute)
	t2 := NewToken("secret2", time.Minute)
	ctx := context.Background()

	tokenString, err := t1.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	got, err := t2.GetSessionID(ctx, tokenString)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}
