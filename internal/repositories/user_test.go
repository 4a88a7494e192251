package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta("SELECT id, name, email, password_hash, created_at, updated_at")

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(int64(1), "Ana", "ana@x.com", "hash", now, now)
		mock.ExpectQuery(query).WithArgs("ana@x.com").WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "ana@x.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "Ana", user.Name)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("ghost@x.com").WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "ghost@x.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error propagates", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("ana@x.com").WillReturnError(errors.New("connection refused"))

		user, err := repo.GetByEmail(ctx, "ana@x.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta("INSERT INTO users (name, email, password_hash, created_at, updated_at)")

	t.Run("returns assigned id", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(7))
		mock.ExpectQuery(query).WithArgs("Ana", "ana@x.com", "hash").WillReturnRows(rows)

		id, err := repo.Save(ctx, "Ana", "ana@x.com", "hash")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("constraint violation propagates", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("Ana", "ana@x.com", "hash").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		id, err := repo.Save(ctx, "Ana", "ana@x.com", "hash")
		assert.Error(t, err)
		assert.Zero(t, id)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
