package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDietWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDietWriteRepository(db, nil)
	ctx := context.Background()

	query := regexp.QuoteMeta("INSERT INTO diet_plans (user_id, plan_data, created_at, updated_at)")

	t.Run("upsert succeeds", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), `{"days":[]}`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(ctx, 1, `{"days":[]}`)
		assert.NoError(t, err)
	})

	t.Run("write failure propagates", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), `{"days":[]}`).
			WillReturnError(errors.New("connection reset"))

		err := repo.Save(ctx, 1, `{"days":[]}`)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDietReadRepository_GetByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDietReadRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta("SELECT id, user_id, plan_data, created_at, updated_at")

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "user_id", "plan_data", "created_at", "updated_at"}).
			AddRow(int64(3), int64(1), `{"days":[]}`, now, now)
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)

		plan, err := repo.GetByUserID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, plan)
		assert.Equal(t, `{"days":[]}`, plan.PlanData)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(2)).WillReturnError(sql.ErrNoRows)

		plan, err := repo.GetByUserID(ctx, 2)
		assert.NoError(t, err)
		assert.Nil(t, plan)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
