package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/health-planner/internal/logger"
	"github.com/sbilibin2017/health-planner/internal/models"
)

// DietWriteRepository handles diet plan writes. The plan payload is stored as
// an opaque blob; parsing and shape belong to the plan selector.
type DietWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDietWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DietWriteRepository {
	return &DietWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT: exactly one plan per user, overwritten on regeneration.
func (r *DietWriteRepository) Save(ctx context.Context, userID int64, planData string) error {
	query := `
		INSERT INTO diet_plans (user_id, plan_data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET plan_data = EXCLUDED.plan_data,
		    updated_at = NOW()
	`
	args := []any{userID, planData}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("diet write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// DietReadRepository handles diet plan reads.
type DietReadRepository struct {
	db *sqlx.DB
}

func NewDietReadRepository(db *sqlx.DB) *DietReadRepository {
	return &DietReadRepository{db: db}
}

// GetByUserID returns the user's stored plan, or nil when none exists.
func (r *DietReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.DietPlanDB, error) {
	const query = `
		SELECT id, user_id, plan_data, created_at, updated_at
		FROM diet_plans
		WHERE user_id = $1
	`

	var plan models.DietPlanDB
	err := r.db.GetContext(ctx, &plan, query, userID)

	logger.Log.Infow("diet read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}
