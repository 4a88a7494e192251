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

// HealthWriteRepository handles biometric record writes.
type HealthWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewHealthWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *HealthWriteRepository {
	return &HealthWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT: one health record per user, overwritten in place.
// The single ON CONFLICT statement keeps concurrent saves for the same user atomic.
func (r *HealthWriteRepository) Save(ctx context.Context, userID int64, age int, weight, height float64, gender, disease string, bmi float64) error {
	query := `
		INSERT INTO health_data (user_id, age, weight, height, gender, disease, bmi, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET age = EXCLUDED.age,
		    weight = EXCLUDED.weight,
		    height = EXCLUDED.height,
		    gender = EXCLUDED.gender,
		    disease = EXCLUDED.disease,
		    bmi = EXCLUDED.bmi,
		    updated_at = NOW()
	`
	args := []any{userID, age, weight, height, gender, disease, bmi}

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

	logger.Log.Infow("health write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// HealthReadRepository handles biometric record reads.
type HealthReadRepository struct {
	db *sqlx.DB
}

func NewHealthReadRepository(db *sqlx.DB) *HealthReadRepository {
	return &HealthReadRepository{db: db}
}

// GetByUserID returns the user's health record, or nil when none exists.
func (r *HealthReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.HealthRecordDB, error) {
	const query = `
		SELECT id, user_id, age, weight, height, gender, disease, bmi, created_at, updated_at
		FROM health_data
		WHERE user_id = $1
	`

	var rec models.HealthRecordDB
	err := r.db.GetContext(ctx, &rec, query, userID)

	logger.Log.Infow("health read",
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

	return &rec, nil
}
