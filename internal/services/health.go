package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/health-planner/internal/logger"
	"github.com/sbilibin2017/health-planner/internal/models"
	"github.com/sbilibin2017/health-planner/internal/plans"
)

var (
	// ErrInvalidMeasurements is returned before any store access when the
	// submitted biometrics are unusable (a zero height would make the BMI
	// formula divide by zero).
	ErrInvalidMeasurements = errors.New("invalid health data")
	ErrNoHealthData        = errors.New("no health data found")
	ErrNoDietPlan          = errors.New("no diet plan found")
)

// HealthWriter defines write operations for health records.
type HealthWriter interface {
	Save(ctx context.Context, userID int64, age int, weight, height float64, gender, disease string, bmi float64) error
}

// HealthReader defines read operations for health records.
type HealthReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.HealthRecordDB, error)
}

// DietWriter defines write operations for stored diet plans.
type DietWriter interface {
	Save(ctx context.Context, userID int64, planData string) error
}

// DietReader defines read operations for stored diet plans.
type DietReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.DietPlanDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// HealthService handles biometric persistence, plan generation and dashboard reads.
type HealthService struct {
	healthWrite HealthWriter
	healthRead  HealthReader
	dietWrite   DietWriter
	dietRead    DietReader
	kafkaWriter KafkaWriter
}

// NewHealthService creates a new HealthService.
func NewHealthService(
	healthWrite HealthWriter,
	healthRead HealthReader,
	dietWrite DietWriter,
	dietRead DietReader,
	kafkaWriter KafkaWriter,
) *HealthService {
	return &HealthService{
		healthWrite: healthWrite,
		healthRead:  healthRead,
		dietWrite:   dietWrite,
		dietRead:    dietRead,
		kafkaWriter: kafkaWriter,
	}
}

// ComputeBMI returns weight(kg) / height(m)^2 rounded to 2 decimal places.
func ComputeBMI(weight, height float64) float64 {
	heightM := height / 100
	return math.Round(weight/(heightM*heightM)*100) / 100
}

// SaveHealth upserts the user's biometric record with a freshly computed BMI,
// selects the weekly plan for the condition and stores it, then publishes a
// plan-generated event. BMI is never trusted from input.
func (s *HealthService) SaveHealth(ctx context.Context, userID int64, age int, weight, height float64, gender, disease string) (float64, *models.PlanDocument, error) {
	if age < 0 || weight <= 0 || height <= 0 {
		return 0, nil, ErrInvalidMeasurements
	}

	bmi := ComputeBMI(weight, height)

	if err := s.healthWrite.Save(ctx, userID, age, weight, height, gender, disease, bmi); err != nil {
		logger.Log.Errorw("failed to save health record", "userID", userID, "err", err)
		return 0, nil, err
	}

	plan := plans.Select(disease)
	planData, err := json.Marshal(plan)
	if err != nil {
		logger.Log.Errorw("failed to serialize plan", "userID", userID, "err", err)
		return 0, nil, err
	}

	if err := s.dietWrite.Save(ctx, userID, string(planData)); err != nil {
		logger.Log.Errorw("failed to save diet plan", "userID", userID, "err", err)
		return 0, nil, err
	}

	s.publishPlanEvent(ctx, models.PlanEvent{
		EventID:   uuid.New().String(),
		UserID:    userID,
		Disease:   disease,
		BMI:       bmi,
		CreatedAt: time.Now().UTC(),
	})

	return bmi, &plan, nil
}

// SaveDiet stores a client-supplied serialized plan without parsing it.
func (s *HealthService) SaveDiet(ctx context.Context, userID int64, planData string) error {
	if err := s.dietWrite.Save(ctx, userID, planData); err != nil {
		logger.Log.Errorw("failed to save diet plan", "userID", userID, "err", err)
		return err
	}
	return nil
}

// HasHealthData reports whether the user has a stored health record.
func (s *HealthService) HasHealthData(ctx context.Context, userID int64) (bool, error) {
	rec, err := s.healthRead.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

// Dashboard returns the user's health record and stored plan. Both must exist.
func (s *HealthService) Dashboard(ctx context.Context, userID int64) (*models.HealthData, string, error) {
	rec, err := s.healthRead.GetByUserID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", ErrNoHealthData
	}

	plan, err := s.dietRead.GetByUserID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if plan == nil {
		return nil, "", ErrNoDietPlan
	}

	data := &models.HealthData{
		Age:     rec.Age,
		Weight:  rec.Weight,
		Height:  rec.Height,
		Gender:  rec.Gender,
		Disease: rec.Disease,
		BMI:     rec.BMI,
	}
	return data, plan.PlanData, nil
}

// publishPlanEvent publishes a plan-generated event to Kafka, best effort.
func (s *HealthService) publishPlanEvent(ctx context.Context, event models.PlanEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal plan event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish plan event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Plan event published to Kafka", "event_id", event.EventID, "user_id", event.UserID)
	}
}
