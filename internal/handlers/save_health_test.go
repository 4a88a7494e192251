package handlers_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/health-planner/internal/handlers"
	"github.com/sbilibin2017/health-planner/internal/models"
	"github.com/sbilibin2017/health-planner/internal/plans"
	"github.com/sbilibin2017/health-planner/internal/services"
)

func loggedIn(sessions *handlers.MockSessionReader, userID int64) {
	sessions.EXPECT().
		Current(gomock.Any(), gomock.Any()).
		Return(&models.Session{UserID: userID, Name: "Ana", Email: "ana@x.com"}, nil)
}

func TestSaveHealthHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockHealthSaver(ctrl)
	sessions := handlers.NewMockSessionReader(ctrl)

	loggedIn(sessions, 1)

	plan := plans.Select("diabetes")
	svc.EXPECT().
		SaveHealth(gomock.Any(), int64(1), 30, 60.0, 150.0, "F", "diabetes").
		Return(26.67, &plan, nil)

	rr := postForm(t, handlers.NewSaveHealthHandler(svc, sessions), url.Values{
		"age":     {"30"},
		"weight":  {"60"},
		"height":  {"150"},
		"gender":  {"F"},
		"disease": {"diabetes"},
	})

	var resp handlers.SaveHealthResponse
	decodeBody(t, rr, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 26.67, resp.BMI)
	assert.Equal(t, &plan, resp.DietPlan)
}

func TestSaveHealthHandler_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockHealthSaver(ctrl)
	sessions := handlers.NewMockSessionReader(ctrl)
	sessions.EXPECT().Current(gomock.Any(), gomock.Any()).Return(nil, nil)

	rr := postForm(t, handlers.NewSaveHealthHandler(svc, sessions), url.Values{
		"age": {"30"}, "weight": {"60"}, "height": {"150"}, "gender": {"F"}, "disease": {"none"},
	})

	var resp handlers.Response
	decodeBody(t, rr, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Not logged in", resp.Message)
}

func TestSaveHealthHandler_MalformedNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockHealthSaver(ctrl)
	sessions := handlers.NewMockSessionReader(ctrl)
	h := handlers.NewSaveHealthHandler(svc, sessions)

	tests := []struct {
		name string
		form url.Values
	}{
		{"non-numeric age", url.Values{"age": {"abc"}, "weight": {"60"}, "height": {"150"}}},
		{"non-numeric weight", url.Values{"age": {"30"}, "weight": {"heavy"}, "height": {"150"}}},
		{"empty height", url.Values{"age": {"30"}, "weight": {"60"}, "height": {""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loggedIn(sessions, 1)

			rr := postForm(t, h, tt.form)

			var resp handlers.Response
			decodeBody(t, rr, &resp)
			assert.False(t, resp.Success)
			assert.Equal(t, "Invalid health data", resp.Message)
		})
	}
}

func TestSaveHealthHandler_InvalidMeasurements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockHealthSaver(ctrl)
	sessions := handlers.NewMockSessionReader(ctrl)

	loggedIn(sessions, 1)
	svc.EXPECT().
		SaveHealth(gomock.Any(), int64(1), 30, 60.0, 0.0, "F", "none").
		Return(0.0, nil, services.ErrInvalidMeasurements)

	rr := postForm(t, handlers.NewSaveHealthHandler(svc, sessions), url.Values{
		"age": {"30"}, "weight": {"60"}, "height": {"0"}, "gender": {"F"}, "disease": {"none"},
	})

	var resp handlers.Response
	decodeBody(t, rr, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid health data", resp.Message)
}

func TestSaveHealthHandler_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockHealthSaver(ctrl)
	sessions := handlers.NewMockSessionReader(ctrl)

	loggedIn(sessions, 1)
	svc.EXPECT().
		SaveHealth(gomock.Any(), int64(1), 30, 60.0, 150.0, "F", "none").
		Return(0.0, nil, errors.New("db down"))

	rr := postForm(t, handlers.NewSaveHealthHandler(svc, sessions), url.Values{
		"age": {"30"}, "weight": {"60"}, "height": {"150"}, "gender": {"F"}, "disease": {"none"},
	})

	var resp handlers.Response
	decodeBody(t, rr, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to save health data", resp.Message)
}

func TestSaveHealthHandler_SessionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockHealthSaver(ctrl)
	sessions := handlers.NewMockSessionReader(ctrl)
	sessions.EXPECT().Current(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	rr := postForm(t, handlers.NewSaveHealthHandler(svc, sessions), url.Values{
		"age": {"30"}, "weight": {"60"}, "height": {"150"},
	})

	var resp handlers.Response
	decodeBody(t, rr, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to save health data", resp.Message)
}
