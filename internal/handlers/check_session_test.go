package handlers_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/health-planner/internal/handlers"
	"github.com/sbilibin2017/health-planner/internal/models"
)

func TestCheckSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := handlers.NewMockSessionReader(ctrl)
	h := handlers.NewCheckSessionHandler(sessions)

	t.Run("logged in", func(t *testing.T) {
		sessions.EXPECT().
			Current(gomock.Any(), gomock.Any()).
			Return(&models.Session{UserID: 1, Name: "Ana", Email: "ana@x.com"}, nil)

		rr := postForm(t, h, url.Values{})

		var resp handlers.CheckSessionResponse
		decodeBody(t, rr, &resp)
		assert.True(t, resp.IsLoggedIn)
		assert.Equal(t, &models.UserSummary{ID: 1, Name: "Ana", Email: "ana@x.com"}, resp.User)
	})

	t.Run("not logged in", func(t *testing.T) {
		sessions.EXPECT().Current(gomock.Any(), gomock.Any()).Return(nil, nil)

		rr := postForm(t, h, url.Values{})

		var resp handlers.CheckSessionResponse
		decodeBody(t, rr, &resp)
		assert.False(t, resp.IsLoggedIn)
		assert.Nil(t, resp.User)
	})

	t.Run("session store error reads as logged out", func(t *testing.T) {
		sessions.EXPECT().Current(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

		rr := postForm(t, h, url.Values{})

		var resp handlers.CheckSessionResponse
		decodeBody(t, rr, &resp)
		assert.False(t, resp.IsLoggedIn)
	})
}
