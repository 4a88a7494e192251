package handlers_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/health-planner/internal/handlers"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := handlers.NewMockSessionDestroyer(ctrl)
	h := handlers.NewLogoutHandler(sessions)

	t.Run("success", func(t *testing.T) {
		sessions.EXPECT().Teardown(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		rr := postForm(t, h, url.Values{})

		var resp handlers.Response
		decodeBody(t, rr, &resp)
		assert.True(t, resp.Success)
	})

	t.Run("teardown error", func(t *testing.T) {
		sessions.EXPECT().Teardown(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		rr := postForm(t, h, url.Values{})

		var resp handlers.Response
		decodeBody(t, rr, &resp)
		assert.False(t, resp.Success)
		assert.Equal(t, "Failed to log out", resp.Message)
	})
}
