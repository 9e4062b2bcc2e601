package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/dto"
	"github.com/fmarques/corresponde/internal/service/notificationservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*NotificationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target string, userID int, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, auth.RoleClient)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	timeNow := time.Now()

	t.Run("All notifications", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 1, false).Return([]domain.Notification{
			{ID: 1, Type: "diligence_assigned", Title: "title", Message: "message",
				Data: []byte(`{"diligence_id":10}`), CreatedAt: timeNow},
		}, nil)

		req := newRequest("GET", "/api/notifications", 1, "")
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []dto.NotificationResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.False(t, resp[0].Read)
	})

	t.Run("Unread filter", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 1, true).Return(nil, nil)

		req := newRequest("GET", "/api/notifications?unread=true", 1, "")
		rr := httptest.NewRecorder()

		handler.List(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestMarkReadHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Notification marked read", func(t *testing.T) {
		service.EXPECT().MarkRead(gomock.Any(), 5, 1).Return(nil)

		req := newRequest("PATCH", "/api/notifications/5/read", 1, "5")
		rr := httptest.NewRecorder()

		handler.MarkRead(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Notification not found", func(t *testing.T) {
		service.EXPECT().MarkRead(gomock.Any(), 5, 1).Return(notificationservice.ErrNotificationNotFound)

		req := newRequest("PATCH", "/api/notifications/5/read", 1, "5")
		rr := httptest.NewRecorder()

		handler.MarkRead(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		req := newRequest("PATCH", "/api/notifications/abc/read", 1, "abc")
		rr := httptest.NewRecorder()

		handler.MarkRead(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMarkAllReadHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().MarkAllRead(gomock.Any(), 1).Return(nil)

	req := newRequest("PATCH", "/api/notifications/read-all", 1, "")
	rr := httptest.NewRecorder()

	handler.MarkAllRead(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
