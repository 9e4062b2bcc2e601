package diligences

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/dto"
	"github.com/fmarques/corresponde/internal/service/diligenceservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/fmarques/corresponde/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*DiligenceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, userID int, role, id string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, role)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	correspondentID := 7

	tests := []struct {
		name          string
		body          string
		userID        int
		role          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Client creates a diligence",
			body:   `{"title":"Hearing","type":"hearing","value":100}`,
			userID: 1,
			role:   auth.RoleClient,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), diligenceservice.CreateParams{
					Title: "Hearing", Type: "hearing", Value: 100, ClientID: 1,
				}).Return(&domain.Diligence{ID: 10, Protocol: "p1", Title: "Hearing", Status: "pending", ClientID: 1}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Admin creates on behalf of a client",
			body:   `{"title":"Hearing","type":"hearing","value":100,"client_id":5,"correspondent_id":7}`,
			userID: 3,
			role:   auth.RoleAdmin,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), diligenceservice.CreateParams{
					Title: "Hearing", Type: "hearing", Value: 100, ClientID: 5, CorrespondentID: &correspondentID,
				}).Return(&domain.Diligence{ID: 10, Status: "assigned", ClientID: 5, CorrespondentID: &correspondentID}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Title is required",
			body:          `{"value":100}`,
			userID:        1,
			role:          auth.RoleClient,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Title is required",
		},
		{
			name:          "Value must be positive",
			body:          `{"title":"Hearing","value":-5}`,
			userID:        1,
			role:          auth.RoleClient,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Value must be positive",
		},
		{
			name:          "Invalid deadline format",
			body:          `{"title":"Hearing","value":100,"deadline":"tomorrow"}`,
			userID:        1,
			role:          auth.RoleClient,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid deadline format",
		},
		{
			name:   "Correspondent does not exist",
			body:   `{"title":"Hearing","value":100,"correspondent_id":7}`,
			userID: 1,
			role:   auth.RoleClient,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, diligenceservice.ErrCorrespondentNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "correspondent not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/diligences", tt.body, tt.userID, tt.role, "")
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any(), 1, auth.RoleClient, "pending").Return([]domain.Diligence{
		{ID: 10, Protocol: "p1", Status: "pending", ClientID: 1},
	}, nil)

	req := newRequest("GET", "/api/diligences?status=pending", "", 1, auth.RoleClient, "")
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.DiligenceResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "p1", resp[0].Protocol)
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)
	deadline := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Diligence returned with formatted deadline",
			id:   "10",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 10, 1, auth.RoleClient).Return(&domain.Diligence{
					ID: 10, Protocol: "p1", Status: "pending", ClientID: 1, Deadline: &deadline,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not a participant",
			id:   "10",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 10, 1, auth.RoleClient).Return(nil, diligenceservice.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "operation not allowed for this user",
		},
		{
			name:          "Invalid id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid diligence id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("GET", "/api/diligences/"+tt.id, "", 1, auth.RoleClient, tt.id)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.DiligenceResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "2026-09-15T12:00:00Z", resp.Deadline)
			}
		})
	}
}

func TestAssignHandler(t *testing.T) {
	handler, service := NewMock(t)
	correspondentID := 7

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Correspondent assigned",
			body: `{"correspondent_id":7}`,
			prepareMock: func() {
				service.EXPECT().Assign(gomock.Any(), 10, 7, 3).Return(&domain.Diligence{
					ID: 10, Status: "assigned", CorrespondentID: &correspondentID,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing correspondent id",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Correspondent id is required",
		},
		{
			name: "Concurrent assignment",
			body: `{"correspondent_id":7}`,
			prepareMock: func() {
				service.EXPECT().Assign(gomock.Any(), 10, 7, 3).Return(nil, diligenceservice.ErrStatusConflict)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "diligence status changed concurrently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("PATCH", "/api/diligences/10/assign", tt.body, 3, auth.RoleAdmin, "10")
			rr := httptest.NewRecorder()

			handler.Assign(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestAcceptHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Correspondent accepts", func(t *testing.T) {
		service.EXPECT().Accept(gomock.Any(), 10, 7).Return(&domain.Diligence{ID: 10, Status: "in_progress"}, nil)

		req := newRequest("PATCH", "/api/diligences/10/accept", "", 7, auth.RoleCorrespondent, "10")
		rr := httptest.NewRecorder()

		handler.Accept(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not the assignee", func(t *testing.T) {
		service.EXPECT().Accept(gomock.Any(), 10, 8).Return(nil, diligenceservice.ErrDiligenceNotFound)

		req := newRequest("PATCH", "/api/diligences/10/accept", "", 8, auth.RoleCorrespondent, "10")
		rr := httptest.NewRecorder()

		handler.Accept(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Cancelled with a reason",
			body: `{"reason":"no longer needed"}`,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 10, 1, auth.RoleClient, "no longer needed").
					Return(&domain.Diligence{ID: 10, Status: "cancelled"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reason is mandatory",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 10, 1, auth.RoleClient, "").
					Return(nil, diligenceservice.ErrReasonRequired)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "reason is required",
		},
		{
			name: "Already terminal",
			body: `{"reason":"again"}`,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 10, 1, auth.RoleClient, "again").
					Return(nil, diligenceservice.ErrIllegalTransition)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "illegal status transition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("PATCH", "/api/diligences/10/cancel", tt.body, 1, auth.RoleClient, "10")
			rr := httptest.NewRecorder()

			handler.Cancel(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Admin forces a status", func(t *testing.T) {
		service.EXPECT().UpdateStatus(gomock.Any(), 10, "in_progress", 3, "support request").
			Return(&domain.Diligence{ID: 10, Status: "in_progress"}, nil)

		req := newRequest("PATCH", "/api/diligences/10/status",
			`{"status":"in_progress","reason":"support request"}`, 3, auth.RoleAdmin, "10")
		rr := httptest.NewRecorder()

		handler.UpdateStatus(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Status is required", func(t *testing.T) {
		req := newRequest("PATCH", "/api/diligences/10/status", `{}`, 3, auth.RoleAdmin, "10")
		rr := httptest.NewRecorder()

		handler.UpdateStatus(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown status", func(t *testing.T) {
		service.EXPECT().UpdateStatus(gomock.Any(), 10, "done", 3, "").
			Return(nil, diligenceservice.ErrUnknownStatus)

		req := newRequest("PATCH", "/api/diligences/10/status", `{"status":"done"}`, 3, auth.RoleAdmin, "10")
		rr := httptest.NewRecorder()

		handler.UpdateStatus(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRevertStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Last transition reverted", func(t *testing.T) {
		service.EXPECT().RevertStatus(gomock.Any(), 10, 3, "operator mistake").
			Return(&domain.Diligence{ID: 10, Status: "assigned"}, nil)

		req := newRequest("POST", "/api/diligences/10/revert-status",
			`{"reason":"operator mistake"}`, 3, auth.RoleAdmin, "10")
		rr := httptest.NewRecorder()

		handler.RevertStatus(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("No history", func(t *testing.T) {
		service.EXPECT().RevertStatus(gomock.Any(), 10, 3, "").
			Return(nil, diligenceservice.ErrNoHistory)

		req := newRequest("POST", "/api/diligences/10/revert-status", `{}`, 3, auth.RoleAdmin, "10")
		rr := httptest.NewRecorder()

		handler.RevertStatus(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestStatusHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	timeNow := time.Now()

	service.EXPECT().StatusHistory(gomock.Any(), 10, 1, auth.RoleClient).Return([]domain.StatusHistory{
		{PreviousStatus: "pending", NewStatus: "assigned", UserID: 3, CreatedAt: timeNow},
	}, nil)

	req := newRequest("GET", "/api/diligences/10/status-history", "", 1, auth.RoleClient, "10")
	rr := httptest.NewRecorder()

	handler.StatusHistory(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.StatusHistoryResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "assigned", resp[0].NewStatus)
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Pending diligence deleted", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 10, 1, auth.RoleClient).Return(nil)

		req := newRequest("DELETE", "/api/diligences/10", "", 1, auth.RoleClient, "10")
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("No longer pending", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 10, 1, auth.RoleClient).Return(diligenceservice.ErrNotPending)

		req := newRequest("DELETE", "/api/diligences/10", "", 1, auth.RoleClient, "10")
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)
	newTitle := "Amended hearing"
	newValue := 250.0

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Client updates a pending diligence",
			body: `{"title":"Amended hearing","value":250}`,
			prepareMock: func() {
				service.EXPECT().UpdatePending(gomock.Any(), 10, 1, auth.RoleClient, diligenceservice.UpdateParams{
					Title: &newTitle, Value: &newValue,
				}).Return(&domain.Diligence{ID: 10, Title: "Amended hearing", Value: 250, Status: "pending", ClientID: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Deadline cleared explicitly",
			body: `{"deadline":""}`,
			prepareMock: func() {
				service.EXPECT().UpdatePending(gomock.Any(), 10, 1, auth.RoleClient, diligenceservice.UpdateParams{
					HasDeadline: true,
				}).Return(&domain.Diligence{ID: 10, Status: "pending", ClientID: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid deadline format",
			body:          `{"deadline":"tomorrow"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid deadline format",
		},
		{
			name: "Diligence already assigned",
			body: `{"title":"Amended hearing"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePending(gomock.Any(), 10, 1, auth.RoleClient, gomock.Any()).
					Return(nil, diligenceservice.ErrNotPending)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "diligence is not pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("PATCH", "/api/diligences/10", tt.body, 1, auth.RoleClient, "10")
			rr := httptest.NewRecorder()

			handler.Update(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestStartHandler(t *testing.T) {
	handler, service := NewMock(t)
	correspondentID := 7

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Admin starts an assigned diligence",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), 10, 3, auth.RoleAdmin).
					Return(&domain.Diligence{ID: 10, Status: "in_progress", ClientID: 1, CorrespondentID: &correspondentID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Diligence is not assigned",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), 10, 3, auth.RoleAdmin).
					Return(nil, diligenceservice.ErrIllegalTransition)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "illegal status transition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("PATCH", "/api/diligences/10/start", "", 3, auth.RoleAdmin, "10")
			rr := httptest.NewRecorder()

			handler.Start(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestCompleteHandler(t *testing.T) {
	handler, service := NewMock(t)
	correspondentID := 7

	tests := []struct {
		name          string
		userID        int
		role          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Correspondent completes a diligence",
			userID: 7,
			role:   auth.RoleCorrespondent,
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), 10, 7, auth.RoleCorrespondent).
					Return(&domain.Diligence{ID: 10, Status: "completed", ClientID: 1, CorrespondentID: &correspondentID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Diligence is not in progress",
			userID: 7,
			role:   auth.RoleCorrespondent,
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), 10, 7, auth.RoleCorrespondent).
					Return(nil, diligenceservice.ErrIllegalTransition)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "illegal status transition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("PATCH", "/api/diligences/10/complete", "", tt.userID, tt.role, "10")
			rr := httptest.NewRecorder()

			handler.Complete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestDisputeHandler(t *testing.T) {
	handler, service := NewMock(t)
	correspondentID := 7

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Client disputes an in-progress diligence",
			body: `{"reason":"work not delivered"}`,
			prepareMock: func() {
				service.EXPECT().Dispute(gomock.Any(), 10, 1, auth.RoleClient, "work not delivered").
					Return(&domain.Diligence{ID: 10, Status: "disputed", ClientID: 1, CorrespondentID: &correspondentID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Pending diligence cannot be disputed",
			body: `{"reason":"work not delivered"}`,
			prepareMock: func() {
				service.EXPECT().Dispute(gomock.Any(), 10, 1, auth.RoleClient, "work not delivered").
					Return(nil, diligenceservice.ErrIllegalTransition)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "illegal status transition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("PATCH", "/api/diligences/10/dispute", tt.body, 1, auth.RoleClient, "10")
			rr := httptest.NewRecorder()

			handler.Dispute(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
