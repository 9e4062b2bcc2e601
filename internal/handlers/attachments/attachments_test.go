package attachments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/dto"
	"github.com/fmarques/corresponde/internal/service/attachmentservice"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/fmarques/corresponde/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AttachmentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, userID int, role string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, role)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestUploadHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Attachment uploaded",
			body: `{"name":"citacao.pdf","url":"https://files.example.com/citacao.pdf","type":"application/pdf","size":1024}`,
			prepareMock: func() {
				service.EXPECT().Upload(gomock.Any(), 10, 1, auth.RoleClient,
					"citacao.pdf", "https://files.example.com/citacao.pdf", "application/pdf", int64(1024)).
					Return(&domain.Attachment{ID: 5, DiligenceID: 10, Name: "citacao.pdf", UploadedByID: 1}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Name and url are required",
			body:          `{"type":"application/pdf"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Name and url are required",
		},
		{
			name: "Outsider cannot attach",
			body: `{"name":"citacao.pdf","url":"https://files.example.com/citacao.pdf"}`,
			prepareMock: func() {
				service.EXPECT().Upload(gomock.Any(), 10, 1, auth.RoleClient,
					"citacao.pdf", "https://files.example.com/citacao.pdf", "", int64(0)).
					Return(nil, attachmentservice.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "operation not allowed for this user",
		},
		{
			name: "Diligence not found",
			body: `{"name":"citacao.pdf","url":"https://files.example.com/citacao.pdf"}`,
			prepareMock: func() {
				service.EXPECT().Upload(gomock.Any(), 10, 1, auth.RoleClient,
					"citacao.pdf", "https://files.example.com/citacao.pdf", "", int64(0)).
					Return(nil, attachmentservice.ErrDiligenceNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "diligence not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/attachments/10", tt.body, 1, auth.RoleClient,
				map[string]string{"diligenceID": "10"})
			rr := httptest.NewRecorder()

			handler.Upload(rr, req)

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

	t.Run("Participant lists attachments", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 10, 1, auth.RoleClient).Return([]domain.Attachment{
			{ID: 5, DiligenceID: 10, Name: "citacao.pdf"},
		}, nil)

		req := newRequest("GET", "/api/attachments/10", "", 1, auth.RoleClient,
			map[string]string{"diligenceID": "10"})
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []dto.AttachmentResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("Outsider is rejected", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 10, 99, auth.RoleCorrespondent).
			Return(nil, attachmentservice.ErrForbidden)

		req := newRequest("GET", "/api/attachments/10", "", 99, auth.RoleCorrespondent,
			map[string]string{"diligenceID": "10"})
		rr := httptest.NewRecorder()

		handler.List(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Uploader deletes", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 5, 1, auth.RoleClient).Return(nil)

		req := newRequest("DELETE", "/api/attachments/5", "", 1, auth.RoleClient,
			map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Someone else's attachment", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 5, 2, auth.RoleClient).Return(attachmentservice.ErrForbidden)

		req := newRequest("DELETE", "/api/attachments/5", "", 2, auth.RoleClient,
			map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
