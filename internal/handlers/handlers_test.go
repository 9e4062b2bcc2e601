package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/fmarques/corresponde/docs"
	"github.com/fmarques/corresponde/internal/handlers/attachments"
	"github.com/fmarques/corresponde/internal/handlers/auth"
	"github.com/fmarques/corresponde/internal/handlers/diligences"
	"github.com/fmarques/corresponde/internal/handlers/financial"
	"github.com/fmarques/corresponde/internal/handlers/notifications"
	"github.com/fmarques/corresponde/internal/handlers/users"
	"github.com/fmarques/corresponde/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         auth.NewMockService(ctrl),
		UserService:         users.NewMockService(ctrl),
		DiligenceService:    diligences.NewMockService(ctrl),
		FinancialService:    financial.NewMockService(ctrl),
		NotificationService: notifications.NewMockService(ctrl),
		AttachmentService:   attachments.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockDiligenceHandler := NewMockDiligenceHandler(ctrl)
	mockFinancialHandler := NewMockFinancialHandler(ctrl)
	mockNotificationHandler := NewMockNotificationHandler(ctrl)
	mockAttachmentHandler := NewMockAttachmentHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		UserHandler:         mockUserHandler,
		DiligenceHandler:    mockDiligenceHandler,
		FinancialHandler:    mockFinancialHandler,
		NotificationHandler: mockNotificationHandler,
		AttachmentHandler:   mockAttachmentHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/users/me", http.StatusUnauthorized},
		{"GET", "/api/users", http.StatusUnauthorized},
		{"PATCH", "/api/users/1/status", http.StatusUnauthorized},
		{"POST", "/api/diligences", http.StatusUnauthorized},
		{"GET", "/api/diligences", http.StatusUnauthorized},
		{"GET", "/api/diligences/1", http.StatusUnauthorized},
		{"PATCH", "/api/diligences/1/assign", http.StatusUnauthorized},
		{"PATCH", "/api/diligences/1/accept", http.StatusUnauthorized},
		{"PATCH", "/api/diligences/1/cancel", http.StatusUnauthorized},
		{"GET", "/api/diligences/1/status-history", http.StatusUnauthorized},
		{"GET", "/api/financial/summary", http.StatusUnauthorized},
		{"POST", "/api/financial/payment-proof/1", http.StatusUnauthorized},
		{"PATCH", "/api/financial/payments/1/paid", http.StatusUnauthorized},
		{"GET", "/api/notifications", http.StatusUnauthorized},
		{"PATCH", "/api/notifications/1/read", http.StatusUnauthorized},
		{"POST", "/api/attachments/1", http.StatusUnauthorized},
		{"DELETE", "/api/attachments/1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
