package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo        *MockRepo
	historyRepo *MockHistoryRepo
	notifier    *MockNotifier
	hashService *auth.MockHashServiceInterface
	jwtService  *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:        NewMockRepo(ctrl),
		historyRepo: NewMockHistoryRepo(ctrl),
		notifier:    NewMockNotifier(ctrl),
		hashService: auth.NewMockHashServiceInterface(ctrl),
		jwtService:  auth.NewMockJWTServiceInterface(ctrl),
	}
	service := New(m.repo, m.historyRepo, m.notifier, m.hashService, m.jwtService)
	defer ctrl.Finish()
	return service, m
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name           string
		params         RegisterParams
		prepareMock    func()
		expectedStatus string
		expectedError  error
	}{
		{
			name:   "Client registers and is active at once",
			params: RegisterParams{Login: "client1", Password: "password", Name: "Client", Role: auth.RoleClient},
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "client1").Return(nil, nil)
				m.hashService.EXPECT().HashPassword("password").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						u.ID = 1
						return u, nil
					})
			},
			expectedStatus: StatusActive,
		},
		{
			name: "Correspondent starts pending approval",
			params: RegisterParams{
				Login: "corr1", Password: "password", Name: "Correspondent",
				Role: auth.RoleCorrespondent, OABNumber: "123456/SP",
			},
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "corr1").Return(nil, nil)
				m.hashService.EXPECT().HashPassword("password").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						u.ID = 2
						return u, nil
					})
			},
			expectedStatus: StatusPending,
		},
		{
			name:          "Admin role cannot self-register",
			params:        RegisterParams{Login: "admin1", Password: "password", Role: auth.RoleAdmin},
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
		{
			name:   "Login already taken",
			params: RegisterParams{Login: "client1", Password: "password", Role: auth.RoleClient},
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "client1").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:   "Hashing failure",
			params: RegisterParams{Login: "client1", Password: "password", Role: auth.RoleClient},
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "client1").Return(nil, nil)
				m.hashService.EXPECT().HashPassword("password").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, user.Status)
				assert.Equal(t, "hashed", user.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Active user with the right password",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "client1").Return(&domain.User{
					ID: 1, Login: "client1", PasswordHash: "hashed", Status: StatusActive,
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashed", "password").Return(true)
			},
		},
		{
			name: "Unknown login",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "client1").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "client1").Return(&domain.User{
					ID: 1, PasswordHash: "hashed", Status: StatusActive,
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashed", "password").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Pending correspondent cannot log in",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "client1").Return(&domain.User{
					ID: 1, PasswordHash: "hashed", Status: StatusPending,
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashed", "password").Return(true)
			},
			expectedError: ErrUserNotActive,
		},
		{
			name: "Suspended user cannot log in",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "client1").Return(&domain.User{
					ID: 1, PasswordHash: "hashed", Status: StatusSuspended,
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashed", "password").Return(true)
			},
			expectedError: ErrUserNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), "client1", "password")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Token is issued", func(t *testing.T) {
		m.jwtService.EXPECT().GenerateJWT(1, auth.RoleClient, gomock.AssignableToTypeOf(time.Time{})).Return("token", nil)
		token, err := service.GenerateToken(1, auth.RoleClient)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Signing failure", func(t *testing.T) {
		m.jwtService.EXPECT().GenerateJWT(1, auth.RoleClient, gomock.AssignableToTypeOf(time.Time{})).Return("", errors.New("sign error"))
		token, err := service.GenerateToken(1, auth.RoleClient)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestGetUser(t *testing.T) {
	service, m := NewMock(t)

	t.Run("User found", func(t *testing.T) {
		m.repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		user, err := service.GetUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("User not found", func(t *testing.T) {
		m.repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
		_, err := service.GetUser(context.Background(), 1)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestListUsers(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().FindAll(gomock.Any(), auth.RoleCorrespondent, StatusPending).Return([]domain.User{{ID: 2}}, nil)
	users, err := service.ListUsers(context.Background(), auth.RoleCorrespondent, StatusPending)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateUserStatus(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Pending correspondent is approved",
			status: StatusActive,
			prepareMock: func() {
				m.repo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, Status: StatusPending}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 2, StatusActive).Return(true, nil)
				m.historyRepo.EXPECT().Save(gomock.Any(), &domain.StatusHistory{
					EntityType:     domain.EntityUser,
					EntityID:       2,
					PreviousStatus: StatusPending,
					NewStatus:      StatusActive,
					UserID:         3,
					Reason:         "OAB checked",
				}).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), 2, "account_status_changed", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Same status is a no-op",
			status: StatusActive,
			prepareMock: func() {
				m.repo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, Status: StatusActive}, nil)
			},
		},
		{
			name:          "Unknown status",
			status:        "banned",
			prepareMock:   func() {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:   "User not found",
			status: StatusActive,
			prepareMock: func() {
				m.repo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.UpdateUserStatus(context.Background(), 2, tt.status, 3, "OAB checked")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, user.Status)
			}
		})
	}
}
