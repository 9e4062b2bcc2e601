package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

var userStatuses = map[string]struct{}{
	StatusActive:    {},
	StatusPending:   {},
	StatusInactive:  {},
	StatusSuspended: {},
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotActive      = errors.New("user is not active")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid status")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context, role, status string) ([]domain.User, error)
	UpdateStatus(ctx context.Context, id int, status string) (bool, error)
}

type HistoryRepo interface {
	Save(ctx context.Context, h *domain.StatusHistory) error
}

type Notifier interface {
	Notify(ctx context.Context, userID int, ntype, title, message string, data map[string]any) error
}

type Service struct {
	userRepo    Repo
	historyRepo HistoryRepo
	notifier    Notifier
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, historyRepo HistoryRepo, notifier Notifier, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		historyRepo: historyRepo,
		notifier:    notifier,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

type RegisterParams struct {
	Login     string
	Password  string
	Name      string
	Role      string
	OABNumber string
	PixKey    string
	City      string
	State     string
}

// Register creates a user account. Clients come out active, correspondents
// start pending until an admin approves their OAB registration.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	if params.Role != auth.RoleClient && params.Role != auth.RoleCorrespondent {
		return nil, ErrInvalidRole
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, params.Login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", params.Login))
		return nil, ErrLoginTaken
	}

	hashedPassword, err := s.hashService.HashPassword(params.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	status := StatusActive
	if params.Role == auth.RoleCorrespondent {
		status = StatusPending
	}

	user := &domain.User{
		Login:        params.Login,
		PasswordHash: hashedPassword,
		Name:         params.Name,
		Role:         params.Role,
		Status:       status,
		OABNumber:    params.OABNumber,
		PixKey:       params.PixKey,
		City:         params.City,
		State:        params.State,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", params.Login), zap.String("role", params.Role))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if user.Status != StatusActive {
		zap.L().Info("login attempt by non-active user", zap.String("login", login), zap.String("status", user.Status))
		return nil, ErrUserNotActive
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, role, status string) ([]domain.User, error) {
	return s.userRepo.FindAll(ctx, role, status)
}

// UpdateUserStatus is the admin approval/suspension path; every change leaves
// an audit row and tells the affected user.
func (s *Service) UpdateUserStatus(ctx context.Context, id int, status string, adminID int, reason string) (*domain.User, error) {
	if _, ok := userStatuses[status]; !ok {
		return nil, ErrInvalidStatus
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Status == status {
		return user, nil
	}

	previousStatus := user.Status
	ok, err := s.userRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	if err := s.historyRepo.Save(ctx, &domain.StatusHistory{
		EntityType:     domain.EntityUser,
		EntityID:       id,
		PreviousStatus: previousStatus,
		NewStatus:      status,
		UserID:         adminID,
		Reason:         reason,
	}); err != nil {
		zap.L().Error("can't save user status history", zap.Error(err))
	}

	message := "Your account status changed to " + status
	if reason != "" {
		message += ": " + reason
	}
	if err := s.notifier.Notify(ctx, id, "account_status_changed", "Account status changed", message, nil); err != nil {
		zap.L().Error("can't send notification", zap.Error(err))
	}

	user.Status = status
	return user, nil
}
