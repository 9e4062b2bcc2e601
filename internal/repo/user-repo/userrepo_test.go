package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var userRows = []string{"id", "login", "password_hash", "name", "role", "status",
	"oab_number", "pix_key", "city", "state", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User exists",
			login: "maria.silva",
			mockSetup: func() {
				rows := pgxmock.NewRows(userRows).
					AddRow(1, "maria.silva", "hash", "Maria Silva", "correspondent", "active",
						"123456/SP", "52998224725", "Campinas", "SP", timeNow)
				mock.ExpectQuery("SELECT (.+) FROM users WHERE login = \\$1").
					WithArgs("maria.silva").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID: 1, Login: "maria.silva", PasswordHash: "hash", Name: "Maria Silva",
				Role: "correspondent", Status: "active", OABNumber: "123456/SP",
				PixKey: "52998224725", City: "Campinas", State: "SP", CreatedAt: timeNow,
			},
		},
		{
			name:  "User does not exist",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE login = \\$1").
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "maria.silva",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE login = \\$1").
					WithArgs("maria.silva").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Login: "joao.souza", PasswordHash: "hash", Name: "João Souza",
				Role: "client", Status: "active",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow)
				mock.ExpectQuery("INSERT INTO users (.+) RETURNING id, created_at").
					WithArgs("joao.souza", "hash", "João Souza", "client", "active", "", "", "", "").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{
				Login: "joao.souza", PasswordHash: "hash", Name: "João Souza",
				Role: "client", Status: "active",
			},
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO users (.+) RETURNING id, created_at").
					WithArgs("joao.souza", "hash", "João Souza", "client", "active", "", "", "", "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name         string
		role, status string
		mockSetup    func()
		expectErr    bool
		result       []domain.User
	}{
		{
			name: "Role filter applied",
			role: "correspondent",
			mockSetup: func() {
				rows := pgxmock.NewRows(userRows).
					AddRow(1, "maria.silva", "hash", "Maria Silva", "correspondent", "pending",
						"123456/SP", "", "", "SP", timeNow)
				mock.ExpectQuery("FROM users\\s+WHERE \\(\\$1 = '' OR role = \\$1\\)").
					WithArgs("correspondent", "").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.User{
				{ID: 1, Login: "maria.silva", PasswordHash: "hash", Name: "Maria Silva",
					Role: "correspondent", Status: "pending", OABNumber: "123456/SP", State: "SP", CreatedAt: timeNow},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("FROM users\\s+WHERE \\(\\$1 = '' OR role = \\$1\\)").
					WithArgs("", "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background(), tt.role, tt.status)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET status = $1 WHERE id = $2")).
		WithArgs("suspended", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	updated, err := repo.UpdateStatus(context.Background(), 1, "suspended")
	assert.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET status = $1 WHERE id = $2")).
		WithArgs("suspended", 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	updated, err = repo.UpdateStatus(context.Background(), 99, "suspended")
	assert.NoError(t, err)
	assert.False(t, updated)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET status = $1 WHERE id = $2")).
		WithArgs("suspended", 1).
		WillReturnError(errors.New("database error"))
	updated, err = repo.UpdateStatus(context.Background(), 1, "suspended")
	assert.Error(t, err)
	assert.False(t, updated)
}
