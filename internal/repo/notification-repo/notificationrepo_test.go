package notificationrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var notificationRows = []string{"id", "user_id", "type", "title", "message", "data", "read", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name         string
		notification *domain.Notification
		mockSetup    func()
		expectErr    bool
	}{
		{
			name: "Save notification successfully",
			notification: &domain.Notification{
				UserID: 7, Type: "diligence_assigned", Title: "New diligence",
				Message: "You were assigned a diligence", Data: []byte(`{"diligence_id":10}`),
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow)
				mock.ExpectQuery("INSERT INTO notifications (.+) RETURNING id, created_at").
					WithArgs(7, "diligence_assigned", "New diligence", "You were assigned a diligence", []byte(`{"diligence_id":10}`)).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			notification: &domain.Notification{
				UserID: 7, Type: "diligence_assigned", Title: "New diligence",
				Message: "You were assigned a diligence", Data: []byte(`{"diligence_id":10}`),
			},
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO notifications (.+) RETURNING id, created_at").
					WithArgs(7, "diligence_assigned", "New diligence", "You were assigned a diligence", []byte(`{"diligence_id":10}`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ctx := context.Background()
			err := repo.Save(ctx, tt.notification)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, tt.notification.ID)
				assert.Equal(t, timeNow, tt.notification.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name       string
		unreadOnly bool
		mockSetup  func()
		expected   int
		expectErr  bool
	}{
		{
			name:       "All notifications",
			unreadOnly: false,
			mockSetup: func() {
				rows := pgxmock.NewRows(notificationRows).
					AddRow(2, 7, "deadline_approaching", "Deadline reminder", "Diligence DIL-10 is due soon", []byte(`{"diligence_id":10}`), false, timeNow).
					AddRow(1, 7, "diligence_assigned", "New diligence", "You were assigned a diligence", []byte(`{"diligence_id":10}`), true, timeNow.Add(-time.Hour))
				mock.ExpectQuery("SELECT (.+) FROM notifications\\s+WHERE user_id = \\$1").
					WithArgs(7, false).
					WillReturnRows(rows)
			},
			expected:  2,
			expectErr: false,
		},
		{
			name:       "Unread only",
			unreadOnly: true,
			mockSetup: func() {
				rows := pgxmock.NewRows(notificationRows).
					AddRow(2, 7, "deadline_approaching", "Deadline reminder", "Diligence DIL-10 is due soon", []byte(`{"diligence_id":10}`), false, timeNow)
				mock.ExpectQuery("SELECT (.+) FROM notifications\\s+WHERE user_id = \\$1").
					WithArgs(7, true).
					WillReturnRows(rows)
			},
			expected:  1,
			expectErr: false,
		},
		{
			name:       "Database error",
			unreadOnly: false,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM notifications\\s+WHERE user_id = \\$1").
					WithArgs(7, false).
					WillReturnError(errors.New("database error"))
			},
			expected:  0,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ctx := context.Background()
			notifications, err := repo.FindByUserID(ctx, 7, tt.unreadOnly)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, notifications, tt.expected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name: "Mark notification read",
			mockSetup: func() {
				mock.ExpectExec("UPDATE notifications SET read = TRUE WHERE id = \\$1 AND user_id = \\$2").
					WithArgs(1, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expected:  true,
			expectErr: false,
		},
		{
			name: "Notification not owned by user",
			mockSetup: func() {
				mock.ExpectExec("UPDATE notifications SET read = TRUE WHERE id = \\$1 AND user_id = \\$2").
					WithArgs(1, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expected:  false,
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("UPDATE notifications SET read = TRUE WHERE id = \\$1 AND user_id = \\$2").
					WithArgs(1, 7).
					WillReturnError(errors.New("database error"))
			},
			expected:  false,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ctx := context.Background()
			ok, err := repo.MarkRead(ctx, 1, 7)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkAllRead(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Mark all notifications read",
			mockSetup: func() {
				mock.ExpectExec("UPDATE notifications SET read = TRUE WHERE user_id = \\$1 AND NOT read").
					WithArgs(7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 3))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("UPDATE notifications SET read = TRUE WHERE user_id = \\$1 AND NOT read").
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ctx := context.Background()
			err := repo.MarkAllRead(ctx, 7)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
