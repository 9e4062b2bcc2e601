package historyrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var historyRows = []string{"id", "entity_type", "entity_id", "previous_status", "new_status",
	"user_id", "reason", "created_at"}

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
		name      string
		history   *domain.StatusHistory
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save history row successfully",
			history: &domain.StatusHistory{
				EntityType: domain.EntityDiligence, EntityID: 1,
				PreviousStatus: "pending", NewStatus: "assigned", UserID: 3,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow)
				mock.ExpectQuery("INSERT INTO status_history (.+) RETURNING id, created_at").
					WithArgs(domain.EntityDiligence, 1, "pending", "assigned", 3, "").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			history: &domain.StatusHistory{
				EntityType: domain.EntityDiligence, EntityID: 1,
				PreviousStatus: "pending", NewStatus: "assigned", UserID: 3,
			},
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO status_history (.+) RETURNING id, created_at").
					WithArgs(domain.EntityDiligence, 1, "pending", "assigned", 3, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.history)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, tt.history.ID)
			}
		})
	}
}

func TestRepository_FindByEntity(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.StatusHistory
	}{
		{
			name: "History found in order",
			mockSetup: func() {
				rows := pgxmock.NewRows(historyRows).
					AddRow(1, domain.EntityDiligence, 1, "pending", "assigned", 3, "", timeNow).
					AddRow(2, domain.EntityDiligence, 1, "assigned", "in_progress", 5, "", timeNow)
				mock.ExpectQuery("FROM status_history\\s+WHERE entity_type = \\$1 AND entity_id = \\$2").
					WithArgs(domain.EntityDiligence, 1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.StatusHistory{
				{ID: 1, EntityType: domain.EntityDiligence, EntityID: 1, PreviousStatus: "pending", NewStatus: "assigned", UserID: 3, CreatedAt: timeNow},
				{ID: 2, EntityType: domain.EntityDiligence, EntityID: 1, PreviousStatus: "assigned", NewStatus: "in_progress", UserID: 5, CreatedAt: timeNow},
			},
		},
		{
			name: "No history",
			mockSetup: func() {
				rows := pgxmock.NewRows(historyRows)
				mock.ExpectQuery("FROM status_history\\s+WHERE entity_type = \\$1 AND entity_id = \\$2").
					WithArgs(domain.EntityDiligence, 1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("FROM status_history\\s+WHERE entity_type = \\$1 AND entity_id = \\$2").
					WithArgs(domain.EntityDiligence, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEntity(context.Background(), domain.EntityDiligence, 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
