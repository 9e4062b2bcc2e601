package userrepo

import (
	"context"

	"github.com/fmarques/corresponde/internal/domain"
	"github.com/fmarques/corresponde/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = "id, login, password_hash, name, role, status, oab_number, pix_key, city, state, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Name, &user.Role,
		&user.Status, &user.OABNumber, &user.PixKey, &user.City, &user.State,
		&user.CreatedAt,
	)
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login), &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by login", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id), &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, name, role, status, oab_number, pix_key, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.Name, user.Role, user.Status,
		user.OABNumber, user.PixKey, user.City, user.State,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindAll(ctx context.Context, role, status string) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 = '' OR role = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	rows, err := repo.db.Query(ctx, query, role, status)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (repo *Repository) UpdateStatus(ctx context.Context, id int, status string) (bool, error) {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		zap.L().Error("can't update user status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
