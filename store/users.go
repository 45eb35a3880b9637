package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"nutriplan/apperr"
	"nutriplan/models"
)

const uniqueViolation = "23505"

type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
	Age          int
	Gender       string
}

type Users interface {
	Create(ctx context.Context, u NewUser) (int64, error)
	ByEmail(ctx context.Context, email string) (models.User, error)
}

type PostgresUsers struct {
	db *sql.DB
}

func NewPostgresUsers(db *sql.DB) *PostgresUsers {
	return &PostgresUsers{db: db}
}

func (s *PostgresUsers) Create(ctx context.Context, u NewUser) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password_hash, age, gender)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Name, u.Email, u.PasswordHash, u.Age, u.Gender).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, apperr.ErrEmailExists
		}
		return 0, err
	}

	return id, nil
}

func (s *PostgresUsers) ByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, age, gender, created_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Age, &u.Gender, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, apperr.ErrUserNotFound
	} else if err != nil {
		return models.User{}, err
	}

	return u, nil
}
