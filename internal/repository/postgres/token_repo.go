package postgres

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tokenRepo struct {
	db *pgxpool.Pool
}

func NewForgottenPasswordTokenRepository(db *pgxpool.Pool) domain.ForgottenPasswordTokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Create(ctx context.Context, token *domain.ForgottenPasswordToken) error {
	query := `INSERT INTO forgotten_password_tokens (user_id, token) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRow(ctx, query, token.UserID, token.Token).Scan(&token.ID)
}

func (r *tokenRepo) GetByToken(ctx context.Context, token string) (*domain.ForgottenPasswordToken, error) {
	query := `SELECT id, user_id, token FROM forgotten_password_tokens WHERE token = $1`

	var t domain.ForgottenPasswordToken
	err := r.db.QueryRow(ctx, query, token).Scan(&t.ID, &t.UserID, &t.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
