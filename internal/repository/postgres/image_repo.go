package postgres

import (
	"context"
	"errors"
	"time"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type imageRepo struct {
	db *pgxpool.Pool
}

func NewProfileImageRepository(db *pgxpool.Pool) domain.ProfileImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) Create(ctx context.Context, image *domain.ProfileImage) error {
	query := `INSERT INTO profile_images (content_type, data, created_at)
	          VALUES ($1, $2, $3) RETURNING id`
	image.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query, image.ContentType, image.Data, image.CreatedAt).Scan(&image.ID)
}

func (r *imageRepo) GetByID(ctx context.Context, id int64) (*domain.ProfileImage, error) {
	query := `SELECT id, content_type, data, created_at FROM profile_images WHERE id = $1`

	var image domain.ProfileImage
	err := r.db.QueryRow(ctx, query, id).Scan(&image.ID, &image.ContentType, &image.Data, &image.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}
