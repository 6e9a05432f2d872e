package postgres

import (
	"context"
	"time"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type feedRepo struct {
	db *pgxpool.Pool
}

func NewFeedPostRepository(db *pgxpool.Pool) domain.FeedPostRepository {
	return &feedRepo{db: db}
}

func (r *feedRepo) Create(ctx context.Context, post *domain.FeedPost) error {
	query := `INSERT INTO feed_posts (user_id, text, created) VALUES ($1, $2, $3) RETURNING id`
	post.Created = time.Now()
	return r.db.QueryRow(ctx, query, post.UserID, post.Text, post.Created).Scan(&post.ID)
}

func (r *feedRepo) FetchByUsername(ctx context.Context, username string) ([]domain.FeedPost, error) {
	query := `SELECT f.id, f.user_id, f.text, f.created, u.username, p.full_name
	          FROM feed_posts f
	          JOIN users u ON f.user_id = u.id
	          JOIN profiles p ON p.user_id = u.id
	          WHERE u.username = $1
	          ORDER BY f.created DESC`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.FeedPost
	for rows.Next() {
		var f domain.FeedPost
		if err := rows.Scan(&f.ID, &f.UserID, &f.Text, &f.Created, &f.Username, &f.FullName); err != nil {
			return nil, err
		}
		posts = append(posts, f)
	}
	return posts, rows.Err()
}
