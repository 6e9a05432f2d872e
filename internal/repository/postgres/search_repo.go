package postgres

import (
	"context"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type searchRepo struct {
	db *pgxpool.Pool
}

func NewSearchRepository(db *pgxpool.Pool) domain.SearchRepository {
	return &searchRepo{db: db}
}

// Facet queries use substring LIKE matching. The empty query becomes '%%'
// and matches every row, which is the documented list-everything behavior.

func (r *searchRepo) ProfilesByFullName(ctx context.Context, query string) ([]domain.ProfileSearchRow, error) {
	q := `SELECT u.username, p.full_name, p.country, p.image_id
	      FROM profiles p JOIN users u ON p.user_id = u.id
	      WHERE p.full_name LIKE '%' || $1 || '%'
	      ORDER BY p.id`
	return r.fetchProfiles(ctx, q, query)
}

func (r *searchRepo) ProfilesByCountry(ctx context.Context, query string) ([]domain.ProfileSearchRow, error) {
	q := `SELECT u.username, p.full_name, p.country, p.image_id
	      FROM profiles p JOIN users u ON p.user_id = u.id
	      WHERE p.country LIKE '%' || $1 || '%'
	      ORDER BY p.id`
	return r.fetchProfiles(ctx, q, query)
}

func (r *searchRepo) fetchProfiles(ctx context.Context, query, term string) ([]domain.ProfileSearchRow, error) {
	rows, err := r.db.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ProfileSearchRow
	for rows.Next() {
		var row domain.ProfileSearchRow
		if err := rows.Scan(&row.Username, &row.FullName, &row.Country, &row.ImageID); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *searchRepo) JobsByPosition(ctx context.Context, query string) ([]domain.JobSearchRow, error) {
	q := `SELECT id, position, company FROM job_postings
	      WHERE position LIKE '%' || $1 || '%'
	      ORDER BY id`

	rows, err := r.db.Query(ctx, q, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.JobSearchRow
	for rows.Next() {
		var row domain.JobSearchRow
		if err := rows.Scan(&row.ID, &row.Position, &row.Company); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *searchRepo) SkillsByName(ctx context.Context, query string) ([]domain.SkillSearchRow, error) {
	q := `SELECT s.name, u.username, p.full_name
	      FROM skills s
	      JOIN profiles p ON s.profile_id = p.id
	      JOIN users u ON p.user_id = u.id
	      WHERE s.name LIKE '%' || $1 || '%'
	      ORDER BY s.id`

	rows, err := r.db.Query(ctx, q, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SkillSearchRow
	for rows.Next() {
		var row domain.SkillSearchRow
		if err := rows.Scan(&row.Name, &row.Username, &row.FullName); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
