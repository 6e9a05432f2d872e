package postgres

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewJobApplicationRepository(db *pgxpool.Pool) domain.JobApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `INSERT INTO job_applications (job_posting_id, profile_id, status)
	          VALUES ($1, $2, $3) RETURNING id`
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	return r.db.QueryRow(ctx, query, app.JobPostingID, app.ProfileID, app.Status).Scan(&app.ID)
}

func (r *applicationRepo) GetByID(ctx context.Context, jobID, id int64) (*domain.JobApplication, error) {
	query := `SELECT id, job_posting_id, profile_id, status
	          FROM job_applications WHERE id = $1 AND job_posting_id = $2`

	var app domain.JobApplication
	err := r.db.QueryRow(ctx, query, id, jobID).Scan(&app.ID, &app.JobPostingID, &app.ProfileID, &app.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) FetchByJob(ctx context.Context, jobID int64, recruitOnly bool) ([]domain.JobApplication, error) {
	query := `SELECT id, job_posting_id, profile_id, status
	          FROM job_applications WHERE job_posting_id = $1`
	if recruitOnly {
		query += ` AND status IN ('Pending', 'Accepted')`
	}
	query += ` ORDER BY id`

	return r.fetch(ctx, query, jobID)
}

func (r *applicationRepo) FetchByUsername(ctx context.Context, username string) ([]domain.JobApplication, error) {
	query := `SELECT a.id, a.job_posting_id, a.profile_id, a.status
	          FROM job_applications a
	          JOIN profiles p ON a.profile_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE u.username = $1
	          ORDER BY a.id`
	return r.fetch(ctx, query, username)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := rows.Scan(&app.ID, &app.JobPostingID, &app.ProfileID, &app.Status); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) JobPostingIDsByUsername(ctx context.Context, username string) ([]int64, error) {
	query := `SELECT COALESCE(array_agg(a.job_posting_id ORDER BY a.id), ARRAY[]::bigint[])
	          FROM job_applications a
	          JOIN profiles p ON a.profile_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE u.username = $1`

	var ids []int64
	if err := r.db.QueryRow(ctx, query, username).Scan(pq.Array(&ids)); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *applicationRepo) Update(ctx context.Context, app *domain.JobApplication) error {
	query := `UPDATE job_applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, app.ID, app.Status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, jobID, id int64) error {
	query := `DELETE FROM job_applications WHERE id = $1 AND job_posting_id = $2`
	result, err := r.db.Exec(ctx, query, id, jobID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
