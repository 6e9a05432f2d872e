package postgres

import (
	"context"
	"errors"
	"time"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobPostingRepository(db *pgxpool.Pool) domain.JobPostingRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.recruiter_id, j.company, j.description, j.compensation, j.position, j.created, u.username`

func (r *jobRepo) Create(ctx context.Context, posting *domain.JobPosting) error {
	query := `INSERT INTO job_postings (recruiter_id, company, description, compensation, position, created)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	posting.Created = time.Now()
	return r.db.QueryRow(ctx, query,
		posting.RecruiterID, posting.Company, posting.Description, posting.Compensation,
		posting.Position, posting.Created,
	).Scan(&posting.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + `
	          FROM job_postings j JOIN users u ON j.recruiter_id = u.id
	          WHERE j.id = $1`

	var j domain.JobPosting
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.RecruiterID, &j.Company, &j.Description, &j.Compensation, &j.Position, &j.Created, &j.Recruiter,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + `
	          FROM job_postings j JOIN users u ON j.recruiter_id = u.id
	          ORDER BY j.created DESC`
	return r.fetch(ctx, query)
}

func (r *jobRepo) FetchByRecruiter(ctx context.Context, recruiterID int64) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + `
	          FROM job_postings j JOIN users u ON j.recruiter_id = u.id
	          WHERE j.recruiter_id = $1
	          ORDER BY j.created DESC`
	return r.fetch(ctx, query, recruiterID)
}

func (r *jobRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.JobPosting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []domain.JobPosting
	for rows.Next() {
		var j domain.JobPosting
		if err := rows.Scan(&j.ID, &j.RecruiterID, &j.Company, &j.Description, &j.Compensation, &j.Position, &j.Created, &j.Recruiter); err != nil {
			return nil, err
		}
		postings = append(postings, j)
	}
	return postings, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, posting *domain.JobPosting) error {
	query := `UPDATE job_postings SET
		company = $2,
		description = $3,
		compensation = $4,
		position = $5
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		posting.ID, posting.Company, posting.Description, posting.Compensation, posting.Position,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM job_applications WHERE job_posting_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
