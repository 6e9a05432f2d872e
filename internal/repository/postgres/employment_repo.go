package postgres

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employmentRepo struct {
	db *pgxpool.Pool
}

func NewEmploymentRepository(db *pgxpool.Pool) domain.EmploymentRepository {
	return &employmentRepo{db: db}
}

const employmentColumns = `e.id, e.profile_id, e.location, e.employer, e.role, e.start_date, e.end_date, e.achievements`

func (r *employmentRepo) Create(ctx context.Context, entry *domain.EmploymentDescription) error {
	query := `INSERT INTO employment_descriptions (profile_id, location, employer, role, start_date, end_date, achievements)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		entry.ProfileID, entry.Location, entry.Employer, entry.Role,
		entry.StartDate, entry.EndDate, entry.Achievements,
	).Scan(&entry.ID)
}

func (r *employmentRepo) GetByID(ctx context.Context, username string, id int64) (*domain.EmploymentDescription, error) {
	query := `SELECT ` + employmentColumns + `
	          FROM employment_descriptions e
	          JOIN profiles p ON e.profile_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE e.id = $1 AND u.username = $2`

	var e domain.EmploymentDescription
	err := r.db.QueryRow(ctx, query, id, username).Scan(
		&e.ID, &e.ProfileID, &e.Location, &e.Employer, &e.Role, &e.StartDate, &e.EndDate, &e.Achievements,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FetchByUsername returns the profile's employment history ordered by
// ascending start date, the order the current-position scan expects.
func (r *employmentRepo) FetchByUsername(ctx context.Context, username string) ([]domain.EmploymentDescription, error) {
	query := `SELECT ` + employmentColumns + `
	          FROM employment_descriptions e
	          JOIN profiles p ON e.profile_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE u.username = $1
	          ORDER BY e.start_date, e.id`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.EmploymentDescription
	for rows.Next() {
		var e domain.EmploymentDescription
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Location, &e.Employer, &e.Role, &e.StartDate, &e.EndDate, &e.Achievements); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *employmentRepo) Update(ctx context.Context, entry *domain.EmploymentDescription) error {
	query := `UPDATE employment_descriptions SET
		location = $3,
		employer = $4,
		role = $5,
		start_date = $6,
		end_date = $7,
		achievements = $8
	WHERE id = $1 AND profile_id = $2`
	result, err := r.db.Exec(ctx, query,
		entry.ID, entry.ProfileID, entry.Location, entry.Employer, entry.Role,
		entry.StartDate, entry.EndDate, entry.Achievements,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employmentRepo) Delete(ctx context.Context, username string, id int64) error {
	query := `DELETE FROM employment_descriptions e
	          USING profiles p, users u
	          WHERE e.profile_id = p.id AND p.user_id = u.id
	            AND e.id = $1 AND u.username = $2`
	result, err := r.db.Exec(ctx, query, id, username)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
