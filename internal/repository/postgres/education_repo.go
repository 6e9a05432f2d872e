package postgres

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

const educationColumns = `e.id, e.profile_id, e.institution, e.degree, e.date_started, e.date_attained, e.achievements, e.field_of_study, e.extra_activities, e.description`

func (r *educationRepo) Create(ctx context.Context, entry *domain.EducationDescription) error {
	query := `INSERT INTO education_descriptions (profile_id, institution, degree, date_started, date_attained, achievements, field_of_study, extra_activities, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRow(ctx, query,
		entry.ProfileID, entry.Institution, entry.Degree, entry.DateStarted, entry.DateAttained,
		entry.Achievements, entry.FieldOfStudy, entry.ExtraActivities, entry.Description,
	).Scan(&entry.ID)
}

func (r *educationRepo) GetByID(ctx context.Context, username string, id int64) (*domain.EducationDescription, error) {
	query := `SELECT ` + educationColumns + `
	          FROM education_descriptions e
	          JOIN profiles p ON e.profile_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE e.id = $1 AND u.username = $2`

	var e domain.EducationDescription
	err := r.db.QueryRow(ctx, query, id, username).Scan(
		&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.DateStarted, &e.DateAttained,
		&e.Achievements, &e.FieldOfStudy, &e.ExtraActivities, &e.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *educationRepo) FetchByUsername(ctx context.Context, username string) ([]domain.EducationDescription, error) {
	query := `SELECT ` + educationColumns + `
	          FROM education_descriptions e
	          JOIN profiles p ON e.profile_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE u.username = $1
	          ORDER BY e.id`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.EducationDescription
	for rows.Next() {
		var e domain.EducationDescription
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.DateStarted, &e.DateAttained,
			&e.Achievements, &e.FieldOfStudy, &e.ExtraActivities, &e.Description); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *educationRepo) Update(ctx context.Context, entry *domain.EducationDescription) error {
	query := `UPDATE education_descriptions SET
		institution = $3,
		degree = $4,
		date_started = $5,
		date_attained = $6,
		achievements = $7,
		field_of_study = $8,
		extra_activities = $9,
		description = $10
	WHERE id = $1 AND profile_id = $2`
	result, err := r.db.Exec(ctx, query,
		entry.ID, entry.ProfileID, entry.Institution, entry.Degree, entry.DateStarted, entry.DateAttained,
		entry.Achievements, entry.FieldOfStudy, entry.ExtraActivities, entry.Description,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, username string, id int64) error {
	query := `DELETE FROM education_descriptions e
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
