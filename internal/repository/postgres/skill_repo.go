package postgres

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO skills (profile_id, name, proficiency) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, skill.ProfileID, skill.Name, skill.Proficiency).Scan(&skill.ID)
}

func (r *skillRepo) GetByID(ctx context.Context, username string, id int64) (*domain.Skill, error) {
	query := `SELECT s.id, s.profile_id, s.name, s.proficiency
	          FROM skills s
	          JOIN profiles p ON s.profile_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE s.id = $1 AND u.username = $2`

	var s domain.Skill
	err := r.db.QueryRow(ctx, query, id, username).Scan(&s.ID, &s.ProfileID, &s.Name, &s.Proficiency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) FetchByUsername(ctx context.Context, username string) ([]domain.Skill, error) {
	query := `SELECT s.id, s.profile_id, s.name, s.proficiency
	          FROM skills s
	          JOIN profiles p ON s.profile_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE u.username = $1
	          ORDER BY s.id`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Proficiency); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	query := `UPDATE skills SET name = $3, proficiency = $4 WHERE id = $1 AND profile_id = $2`
	result, err := r.db.Exec(ctx, query, skill.ID, skill.ProfileID, skill.Name, skill.Proficiency)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, username string, id int64) error {
	query := `DELETE FROM skills s
	          USING profiles p, users u
	          WHERE s.profile_id = p.id AND p.user_id = u.id
	            AND s.id = $1 AND u.username = $2`
	result, err := r.db.Exec(ctx, query, id, username)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
