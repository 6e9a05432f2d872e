package postgres

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `p.id, p.user_id, p.full_name, p.preferred_name, p.country, p.image_id, u.username, u.email`

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, full_name, preferred_name, country, image_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.PreferredName, profile.Country, profile.ImageID,
	).Scan(&profile.ID)
}

func (r *profileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
	          FROM profiles p JOIN users u ON p.user_id = u.id
	          WHERE p.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *profileRepo) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
	          FROM profiles p JOIN users u ON p.user_id = u.id
	          WHERE u.username = $1`
	return r.getOne(ctx, query, username)
}

func (r *profileRepo) getOne(ctx context.Context, query string, arg interface{}) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.PreferredName, &p.Country, &p.ImageID, &p.Username, &p.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Fetch(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
	          FROM profiles p JOIN users u ON p.user_id = u.id
	          ORDER BY p.id`
	return r.fetch(ctx, query)
}

// FetchUnconnected returns the recommendation candidate pool: every profile
// except the given one and its existing connections.
func (r *profileRepo) FetchUnconnected(ctx context.Context, profileID int64) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
	          FROM profiles p JOIN users u ON p.user_id = u.id
	          WHERE p.id <> $1
	            AND p.id NOT IN (SELECT connection_id FROM profile_connections WHERE profile_id = $1)
	          ORDER BY p.id`
	return r.fetch(ctx, query, profileID)
}

func (r *profileRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Profile, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.FullName, &p.PreferredName, &p.Country, &p.ImageID, &p.Username, &p.Email); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET full_name = $2, preferred_name = $3, country = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, profile.ID, profile.FullName, profile.PreferredName, profile.Country)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a profile and the rows it exclusively owns (skills,
// education, employment, both sides of its connections) in one transaction.
func (r *profileRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	owned := []string{
		`DELETE FROM job_applications WHERE profile_id = $1`,
		`DELETE FROM skills WHERE profile_id = $1`,
		`DELETE FROM education_descriptions WHERE profile_id = $1`,
		`DELETE FROM employment_descriptions WHERE profile_id = $1`,
		`DELETE FROM profile_connections WHERE profile_id = $1 OR connection_id = $1`,
		`DELETE FROM company_managers WHERE profile_id = $1`,
	}
	for _, q := range owned {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *profileRepo) SetImage(ctx context.Context, profileID, imageID int64) error {
	query := `UPDATE profiles SET image_id = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, profileID, imageID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) ConnectionUsernames(ctx context.Context, profileID int64) ([]string, error) {
	query := `SELECT COALESCE(array_agg(u.username ORDER BY u.username), ARRAY[]::text[])
	          FROM profile_connections pc
	          JOIN profiles p ON pc.connection_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE pc.profile_id = $1`

	var usernames []string
	if err := r.db.QueryRow(ctx, query, profileID).Scan(pq.Array(&usernames)); err != nil {
		return nil, err
	}
	return usernames, nil
}
