package postgres

import (
	"context"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type connectionRepo struct {
	db *pgxpool.Pool
}

func NewConnectionRepository(db *pgxpool.Pool) domain.ConnectionRepository {
	return &connectionRepo{db: db}
}

// Connect writes both directions of the edge in a single transaction so a
// failure can never leave a one-sided connection. Re-connecting an already
// connected pair is a no-op.
func (r *connectionRepo) Connect(ctx context.Context, profileID, otherID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO profile_connections (profile_id, connection_id)
	          VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := tx.Exec(ctx, query, profileID, otherID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, otherID, profileID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *connectionRepo) Disconnect(ctx context.Context, profileID, otherID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `DELETE FROM profile_connections WHERE profile_id = $1 AND connection_id = $2`
	if _, err := tx.Exec(ctx, query, profileID, otherID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, otherID, profileID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *connectionRepo) ListConnections(ctx context.Context, profileID int64) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
	          FROM profile_connections pc
	          JOIN profiles p ON pc.connection_id = p.id
	          JOIN users u ON p.user_id = u.id
	          WHERE pc.profile_id = $1
	          ORDER BY p.id`

	rows, err := r.db.Query(ctx, query, profileID)
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
