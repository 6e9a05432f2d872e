package postgres

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, description, industry, home_page)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Industry, company.HomePage,
	).Scan(&company.ID)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, name, description, industry, home_page FROM companies WHERE id = $1`

	var c domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.Industry, &c.HomePage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, name, description, industry, home_page FROM companies ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Industry, &c.HomePage); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET name = $2, description = $3, industry = $4, home_page = $5 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Industry, company.HomePage,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM social_links WHERE company_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM company_managers WHERE company_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *companyRepo) AddManager(ctx context.Context, profileID, companyID int64) error {
	query := `INSERT INTO company_managers (profile_id, company_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, profileID, companyID)
	return err
}

func (r *companyRepo) IsManager(ctx context.Context, profileID, companyID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM company_managers WHERE profile_id = $1 AND company_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, profileID, companyID).Scan(&exists)
	return exists, err
}

func (r *companyRepo) SocialLinksByCompany(ctx context.Context, companyID int64) ([]domain.SocialLink, error) {
	query := `SELECT id, company_id, service, link FROM social_links WHERE company_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.SocialLink
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Service, &l.Link); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *companyRepo) AddSocialLink(ctx context.Context, link *domain.SocialLink) error {
	query := `INSERT INTO social_links (company_id, service, link) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, link.CompanyID, link.Service, link.Link).Scan(&link.ID)
}
