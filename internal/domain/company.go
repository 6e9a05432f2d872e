package domain

import "context"

type Company struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Industry    string  `json:"industry"`
	HomePage    *string `json:"home_page"`
}

type SocialLink struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company"`
	Service   string `json:"service"`
	Link      string `json:"link"`
}

// CompanyManager grants a profile the capability to mutate a company.
type CompanyManager struct {
	ID        int64 `json:"id"`
	ProfileID int64 `json:"profile"`
	CompanyID int64 `json:"company"`
}

// CompanyView is a company plus its social links.
type CompanyView struct {
	Company
	SocialLinks []SocialLink `json:"social_links"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	Fetch(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) error
	AddManager(ctx context.Context, profileID, companyID int64) error
	IsManager(ctx context.Context, profileID, companyID int64) (bool, error)
	SocialLinksByCompany(ctx context.Context, companyID int64) ([]SocialLink, error)
	AddSocialLink(ctx context.Context, link *SocialLink) error
}

type CompanyUsecase interface {
	ListCompanies(ctx context.Context) ([]CompanyView, error)
	CreateCompany(ctx context.Context, actingUsername string, company *Company) error
	GetCompany(ctx context.Context, actingUsername string, id int64) (*CompanyView, error)
	UpdateCompany(ctx context.Context, actingUsername string, company *Company) error
	DeleteCompany(ctx context.Context, actingUsername string, id int64) error
	GrantManagement(ctx context.Context, actingUsername, username string, companyID int64) error
	AddSocialLink(ctx context.Context, actingUsername string, link *SocialLink) error
	// CanManage reports whether the acting user's profile is in the
	// company's manager set. The boundary layer decides the response code.
	CanManage(ctx context.Context, actingUsername string, companyID int64) (bool, error)
}
