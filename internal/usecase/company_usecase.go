package usecase

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
	"cvconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewCompanyUsecase(
	companyRepo domain.CompanyRepository,
	profileRepo domain.ProfileRepository,
	validate *validator.Validate,
) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo, profileRepo: profileRepo, validate: validate}
}

type companyInput struct {
	Name        string  `validate:"required,max=150"`
	Description string  `validate:"required"`
	Industry    string  `validate:"required,max=150"`
	HomePage    *string `validate:"omitempty,url"`
}

func (u *companyUsecase) validateCompany(company *domain.Company) error {
	input := companyInput{
		Name:        company.Name,
		Description: company.Description,
		Industry:    company.Industry,
		HomePage:    company.HomePage,
	}
	if err := u.validate.Struct(input); err != nil {
		return apperror.Validation(validation.FieldErrors(err))
	}
	return nil
}

// CanManage reports whether the acting user's profile is a manager of the
// company. A missing profile simply cannot manage anything.
func (u *companyUsecase) CanManage(ctx context.Context, actingUsername string, companyID int64) (bool, error) {
	profile, err := u.profileRepo.GetByUsername(ctx, actingUsername)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, apperror.Internal(err)
	}

	ok, err := u.companyRepo.IsManager(ctx, profile.ID, companyID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return ok, nil
}

// requireManagement hides companies the user cannot manage behind the same
// response as a missing company.
func (u *companyUsecase) requireManagement(ctx context.Context, actingUsername string, companyID int64) error {
	ok, err := u.CanManage(ctx, actingUsername, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("Company not found")
	}
	return nil
}

func (u *companyUsecase) buildView(ctx context.Context, company *domain.Company) (*domain.CompanyView, error) {
	links, err := u.companyRepo.SocialLinksByCompany(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if links == nil {
		links = []domain.SocialLink{}
	}
	return &domain.CompanyView{Company: *company, SocialLinks: links}, nil
}

func (u *companyUsecase) ListCompanies(ctx context.Context) ([]domain.CompanyView, error) {
	companies, err := u.companyRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	views := make([]domain.CompanyView, 0, len(companies))
	for i := range companies {
		view, err := u.buildView(ctx, &companies[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (u *companyUsecase) CreateCompany(ctx context.Context, actingUsername string, company *domain.Company) error {
	profile, err := u.profileRepo.GetByUsername(ctx, actingUsername)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}

	if err := u.validateCompany(company); err != nil {
		return err
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		return apperror.Internal(err)
	}

	// The creator manages the new company, otherwise nobody could.
	if err := u.companyRepo.AddManager(ctx, profile.ID, company.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *companyUsecase) GetCompany(ctx context.Context, actingUsername string, id int64) (*domain.CompanyView, error) {
	if err := u.requireManagement(ctx, actingUsername, id); err != nil {
		return nil, err
	}

	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.buildView(ctx, company)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, actingUsername string, company *domain.Company) error {
	if err := u.requireManagement(ctx, actingUsername, company.ID); err != nil {
		return err
	}

	if err := u.validateCompany(company); err != nil {
		return err
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, actingUsername string, id int64) error {
	if err := u.requireManagement(ctx, actingUsername, id); err != nil {
		return err
	}

	if err := u.companyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// GrantManagement lets an existing manager add another profile to the
// company's manager set.
func (u *companyUsecase) GrantManagement(ctx context.Context, actingUsername, username string, companyID int64) error {
	if err := u.requireManagement(ctx, actingUsername, companyID); err != nil {
		return err
	}

	profile, err := u.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}

	if err := u.companyRepo.AddManager(ctx, profile.ID, companyID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

type socialLinkInput struct {
	Service string `validate:"required,max=100"`
	Link    string `validate:"required,url"`
}

func (u *companyUsecase) AddSocialLink(ctx context.Context, actingUsername string, link *domain.SocialLink) error {
	if err := u.requireManagement(ctx, actingUsername, link.CompanyID); err != nil {
		return err
	}

	input := socialLinkInput{Service: link.Service, Link: link.Link}
	if err := u.validate.Struct(input); err != nil {
		return apperror.Validation(validation.FieldErrors(err))
	}

	if err := u.companyRepo.AddSocialLink(ctx, link); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
