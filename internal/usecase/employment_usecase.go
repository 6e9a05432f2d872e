package usecase

import (
	"context"
	"errors"
	"time"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
	"cvconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type employmentUsecase struct {
	employmentRepo domain.EmploymentRepository
	profileRepo    domain.ProfileRepository
	validate       *validator.Validate
}

func NewEmploymentUsecase(
	employmentRepo domain.EmploymentRepository,
	profileRepo domain.ProfileRepository,
	validate *validator.Validate,
) domain.EmploymentUsecase {
	return &employmentUsecase{
		employmentRepo: employmentRepo,
		profileRepo:    profileRepo,
		validate:       validate,
	}
}

type employmentInput struct {
	Location  string    `validate:"required,max=150"`
	Employer  string    `validate:"required,max=150"`
	Role      string    `validate:"required,max=150"`
	StartDate time.Time `validate:"required"`
}

func (u *employmentUsecase) validateEntry(entry *domain.EmploymentDescription) error {
	input := employmentInput{
		Location:  entry.Location,
		Employer:  entry.Employer,
		Role:      entry.Role,
		StartDate: entry.StartDate,
	}
	if err := u.validate.Struct(input); err != nil {
		return apperror.Validation(validation.FieldErrors(err))
	}
	return nil
}

func (u *employmentUsecase) ListEmployment(ctx context.Context, username string) ([]domain.EmploymentDescription, error) {
	entries, err := u.employmentRepo.FetchByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if entries == nil {
		entries = []domain.EmploymentDescription{}
	}
	return entries, nil
}

func (u *employmentUsecase) GetEmployment(ctx context.Context, username string, id int64) (*domain.EmploymentDescription, error) {
	entry, err := u.employmentRepo.GetByID(ctx, username, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employment entry not found")
		}
		return nil, apperror.Internal(err)
	}
	return entry, nil
}

func (u *employmentUsecase) CreateEmployment(ctx context.Context, username string, entry *domain.EmploymentDescription) error {
	profile, err := u.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}

	if err := u.validateEntry(entry); err != nil {
		return err
	}

	entry.ProfileID = profile.ID
	if err := u.employmentRepo.Create(ctx, entry); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *employmentUsecase) UpdateEmployment(ctx context.Context, username string, entry *domain.EmploymentDescription) error {
	existing, err := u.GetEmployment(ctx, username, entry.ID)
	if err != nil {
		return err
	}

	if err := u.validateEntry(entry); err != nil {
		return err
	}

	entry.ProfileID = existing.ProfileID
	if err := u.employmentRepo.Update(ctx, entry); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *employmentUsecase) DeleteEmployment(ctx context.Context, username string, id int64) error {
	if err := u.employmentRepo.Delete(ctx, username, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Employment entry not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
