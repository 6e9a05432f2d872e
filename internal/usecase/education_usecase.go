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

type educationUsecase struct {
	educationRepo domain.EducationRepository
	profileRepo   domain.ProfileRepository
	validate      *validator.Validate
}

func NewEducationUsecase(
	educationRepo domain.EducationRepository,
	profileRepo domain.ProfileRepository,
	validate *validator.Validate,
) domain.EducationUsecase {
	return &educationUsecase{
		educationRepo: educationRepo,
		profileRepo:   profileRepo,
		validate:      validate,
	}
}

type educationInput struct {
	Institution string    `validate:"required,max=150"`
	Degree      string    `validate:"required,max=150"`
	DateStarted time.Time `validate:"required"`
}

func (u *educationUsecase) validateEntry(entry *domain.EducationDescription) error {
	input := educationInput{
		Institution: entry.Institution,
		Degree:      entry.Degree,
		DateStarted: entry.DateStarted,
	}
	if err := u.validate.Struct(input); err != nil {
		return apperror.Validation(validation.FieldErrors(err))
	}
	return nil
}

func (u *educationUsecase) ListEducation(ctx context.Context, username string) ([]domain.EducationDescription, error) {
	entries, err := u.educationRepo.FetchByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if entries == nil {
		entries = []domain.EducationDescription{}
	}
	return entries, nil
}

func (u *educationUsecase) GetEducation(ctx context.Context, username string, id int64) (*domain.EducationDescription, error) {
	entry, err := u.educationRepo.GetByID(ctx, username, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education entry not found")
		}
		return nil, apperror.Internal(err)
	}
	return entry, nil
}

func (u *educationUsecase) CreateEducation(ctx context.Context, username string, entry *domain.EducationDescription) error {
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
	if err := u.educationRepo.Create(ctx, entry); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *educationUsecase) UpdateEducation(ctx context.Context, username string, entry *domain.EducationDescription) error {
	existing, err := u.GetEducation(ctx, username, entry.ID)
	if err != nil {
		return err
	}

	if err := u.validateEntry(entry); err != nil {
		return err
	}

	entry.ProfileID = existing.ProfileID
	if err := u.educationRepo.Update(ctx, entry); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *educationUsecase) DeleteEducation(ctx context.Context, username string, id int64) error {
	if err := u.educationRepo.Delete(ctx, username, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education entry not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
