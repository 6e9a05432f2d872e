package usecase

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
	"cvconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	skillRepo   domain.SkillRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewSkillUsecase(
	skillRepo domain.SkillRepository,
	profileRepo domain.ProfileRepository,
	validate *validator.Validate,
) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo, profileRepo: profileRepo, validate: validate}
}

// Proficiency is a 0 to 5 self-assessment.
type skillInput struct {
	Name        string `validate:"required,max=100"`
	Proficiency int    `validate:"gte=0,lte=5"`
}

func (u *skillUsecase) validateSkill(skill *domain.Skill) error {
	input := skillInput{Name: skill.Name, Proficiency: skill.Proficiency}
	if err := u.validate.Struct(input); err != nil {
		return apperror.Validation(validation.FieldErrors(err))
	}
	return nil
}

func (u *skillUsecase) ListSkills(ctx context.Context, username string) ([]domain.Skill, error) {
	skills, err := u.skillRepo.FetchByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	return skills, nil
}

func (u *skillUsecase) GetSkill(ctx context.Context, username string, id int64) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, username, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, apperror.Internal(err)
	}
	return skill, nil
}

func (u *skillUsecase) CreateSkill(ctx context.Context, username string, skill *domain.Skill) error {
	profile, err := u.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}

	if err := u.validateSkill(skill); err != nil {
		return err
	}

	skill.ProfileID = profile.ID
	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *skillUsecase) UpdateSkill(ctx context.Context, username string, skill *domain.Skill) error {
	existing, err := u.GetSkill(ctx, username, skill.ID)
	if err != nil {
		return err
	}

	if err := u.validateSkill(skill); err != nil {
		return err
	}

	skill.ProfileID = existing.ProfileID
	if err := u.skillRepo.Update(ctx, skill); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, username string, id int64) error {
	if err := u.skillRepo.Delete(ctx, username, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Skill not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
