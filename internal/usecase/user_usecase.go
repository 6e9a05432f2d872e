package usecase

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
	"cvconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	hasher      domain.CredentialHasher
	validate    *validator.Validate
}

func NewUserUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	hasher domain.CredentialHasher,
	validate *validator.Validate,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		hasher:      hasher,
		validate:    validate,
	}
}

type registerInput struct {
	Username string `validate:"required,max=150"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=128"`
}

func (u *userUsecase) Register(ctx context.Context, username, email, password string) (*domain.User, int64, error) {
	input := registerInput{Username: username, Email: email, Password: password}
	if err := u.validate.Struct(input); err != nil {
		return nil, 0, apperror.Validation(validation.FieldErrors(err))
	}

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, 0, apperror.Validation(map[string]string{
			"email": "Email already in use. Please use another email address",
		})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, 0, apperror.Internal(err)
	}

	if _, err := u.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, 0, apperror.Validation(map[string]string{
			"username": "A user with that username already exists.",
		})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, 0, apperror.Internal(err)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}

	user := &domain.User{Username: username, Email: email, PasswordHash: hash}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	// Every account gets an empty profile so profile endpoints never 404
	// for a registered user.
	profile := &domain.Profile{UserID: user.ID}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	return user, profile.ID, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := u.userRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (u *userUsecase) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, actingUsername, username, email string) (*domain.User, error) {
	// Accounts are only editable by their owner. Anyone else sees the same
	// response as for a missing user.
	if actingUsername != username {
		return nil, apperror.NotFound("User not found")
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := u.validate.Var(email, "required,email"); err != nil {
		return nil, apperror.Validation(map[string]string{"email": "Enter a valid email address."})
	}

	if email != user.Email {
		if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
			return nil, apperror.Validation(map[string]string{
				"email": "Email already in use. Please use another email address",
			})
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
	}

	user.Email = email
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, actingUsername, username string) error {
	if actingUsername != username {
		return apperror.NotFound("User not found")
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	// Drop the profile and everything it owns before the account itself.
	if profile, err := u.profileRepo.GetByUsername(ctx, username); err == nil {
		if err := u.profileRepo.Delete(ctx, profile.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return apperror.Internal(err)
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	if err := u.userRepo.Delete(ctx, user.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
