package usecase

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type accountUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	tokenRepo   domain.ForgottenPasswordTokenRepository
	mailer      domain.Mailer
	hasher      domain.CredentialHasher
	tokens      domain.TokenIssuer
	validate    *validator.Validate
}

func NewAccountUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	tokenRepo domain.ForgottenPasswordTokenRepository,
	mailer domain.Mailer,
	hasher domain.CredentialHasher,
	tokens domain.TokenIssuer,
	validate *validator.Validate,
) domain.AccountUsecase {
	return &accountUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
		hasher:      hasher,
		tokens:      tokens,
		validate:    validate,
	}
}

func (u *accountUsecase) SendInvite(ctx context.Context, actingUsername, email, link string) error {
	if err := u.validate.Var(email, "required,email"); err != nil {
		return apperror.Validation(map[string]string{"email": "Enter a valid email address."})
	}

	profile, err := u.profileRepo.GetByUsername(ctx, actingUsername)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}

	if err := u.mailer.SendInvite(email, profile.PreferredName, link); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *accountUsecase) RequestPasswordReset(ctx context.Context, email, link string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	profile, err := u.profileRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}

	token := &domain.ForgottenPasswordToken{
		UserID: user.ID,
		Token:  uuid.NewString(),
	}
	if err := u.tokenRepo.Create(ctx, token); err != nil {
		return apperror.Internal(err)
	}

	resetLink := link + "?token=" + token.Token
	if err := u.mailer.SendPasswordReset(email, profile.PreferredName, resetLink); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *accountUsecase) ResetPassword(ctx context.Context, token, password string) error {
	if err := u.validate.Var(password, "required,min=6,max=128"); err != nil {
		return apperror.Validation(map[string]string{"password": "Ensure this field has at least 6 characters."})
	}

	stored, err := u.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Token not found")
		}
		return apperror.Internal(err)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.userRepo.UpdatePassword(ctx, stored.UserID, hash); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ChangePassword verifies the current password before storing the new one.
// A wrong current password looks exactly like a missing user.
func (u *accountUsecase) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (string, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", apperror.Internal(err)
	}

	if !u.hasher.Check(currentPassword, user.PasswordHash) {
		return "", apperror.NotFound("User not found")
	}

	if err := u.validate.Var(newPassword, "required,min=6,max=128"); err != nil {
		return "", apperror.Validation(map[string]string{"password": "Ensure this field has at least 6 characters."})
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if err := u.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return "", apperror.Internal(err)
	}

	return u.tokens.Issue(user.ID, user.Username)
}
