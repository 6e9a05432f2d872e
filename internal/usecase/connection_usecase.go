package usecase

import (
	"context"
	"errors"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
)

type connectionUsecase struct {
	profileRepo    domain.ProfileRepository
	connectionRepo domain.ConnectionRepository
}

func NewConnectionUsecase(
	profileRepo domain.ProfileRepository,
	connectionRepo domain.ConnectionRepository,
) domain.ConnectionUsecase {
	return &connectionUsecase{profileRepo: profileRepo, connectionRepo: connectionRepo}
}

func (u *connectionUsecase) resolve(ctx context.Context, first, second string) (*domain.Profile, *domain.Profile, error) {
	a, err := u.profileRepo.GetByUsername(ctx, first)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Profile not found")
		}
		return nil, nil, apperror.Internal(err)
	}
	b, err := u.profileRepo.GetByUsername(ctx, second)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Profile not found")
		}
		return nil, nil, apperror.Internal(err)
	}
	return a, b, nil
}

func (u *connectionUsecase) Connect(ctx context.Context, first, second string) error {
	if first == second {
		return apperror.BadRequest("Cannot connect a profile to itself")
	}

	a, b, err := u.resolve(ctx, first, second)
	if err != nil {
		return err
	}
	if err := u.connectionRepo.Connect(ctx, a.ID, b.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *connectionUsecase) Disconnect(ctx context.Context, first, second string) error {
	a, b, err := u.resolve(ctx, first, second)
	if err != nil {
		return err
	}
	if err := u.connectionRepo.Disconnect(ctx, a.ID, b.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
