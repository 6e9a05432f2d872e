package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
	"cvconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo    domain.ProfileRepository
	imageRepo      domain.ProfileImageRepository
	connectionRepo domain.ConnectionRepository
	employmentRepo domain.EmploymentRepository
	educationRepo  domain.EducationRepository
	baseURL        string
	validate       *validator.Validate

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

const maxRecommendations = 3

func NewProfileUsecase(
	profileRepo domain.ProfileRepository,
	imageRepo domain.ProfileImageRepository,
	connectionRepo domain.ConnectionRepository,
	employmentRepo domain.EmploymentRepository,
	educationRepo domain.EducationRepository,
	baseURL string,
	rng *rand.Rand,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo:    profileRepo,
		imageRepo:      imageRepo,
		connectionRepo: connectionRepo,
		employmentRepo: employmentRepo,
		educationRepo:  educationRepo,
		baseURL:        baseURL,
		rng:            rng,
		validate:       validate,
	}
}

// buildView composes the read model: connection usernames, derived current
// position and education, and the resolved image URL.
func (u *profileUsecase) buildView(ctx context.Context, p *domain.Profile) (*domain.ProfileView, error) {
	connections, err := u.profileRepo.ConnectionUsernames(ctx, p.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if connections == nil {
		connections = []string{}
	}

	employment, err := u.employmentRepo.FetchByUsername(ctx, p.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	role, employer := domain.CurrentPosition(employment)

	education, err := u.educationRepo.FetchByUsername(ctx, p.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ProfileView{
		ID:              p.ID,
		UserID:          p.UserID,
		FullName:        p.FullName,
		PreferredName:   p.PreferredName,
		Country:         p.Country,
		Username:        p.Username,
		Email:           p.Email,
		Connections:     connections,
		CurrentPosition: role,
		CurrentCompany:  employer,
		CurrentEdu:      domain.CurrentEducation(education),
		Image:           domain.ResolveImageURL(u.baseURL, p.Username, p.ImageID),
	}, nil
}

func (u *profileUsecase) buildViews(ctx context.Context, profiles []domain.Profile) ([]domain.ProfileView, error) {
	views := make([]domain.ProfileView, 0, len(profiles))
	for i := range profiles {
		view, err := u.buildView(ctx, &profiles[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (u *profileUsecase) getByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) ListProfiles(ctx context.Context) ([]domain.ProfileView, error) {
	profiles, err := u.profileRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.buildViews(ctx, profiles)
}

func (u *profileUsecase) GetProfile(ctx context.Context, username string) (*domain.ProfileView, error) {
	profile, err := u.getByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return u.buildView(ctx, profile)
}

type profileInput struct {
	FullName      string `validate:"required,max=150"`
	PreferredName string `validate:"required,max=150"`
	Country       string `validate:"required,max=100"`
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, actingUsername string, profile *domain.Profile) (*domain.ProfileView, error) {
	if actingUsername != profile.Username {
		return nil, apperror.NotFound("Profile not found")
	}

	current, err := u.getByUsername(ctx, profile.Username)
	if err != nil {
		return nil, err
	}

	input := profileInput{
		FullName:      profile.FullName,
		PreferredName: profile.PreferredName,
		Country:       profile.Country,
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(validation.FieldErrors(err))
	}

	current.FullName = profile.FullName
	current.PreferredName = profile.PreferredName
	current.Country = profile.Country
	if err := u.profileRepo.Update(ctx, current); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.buildView(ctx, current)
}

func (u *profileUsecase) DeleteProfile(ctx context.Context, actingUsername, username string) error {
	if actingUsername != username {
		return apperror.NotFound("Profile not found")
	}

	profile, err := u.getByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := u.profileRepo.Delete(ctx, profile.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Recommendations returns up to three randomly picked profiles the user is
// not yet connected to.
func (u *profileUsecase) Recommendations(ctx context.Context, username string) ([]domain.ProfileView, error) {
	profile, err := u.getByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	candidates, err := u.profileRepo.FetchUnconnected(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.mu.Lock()
	u.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	u.mu.Unlock()

	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	return u.buildViews(ctx, candidates)
}

func (u *profileUsecase) Connections(ctx context.Context, username string) ([]domain.ProfileView, error) {
	profile, err := u.getByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	connections, err := u.connectionRepo.ListConnections(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.buildViews(ctx, connections)
}

func (u *profileUsecase) ImageURL(ctx context.Context, username string) (string, error) {
	profile, err := u.getByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	return domain.ResolveImageURL(u.baseURL, profile.Username, profile.ImageID), nil
}

func (u *profileUsecase) ImageData(ctx context.Context, username string) (*domain.ProfileImage, error) {
	profile, err := u.getByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile.ImageID == nil {
		return nil, apperror.NotFound("Image not found")
	}

	image, err := u.imageRepo.GetByID(ctx, *profile.ImageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Image not found")
		}
		return nil, apperror.Internal(err)
	}
	return image, nil
}

func (u *profileUsecase) SetImage(ctx context.Context, username, encoded string) (string, error) {
	profile, err := u.getByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	data, contentType, err := normalizeImage(encoded)
	if err != nil {
		return "", apperror.Validation(map[string]string{"image": "Upload a valid image."})
	}

	image := &domain.ProfileImage{ContentType: contentType, Data: data}
	if err := u.imageRepo.Create(ctx, image); err != nil {
		return "", apperror.Internal(err)
	}
	if err := u.profileRepo.SetImage(ctx, profile.ID, image.ID); err != nil {
		return "", apperror.Internal(err)
	}

	imageID := image.ID
	return domain.ResolveImageURL(u.baseURL, profile.Username, &imageID), nil
}
