package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.JobApplicationRepository
	jobRepo         domain.JobPostingRepository
	profileRepo     domain.ProfileRepository
	employmentRepo  domain.EmploymentRepository
	skillRepo       domain.SkillRepository
}

func NewApplicationUsecase(
	applicationRepo domain.JobApplicationRepository,
	jobRepo domain.JobPostingRepository,
	profileRepo domain.ProfileRepository,
	employmentRepo domain.EmploymentRepository,
	skillRepo domain.SkillRepository,
) domain.JobApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		employmentRepo:  employmentRepo,
		skillRepo:       skillRepo,
	}
}

// buildView composes the application with the applicant's identity, derived
// current employment, skill summary and the posting's company and position.
func (u *applicationUsecase) buildView(ctx context.Context, app *domain.JobApplication) (*domain.JobApplicationView, error) {
	posting, err := u.jobRepo.GetByID(ctx, app.JobPostingID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	profile, err := u.profileRepo.GetByID(ctx, app.ProfileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	employment, err := u.employmentRepo.FetchByUsername(ctx, profile.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	role, employer := domain.CurrentPosition(employment)

	skills, err := u.skillRepo.FetchByUsername(ctx, profile.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}

	return &domain.JobApplicationView{
		AppID:              app.ID,
		Username:           profile.Username,
		FullName:           profile.FullName,
		CurrentCompany:     employer,
		CurrentPosition:    role,
		Skills:             strings.Join(names, ", "),
		Status:             app.Status,
		JobPosting:         posting.ID,
		Profile:            profile.ID,
		JobPostingCompany:  posting.Company,
		JobPostingPosition: posting.Position,
	}, nil
}

func (u *applicationUsecase) buildViews(ctx context.Context, apps []domain.JobApplication) ([]domain.JobApplicationView, error) {
	views := make([]domain.JobApplicationView, 0, len(apps))
	for i := range apps {
		view, err := u.buildView(ctx, &apps[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// resolveProfile accepts either a username or a numeric profile id.
func (u *applicationUsecase) resolveProfile(ctx context.Context, profileRef string) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUsername(ctx, profileRef)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	id, parseErr := strconv.ParseInt(profileRef, 10, 64)
	if parseErr != nil {
		return nil, apperror.Validation(map[string]string{"profile": "Invalid profile."})
	}
	profile, err = u.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Validation(map[string]string{"profile": "Invalid profile."})
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *applicationUsecase) CreateApplication(ctx context.Context, jobID int64, profileRef string, status string) (*domain.JobApplicationView, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Validation(map[string]string{"job_posting": "Invalid job posting."})
		}
		return nil, apperror.Internal(err)
	}

	profile, err := u.resolveProfile(ctx, profileRef)
	if err != nil {
		return nil, err
	}

	if status == "" {
		status = domain.ApplicationStatusPending
	}
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.Validation(map[string]string{"status": "\"" + status + "\" is not a valid choice."})
	}

	app := &domain.JobApplication{
		JobPostingID: jobID,
		ProfileID:    profile.ID,
		Status:       status,
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.buildView(ctx, app)
}

func (u *applicationUsecase) GetApplication(ctx context.Context, jobID, id int64) (*domain.JobApplicationView, error) {
	app, err := u.applicationRepo.GetByID(ctx, jobID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.buildView(ctx, app)
}

func (u *applicationUsecase) ListByJob(ctx context.Context, jobID int64, recruitOnly bool) ([]domain.JobApplicationView, error) {
	apps, err := u.applicationRepo.FetchByJob(ctx, jobID, recruitOnly)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.buildViews(ctx, apps)
}

func (u *applicationUsecase) ListByUsername(ctx context.Context, username string) ([]domain.JobApplicationView, error) {
	apps, err := u.applicationRepo.FetchByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.buildViews(ctx, apps)
}

func (u *applicationUsecase) ListJobPostingIDs(ctx context.Context, username string) ([]int64, error) {
	ids, err := u.applicationRepo.JobPostingIDsByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// UpdateStatus writes the status directly. Any known status may replace any
// other, including moving a decided application back to Pending.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, jobID, id int64, status string) (*domain.JobApplicationView, error) {
	app, err := u.applicationRepo.GetByID(ctx, jobID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.Validation(map[string]string{"status": "\"" + status + "\" is not a valid choice."})
	}

	app.Status = status
	if err := u.applicationRepo.Update(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.buildView(ctx, app)
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, jobID, id int64) error {
	if err := u.applicationRepo.Delete(ctx, jobID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
