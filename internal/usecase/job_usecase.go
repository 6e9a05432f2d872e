package usecase

import (
	"context"
	"errors"
	"time"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo  domain.JobPostingRepository
	userRepo domain.UserRepository
}

func NewJobUsecase(jobRepo domain.JobPostingRepository, userRepo domain.UserRepository) domain.JobPostingUsecase {
	return &jobUsecase{jobRepo: jobRepo, userRepo: userRepo}
}

func jobView(posting *domain.JobPosting) *domain.JobPostingView {
	return &domain.JobPostingView{
		JobPosting:   *posting,
		CreatedSince: domain.TimeSince(posting.Created, time.Now()),
	}
}

func jobViews(postings []domain.JobPosting) []domain.JobPostingView {
	views := make([]domain.JobPostingView, 0, len(postings))
	for i := range postings {
		views = append(views, *jobView(&postings[i]))
	}
	return views
}

func (u *jobUsecase) ListJobPostings(ctx context.Context, recruiter string) ([]domain.JobPostingView, error) {
	if recruiter == "" {
		postings, err := u.jobRepo.Fetch(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return jobViews(postings), nil
	}
	return u.ListJobPostingsByUsername(ctx, recruiter)
}

func (u *jobUsecase) ListJobPostingsByUsername(ctx context.Context, username string) ([]domain.JobPostingView, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		// An unknown recruiter has no postings rather than being an error.
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.JobPostingView{}, nil
		}
		return nil, apperror.Internal(err)
	}

	postings, err := u.jobRepo.FetchByRecruiter(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobViews(postings), nil
}

func (u *jobUsecase) CreateJobPosting(ctx context.Context, actingUsername string, posting *domain.JobPosting) (*domain.JobPostingView, error) {
	user, err := u.userRepo.GetByUsername(ctx, actingUsername)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	posting.RecruiterID = user.ID
	posting.Recruiter = user.Username
	if err := u.jobRepo.Create(ctx, posting); err != nil {
		return nil, apperror.Internal(err)
	}
	return jobView(posting), nil
}

func (u *jobUsecase) GetJobPosting(ctx context.Context, id int64) (*domain.JobPostingView, error) {
	posting, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, apperror.Internal(err)
	}
	return jobView(posting), nil
}

func (u *jobUsecase) UpdateJobPosting(ctx context.Context, actingUsername string, posting *domain.JobPosting) (*domain.JobPostingView, error) {
	existing, err := u.jobRepo.GetByID(ctx, posting.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, apperror.Internal(err)
	}

	// Postings are only editable by their recruiter. Anyone else gets the
	// missing-posting response.
	if existing.Recruiter != actingUsername {
		return nil, apperror.NotFound("Job posting not found")
	}

	existing.Company = posting.Company
	existing.Description = posting.Description
	existing.Compensation = posting.Compensation
	existing.Position = posting.Position
	if err := u.jobRepo.Update(ctx, existing); err != nil {
		return nil, apperror.Internal(err)
	}
	return jobView(existing), nil
}

func (u *jobUsecase) DeleteJobPosting(ctx context.Context, actingUsername string, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job posting not found")
		}
		return apperror.Internal(err)
	}

	if existing.Recruiter != actingUsername {
		return apperror.NotFound("Job posting not found")
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
