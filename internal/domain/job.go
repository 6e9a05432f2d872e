package domain

import (
	"context"
	"time"
)

type JobPosting struct {
	ID           int64     `json:"id"`
	RecruiterID  int64     `json:"-"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Compensation string    `json:"compensation"`
	Position     string    `json:"position"`
	Created      time.Time `json:"-"`

	// Joined data
	Recruiter string `json:"recruiter"`
}

// JobPostingView is a posting with its creation time humanized for display.
type JobPostingView struct {
	JobPosting
	CreatedSince string `json:"created"`
}

type JobPostingRepository interface {
	Create(ctx context.Context, posting *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	Fetch(ctx context.Context) ([]JobPosting, error)
	FetchByRecruiter(ctx context.Context, recruiterID int64) ([]JobPosting, error)
	Update(ctx context.Context, posting *JobPosting) error
	Delete(ctx context.Context, id int64) error
}

type JobPostingUsecase interface {
	// ListJobPostings optionally filters by recruiter username. An unknown
	// recruiter yields an empty list, not an error.
	ListJobPostings(ctx context.Context, recruiter string) ([]JobPostingView, error)
	ListJobPostingsByUsername(ctx context.Context, username string) ([]JobPostingView, error)
	CreateJobPosting(ctx context.Context, actingUsername string, posting *JobPosting) (*JobPostingView, error)
	GetJobPosting(ctx context.Context, id int64) (*JobPostingView, error)
	UpdateJobPosting(ctx context.Context, actingUsername string, posting *JobPosting) (*JobPostingView, error)
	DeleteJobPosting(ctx context.Context, actingUsername string, id int64) error
}
