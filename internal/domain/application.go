package domain

import "context"

// Application status values. Transitions are direct field writes: any
// status may be overwritten with any other, matching the historical
// behavior of the API.
const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusRejected = "Rejected"
)

// ValidApplicationStatus reports whether s is one of the known status values.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

type JobApplication struct {
	ID           int64  `json:"id"`
	JobPostingID int64  `json:"job_posting"`
	ProfileID    int64  `json:"profile"`
	Status       string `json:"status"`
}

// JobApplicationView composes an application with the applicant's identity,
// derived current employment and skill summary, and the posting's company
// and position.
type JobApplicationView struct {
	AppID              int64  `json:"app_id"`
	Username           string `json:"username"`
	FullName           string `json:"full_name"`
	CurrentCompany     string `json:"current_company"`
	CurrentPosition    string `json:"current_position"`
	Skills             string `json:"skills"`
	Status             string `json:"status"`
	JobPosting         int64  `json:"job_posting"`
	Profile            int64  `json:"profile"`
	JobPostingCompany  string `json:"job_posting_company"`
	JobPostingPosition string `json:"job_posting_position"`
}

type JobApplicationRepository interface {
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, jobID, id int64) (*JobApplication, error)
	// FetchByJob lists a posting's applications; with recruitOnly set only
	// Pending and Accepted ones are returned.
	FetchByJob(ctx context.Context, jobID int64, recruitOnly bool) ([]JobApplication, error)
	FetchByUsername(ctx context.Context, username string) ([]JobApplication, error)
	// JobPostingIDsByUsername returns the posting ids a profile applied to.
	JobPostingIDsByUsername(ctx context.Context, username string) ([]int64, error)
	Update(ctx context.Context, app *JobApplication) error
	Delete(ctx context.Context, jobID, id int64) error
}

type JobApplicationUsecase interface {
	// CreateApplication accepts the applicant either as a profile id or as
	// a username, which is resolved to the profile before validation.
	CreateApplication(ctx context.Context, jobID int64, profileRef string, status string) (*JobApplicationView, error)
	GetApplication(ctx context.Context, jobID, id int64) (*JobApplicationView, error)
	ListByJob(ctx context.Context, jobID int64, recruitOnly bool) ([]JobApplicationView, error)
	ListByUsername(ctx context.Context, username string) ([]JobApplicationView, error)
	ListJobPostingIDs(ctx context.Context, username string) ([]int64, error)
	UpdateStatus(ctx context.Context, jobID, id int64, status string) (*JobApplicationView, error)
	DeleteApplication(ctx context.Context, jobID, id int64) error
}
