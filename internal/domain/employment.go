package domain

import (
	"context"
	"sort"
	"time"
)

// NotEmployed is the sentinel reported when a profile has no open
// employment entry.
const NotEmployed = "Not Employed"

type EmploymentDescription struct {
	ID           int64      `json:"id"`
	ProfileID    int64      `json:"profile"`
	Location     string     `json:"location"`
	Employer     string     `json:"employer"`
	Role         string     `json:"role"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Achievements string     `json:"achievements"`
}

// CurrentPosition derives the role and employer of the profile's current
// job. Entries are scanned in ascending start-date order and the last one
// without an end date wins, even when several are still open.
func CurrentPosition(entries []EmploymentDescription) (role, employer string) {
	sorted := make([]EmploymentDescription, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	role, employer = NotEmployed, NotEmployed
	for _, e := range sorted {
		if e.EndDate == nil {
			role = e.Role
			employer = e.Employer
		}
	}
	return role, employer
}

type EmploymentRepository interface {
	Create(ctx context.Context, entry *EmploymentDescription) error
	GetByID(ctx context.Context, username string, id int64) (*EmploymentDescription, error)
	FetchByUsername(ctx context.Context, username string) ([]EmploymentDescription, error)
	Update(ctx context.Context, entry *EmploymentDescription) error
	Delete(ctx context.Context, username string, id int64) error
}

type EmploymentUsecase interface {
	ListEmployment(ctx context.Context, username string) ([]EmploymentDescription, error)
	GetEmployment(ctx context.Context, username string, id int64) (*EmploymentDescription, error)
	CreateEmployment(ctx context.Context, username string, entry *EmploymentDescription) error
	UpdateEmployment(ctx context.Context, username string, entry *EmploymentDescription) error
	DeleteEmployment(ctx context.Context, username string, id int64) error
}
