package domain

import (
	"context"
	"time"
)

// NoInstitution is the sentinel reported when a profile has no education
// history at all.
const NoInstitution = "no institution"

type EducationDescription struct {
	ID              int64      `json:"id"`
	ProfileID       int64      `json:"profile"`
	Institution     string     `json:"institution"`
	Degree          string     `json:"degree"`
	DateStarted     time.Time  `json:"date_started"`
	DateAttained    *time.Time `json:"date_attained"`
	Achievements    string     `json:"achievements"`
	FieldOfStudy    string     `json:"field_of_study"`
	ExtraActivities string     `json:"extra_activities"`
	Description     string     `json:"description"`
}

// CurrentEducation derives the "current" institution: the entry with the
// earliest attained date, with entries lacking one sorting last. This is the
// historical ascending-attained ordering, not "most recent".
func CurrentEducation(entries []EducationDescription) string {
	if len(entries) == 0 {
		return NoInstitution
	}

	best := entries[0]
	for _, e := range entries[1:] {
		if best.DateAttained == nil {
			if e.DateAttained != nil {
				best = e
			}
			continue
		}
		if e.DateAttained != nil && e.DateAttained.Before(*best.DateAttained) {
			best = e
		}
	}
	return best.Institution
}

type EducationRepository interface {
	Create(ctx context.Context, entry *EducationDescription) error
	GetByID(ctx context.Context, username string, id int64) (*EducationDescription, error)
	FetchByUsername(ctx context.Context, username string) ([]EducationDescription, error)
	Update(ctx context.Context, entry *EducationDescription) error
	Delete(ctx context.Context, username string, id int64) error
}

type EducationUsecase interface {
	ListEducation(ctx context.Context, username string) ([]EducationDescription, error)
	GetEducation(ctx context.Context, username string, id int64) (*EducationDescription, error)
	CreateEducation(ctx context.Context, username string, entry *EducationDescription) error
	UpdateEducation(ctx context.Context, username string, entry *EducationDescription) error
	DeleteEducation(ctx context.Context, username string, id int64) error
}
