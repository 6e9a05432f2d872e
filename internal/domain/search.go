package domain

import "context"

// Search result tags. Type identifies the detail page kind, Subtype the
// facet that matched.
const (
	SearchTypeProfiles = "profiles"
	SearchTypeJobs     = "jobs"

	SearchSubtypeProfiles  = "profiles"
	SearchSubtypeJobs      = "jobs"
	SearchSubtypeSkills    = "skills"
	SearchSubtypeLocations = "locations"
)

// SearchResult is one tagged row of the flat search output. ID is the
// profile's username for profile rows and the posting id for job rows.
type SearchResult struct {
	Type      string      `json:"type"`
	Subtype   string      `json:"subtype"`
	ID        interface{} `json:"id"`
	VisibleID string      `json:"visible_id"`
	Image     string      `json:"image,omitempty"`
	Match     string      `json:"match"`
}

// ProfileSearchRow is a profile facet match.
type ProfileSearchRow struct {
	Username string
	FullName string
	Country  string
	ImageID  *int64
}

// SkillSearchRow is a skill facet match with its owning profile.
type SkillSearchRow struct {
	Name     string
	Username string
	FullName string
}

// JobSearchRow is a job posting facet match.
type JobSearchRow struct {
	ID       int64
	Position string
	Company  string
}

// SearchRepository runs the four substring facet queries. An empty query
// matches everything.
type SearchRepository interface {
	ProfilesByFullName(ctx context.Context, query string) ([]ProfileSearchRow, error)
	JobsByPosition(ctx context.Context, query string) ([]JobSearchRow, error)
	SkillsByName(ctx context.Context, query string) ([]SkillSearchRow, error)
	ProfilesByCountry(ctx context.Context, query string) ([]ProfileSearchRow, error)
}

type SearchUsecase interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
