package usecase

import (
	"context"

	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"
)

type searchUsecase struct {
	searchRepo domain.SearchRepository
	baseURL    string
}

func NewSearchUsecase(searchRepo domain.SearchRepository, baseURL string) domain.SearchUsecase {
	return &searchUsecase{searchRepo: searchRepo, baseURL: baseURL}
}

// Search runs the four facets and returns one flat, tagged list in facet
// order: full-name matches, job position matches, skill matches, country
// matches. Duplicates across facets are kept.
func (u *searchUsecase) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	results := []domain.SearchResult{}

	profiles, err := u.searchRepo.ProfilesByFullName(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, row := range profiles {
		results = append(results, domain.SearchResult{
			Type:      domain.SearchTypeProfiles,
			Subtype:   domain.SearchSubtypeProfiles,
			ID:        row.Username,
			VisibleID: row.FullName,
			Image:     domain.ResolveImageURL(u.baseURL, row.Username, row.ImageID),
			Match:     row.FullName,
		})
	}

	jobs, err := u.searchRepo.JobsByPosition(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, row := range jobs {
		visible := row.Position + " at " + row.Company
		results = append(results, domain.SearchResult{
			Type:      domain.SearchTypeJobs,
			Subtype:   domain.SearchSubtypeJobs,
			ID:        row.ID,
			VisibleID: visible,
			Match:     visible,
		})
	}

	skills, err := u.searchRepo.SkillsByName(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, row := range skills {
		results = append(results, domain.SearchResult{
			Type:      domain.SearchTypeProfiles,
			Subtype:   domain.SearchSubtypeSkills,
			ID:        row.Username,
			VisibleID: row.FullName,
			Match:     row.Name,
		})
	}

	locations, err := u.searchRepo.ProfilesByCountry(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, row := range locations {
		results = append(results, domain.SearchResult{
			Type:      domain.SearchTypeProfiles,
			Subtype:   domain.SearchSubtypeLocations,
			ID:        row.Username,
			VisibleID: row.FullName,
			Image:     domain.ResolveImageURL(u.baseURL, row.Username, row.ImageID),
			Match:     row.Country,
		})
	}

	return results, nil
}
