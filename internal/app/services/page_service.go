package services

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
)

type pageService struct {
	store    PageContentStore
	sanitize *bluemonday.Policy
}

// NewPageService creates the editable-page service. HTML is sanitized once
// on write, so reads serve the stored markup as-is.
func NewPageService(store PageContentStore) PageService {
	return &pageService{
		store:    store,
		sanitize: bluemonday.UGCPolicy(),
	}
}

// Get returns the stored HTML for a page, or empty for a page that has
// never been edited.
func (s *pageService) Get(ctx context.Context, slug string) (string, error) {
	if !models.ValidPageSlug(slug) {
		return "", apperrors.NewValidationError("unknown page")
	}
	return s.store.Get(ctx, slug)
}

// Set sanitizes and stores the HTML for a page.
func (s *pageService) Set(ctx context.Context, slug, html string) error {
	if !models.ValidPageSlug(slug) {
		return apperrors.NewValidationError("unknown page")
	}
	return s.store.Upsert(ctx, slug, s.sanitize.Sanitize(html))
}
