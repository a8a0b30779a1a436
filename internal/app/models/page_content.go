package models

import "time"

// Page slugs editable through the admin dashboard. Closed set; anything else
// is rejected at the service layer.
const (
	PageSlugJournals     = "journals"
	PageSlugPublications = "publications"
	PageSlugCareer       = "career"
)

// ValidPageSlug reports whether slug names an editable content page.
func ValidPageSlug(slug string) bool {
	switch slug {
	case PageSlugJournals, PageSlugPublications, PageSlugCareer:
		return true
	}
	return false
}

// PageContent is a raw HTML blob keyed by slug.
type PageContent struct {
	Slug      string
	HTML      string
	UpdatedAt time.Time
}
