package models

import "time"

// Resource is a catalog entry. Storage keeps a single sparse row per entry;
// in memory the type-specific fields live on a variant attached only when the
// resource type calls for them (currently just career postings).
type Resource struct {
	ID            int64
	Title         string
	Description   *string
	ExternalURL   *string
	FilePath      *string
	ThumbnailPath *string
	Type          ResourceType
	SubjectID     *int64
	YearID        *int
	CardColor     *string
	UploadedAt    time.Time

	// Career is set only when Type == ResourceTypeCareer.
	Career *CareerPosting

	// Joined display fields, populated by list queries.
	SubjectName *string
	YearName    *string
}

// CareerPosting holds the fields that only apply to career resources.
type CareerPosting struct {
	CompanyName     *string
	Location        *string
	DeadlineDate    *time.Time
	Requirements    *string
	SalaryRange     *string
	ApplicationLink *string
}
