package dto

import (
	"time"

	"github.com/scop/resourcehub/internal/app/models"
)

// uploadedAtFormat matches the timestamp format the dashboard tables render.
const uploadedAtFormat = "2006-01-02 15:04:05"

// deadlineFormat is the date-only format used for career deadlines.
const deadlineFormat = "2006-01-02"

// CreateResourceRequest carries the admin_create_resource form fields.
// The request arrives as multipart form data; file and thumbnail parts are
// handled separately by the controller. The dashboard submits the whole
// form, so unfilled selects arrive as present-but-empty values; the numeric
// optionals bind as strings and the service treats empty as absent.
type CreateResourceRequest struct {
	Title        string  `form:"title"`
	ResourceType string  `form:"resource_type"`
	Description  *string `form:"description"`
	ExternalURL  *string `form:"external_url"`
	SubjectID    string  `form:"subject_id"`
	YearID       string  `form:"year_id"`
	CardColor    *string `form:"card_color"`

	// Career posting fields, ignored for other resource types.
	CompanyName     *string `form:"company_name"`
	Location        *string `form:"location"`
	DeadlineDate    *string `form:"deadline_date"`
	Requirements    *string `form:"requirements"`
	SalaryRange     *string `form:"salary_range"`
	ApplicationLink *string `form:"application_link"`
}

// CreateResourceResponse acknowledges a created resource with its new id.
type CreateResourceResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// DeleteResourceRequest identifies the row for admin_delete_resource.
type DeleteResourceRequest struct {
	ResourceID int64 `json:"resource_id" form:"resource_id"`
}

// SubjectRecord is a single list_subjects entry.
type SubjectRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ResourceRecord is the flat wire shape of a catalog entry, joined with the
// subject and year display names. Career fields are omitted unless set.
type ResourceRecord struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	ExternalURL   *string `json:"external_url"`
	FilePath      *string `json:"file_path"`
	ThumbnailPath *string `json:"thumbnail_path"`
	ResourceType  string  `json:"resource_type"`
	SubjectID     *int64  `json:"subject_id"`
	YearID        *int    `json:"year_id"`
	CardColor     *string `json:"card_color"`
	UploadedAt    string  `json:"uploaded_at"`
	SubjectName   *string `json:"subject_name"`
	YearName      *string `json:"year_name"`

	CompanyName     *string `json:"company_name,omitempty"`
	Location        *string `json:"location,omitempty"`
	DeadlineDate    *string `json:"deadline_date,omitempty"`
	Requirements    *string `json:"requirements,omitempty"`
	SalaryRange     *string `json:"salary_range,omitempty"`
	ApplicationLink *string `json:"application_link,omitempty"`
}

// NewResourceRecord flattens a resource and its variant into the wire shape.
func NewResourceRecord(r *models.Resource) ResourceRecord {
	record := ResourceRecord{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		ExternalURL:   r.ExternalURL,
		FilePath:      r.FilePath,
		ThumbnailPath: r.ThumbnailPath,
		ResourceType:  string(r.Type),
		SubjectID:     r.SubjectID,
		YearID:        r.YearID,
		CardColor:     r.CardColor,
		UploadedAt:    r.UploadedAt.Format(uploadedAtFormat),
		SubjectName:   r.SubjectName,
		YearName:      r.YearName,
	}

	if r.Career != nil {
		record.CompanyName = r.Career.CompanyName
		record.Location = r.Career.Location
		record.Requirements = r.Career.Requirements
		record.SalaryRange = r.Career.SalaryRange
		record.ApplicationLink = r.Career.ApplicationLink
		if r.Career.DeadlineDate != nil {
			deadline := r.Career.DeadlineDate.Format(deadlineFormat)
			record.DeadlineDate = &deadline
		}
	}

	return record
}

// NewResourceRecords converts a result set, always yielding a non-nil slice
// so empty lists serialize as [] rather than null.
func NewResourceRecords(resources []models.Resource) []ResourceRecord {
	records := make([]ResourceRecord, 0, len(resources))
	for i := range resources {
		records = append(records, NewResourceRecord(&resources[i]))
	}
	return records
}

// ParseDeadline parses a career deadline in the wire date format.
func ParseDeadline(value string) (time.Time, error) {
	return time.Parse(deadlineFormat, value)
}
