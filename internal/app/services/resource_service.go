package services

import (
	"context"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/app/repositories"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
	"github.com/scop/resourcehub/internal/pkg/filestorage"
	"github.com/scop/resourcehub/internal/pkg/logger"
)

type resourceService struct {
	resources ResourceStore
	subjects  SubjectStore
	storage   filestorage.FileStorage
}

// NewResourceService creates the catalog service
func NewResourceService(resources ResourceStore, subjects SubjectStore, storage filestorage.FileStorage) ResourceService {
	return &resourceService{
		resources: resources,
		subjects:  subjects,
		storage:   storage,
	}
}

// ListSubjects returns the subjects of one academic year
func (s *resourceService) ListSubjects(ctx context.Context, yearID int) ([]models.Subject, error) {
	if !models.ValidYear(yearID) {
		return nil, apperrors.NewValidationError("year_id must be between 1 and 6")
	}
	return s.subjects.GetByYear(ctx, yearID)
}

// List returns resources matching all provided filters
func (s *resourceService) List(ctx context.Context, filter repositories.ResourceFilter) ([]models.Resource, error) {
	if filter.YearID != nil && !models.ValidYear(*filter.YearID) {
		return nil, apperrors.NewValidationError("year_id must be between 1 and 6")
	}
	if filter.ResourceType != nil && !filter.ResourceType.Valid() {
		return nil, apperrors.NewValidationError("unknown resource_type")
	}
	return s.resources.List(ctx, filter)
}

// ListByYear is the question-paper convenience listing: year and type are
// both required, the subject dimension is skipped.
func (s *resourceService) ListByYear(ctx context.Context, yearID int, resourceType models.ResourceType) ([]models.Resource, error) {
	if !models.ValidYear(yearID) {
		return nil, apperrors.NewValidationError("year_id must be between 1 and 6")
	}
	if !resourceType.Valid() {
		return nil, apperrors.NewValidationError("unknown resource_type")
	}
	return s.resources.List(ctx, repositories.ResourceFilter{
		YearID:       &yearID,
		ResourceType: &resourceType,
	})
}

// ListAll returns every catalog entry for the admin dashboard tables.
// Type filtering happens client-side there.
func (s *resourceService) ListAll(ctx context.Context) ([]models.Resource, error) {
	return s.resources.List(ctx, repositories.ResourceFilter{})
}

// Create validates the request, stores any uploaded files and inserts the
// row. The row is only written after uploads succeed.
func (s *resourceService) Create(ctx context.Context, req *dto.CreateResourceRequest, file, thumbnail *multipart.FileHeader) (int64, error) {
	resource, err := buildResource(req)
	if err != nil {
		return 0, err
	}

	if file != nil {
		path, err := s.storage.SaveFileWithPath(file, filestorage.SubdirResources)
		if err != nil {
			logger.Error().Err(err).Str("filename", file.Filename).Msg("Failed to store resource file")
			return 0, apperrors.ErrStorageFailed
		}
		resource.FilePath = &path
	}

	if thumbnail != nil {
		path, err := s.storage.SaveFileWithPath(thumbnail, filestorage.SubdirThumbnails)
		if err != nil {
			logger.Error().Err(err).Str("filename", thumbnail.Filename).Msg("Failed to store thumbnail")
			return 0, apperrors.ErrStorageFailed
		}
		resource.ThumbnailPath = &path
	}

	id, err := s.resources.Create(ctx, resource)
	if err != nil {
		s.discardUploads(resource)
		return 0, err
	}
	return id, nil
}

// discardUploads removes files saved for a resource whose insert failed,
// so a rejected create leaves nothing behind in storage.
func (s *resourceService) discardUploads(resource *models.Resource) {
	for _, path := range []*string{resource.FilePath, resource.ThumbnailPath} {
		if path == nil {
			continue
		}
		if err := s.storage.DeleteFile(*path); err != nil {
			logger.Warn().Err(err).Str("path", *path).Msg("Failed to remove upload after insert failure")
		}
	}
}

// Delete removes the row by id. Files the row still referenced are left in
// storage on purpose; the gap is surfaced in the log rather than silently
// cleaned up.
func (s *resourceService) Delete(ctx context.Context, id int64) error {
	filePath, thumbnailPath, err := s.resources.Delete(ctx, id)
	if err != nil {
		return err
	}

	if filePath != nil || thumbnailPath != nil {
		logger.Warn().
			Int64("resourceID", id).
			Interface("filePath", filePath).
			Interface("thumbnailPath", thumbnailPath).
			Msg("Deleted resource still referenced stored files; orphans left in place")
	}

	return nil
}

// buildResource validates a create request and assembles the domain record,
// attaching the career variant when the type calls for it.
func buildResource(req *dto.CreateResourceRequest) (*models.Resource, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	resourceType := models.ResourceType(strings.TrimSpace(req.ResourceType))
	if resourceType == "" {
		return nil, apperrors.NewValidationError("resource_type is required")
	}
	if !resourceType.Valid() {
		return nil, apperrors.NewValidationError("unknown resource_type")
	}

	yearID, err := parseOptionalInt(req.YearID)
	if err != nil {
		return nil, apperrors.NewValidationError("year_id must be a number")
	}
	if yearID != nil && !models.ValidYear(*yearID) {
		return nil, apperrors.NewValidationError("year_id must be between 1 and 6")
	}

	subjectID, err := parseOptionalInt64(req.SubjectID)
	if err != nil {
		return nil, apperrors.NewValidationError("subject_id must be a number")
	}

	resource := &models.Resource{
		Title:       title,
		Description: normalizeOptional(req.Description),
		ExternalURL: normalizeOptional(req.ExternalURL),
		Type:        resourceType,
		SubjectID:   subjectID,
		YearID:      yearID,
		CardColor:   normalizeOptional(req.CardColor),
	}

	if resourceType == models.ResourceTypeCareer {
		career := &models.CareerPosting{
			CompanyName:     normalizeOptional(req.CompanyName),
			Location:        normalizeOptional(req.Location),
			Requirements:    normalizeOptional(req.Requirements),
			SalaryRange:     normalizeOptional(req.SalaryRange),
			ApplicationLink: normalizeOptional(req.ApplicationLink),
		}
		if deadline := normalizeOptional(req.DeadlineDate); deadline != nil {
			parsed, err := dto.ParseDeadline(*deadline)
			if err != nil {
				return nil, apperrors.NewValidationError("deadline_date must be formatted YYYY-MM-DD")
			}
			career.DeadlineDate = &parsed
		}
		resource.Career = career
	}

	return resource, nil
}

// normalizeOptional treats empty and whitespace-only form values as absent.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// parseOptionalInt parses an optional numeric form value, empty meaning absent.
func parseOptionalInt(value string) (*int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseOptionalInt64(value string) (*int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
