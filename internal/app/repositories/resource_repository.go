package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
	"github.com/scop/resourcehub/internal/pkg/logger"
)

// ResourceFilter narrows a resource listing. Nil fields are not applied.
// Year filtering matches the resource's own year_id column directly; it never
// goes transitively through the subject's year.
type ResourceFilter struct {
	YearID       *int
	SubjectID    *int64
	ResourceType *models.ResourceType
}

// ResourceRepository handles catalog entry database operations
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// resourceRow mirrors the flat storage row, one column per field. The
// translation to the variant model happens in toModel.
type resourceRow struct {
	ID              int64
	Title           string
	Description     *string
	ExternalURL     *string
	FilePath        *string
	ThumbnailPath   *string
	Type            string
	SubjectID       *int64
	YearID          *int
	CardColor       *string
	CompanyName     *string
	Location        *string
	DeadlineDate    *time.Time
	Requirements    *string
	SalaryRange     *string
	ApplicationLink *string
	UploadedAt      time.Time
	SubjectName     *string
}

// toModel expands a flat row into a Resource, attaching the career variant
// only for career rows and deriving the year display name.
func (row *resourceRow) toModel() models.Resource {
	resource := models.Resource{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		ExternalURL:   row.ExternalURL,
		FilePath:      row.FilePath,
		ThumbnailPath: row.ThumbnailPath,
		Type:          models.ResourceType(row.Type),
		SubjectID:     row.SubjectID,
		YearID:        row.YearID,
		CardColor:     row.CardColor,
		UploadedAt:    row.UploadedAt,
		SubjectName:   row.SubjectName,
	}

	if resource.Type == models.ResourceTypeCareer {
		resource.Career = &models.CareerPosting{
			CompanyName:     row.CompanyName,
			Location:        row.Location,
			DeadlineDate:    row.DeadlineDate,
			Requirements:    row.Requirements,
			SalaryRange:     row.SalaryRange,
			ApplicationLink: row.ApplicationLink,
		}
	}

	if row.YearID != nil {
		if name := models.YearName(*row.YearID); name != "" {
			resource.YearName = &name
		}
	}

	return resource
}

// flattenCareer returns the career columns for an insert. All columns are
// nil for non-career resources.
func flattenCareer(resource *models.Resource) (companyName, location *string, deadlineDate *time.Time, requirements, salaryRange, applicationLink *string) {
	if resource.Career == nil {
		return nil, nil, nil, nil, nil, nil
	}
	c := resource.Career
	return c.CompanyName, c.Location, c.DeadlineDate, c.Requirements, c.SalaryRange, c.ApplicationLink
}

var resourceColumns = []string{
	"r.id", "r.title", "r.description", "r.external_url", "r.file_path",
	"r.thumbnail_path", "r.resource_type", "r.subject_id", "r.year_id",
	"r.card_color", "r.company_name", "r.location", "r.deadline_date",
	"r.requirements", "r.salary_range", "r.application_link", "r.uploaded_at",
	"s.name as subject_name",
}

func scanResourceRow(rows pgx.Rows) (*resourceRow, error) {
	var row resourceRow
	err := rows.Scan(
		&row.ID, &row.Title, &row.Description, &row.ExternalURL, &row.FilePath,
		&row.ThumbnailPath, &row.Type, &row.SubjectID, &row.YearID,
		&row.CardColor, &row.CompanyName, &row.Location, &row.DeadlineDate,
		&row.Requirements, &row.SalaryRange, &row.ApplicationLink, &row.UploadedAt,
		&row.SubjectName,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// listQuery builds the filtered listing SQL. Year filtering applies to the
// resource's own year_id column; the joined subject's year is never part of
// the condition.
func (r *ResourceRepository) listQuery(filter ResourceFilter) (string, []interface{}, error) {
	baseSelect := r.sb.Select(resourceColumns...).
		From("resources r").
		LeftJoin("subjects s ON r.subject_id = s.id")

	whereCondition := squirrel.And{}
	if filter.YearID != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"r.year_id": *filter.YearID})
	}
	if filter.SubjectID != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"r.subject_id": *filter.SubjectID})
	}
	if filter.ResourceType != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"r.resource_type": string(*filter.ResourceType)})
	}
	if len(whereCondition) > 0 {
		baseSelect = baseSelect.Where(whereCondition)
	}

	return baseSelect.OrderBy("r.uploaded_at DESC", "r.id DESC").ToSql()
}

// List retrieves resources matching all provided filters, newest first,
// joined with the subject name for display.
func (r *ResourceRepository) List(ctx context.Context, filter ResourceFilter) ([]models.Resource, error) {
	sqlQuery, args, err := r.listQuery(filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building list resources SQL")
		return nil, fmt.Errorf("failed to build list resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list resources query")
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		row, err := scanResourceRow(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning resource row")
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, row.toModel())
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating resource rows")
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, nil
}

// Create inserts a new catalog entry and returns its id
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) (int64, error) {
	companyName, location, deadlineDate, requirements, salaryRange, applicationLink := flattenCareer(resource)

	sqlQuery, args, err := r.sb.Insert("resources").
		Columns(
			"title", "description", "external_url", "file_path", "thumbnail_path",
			"resource_type", "subject_id", "year_id", "card_color",
			"company_name", "location", "deadline_date", "requirements",
			"salary_range", "application_link",
		).
		Values(
			resource.Title, resource.Description, resource.ExternalURL,
			resource.FilePath, resource.ThumbnailPath, string(resource.Type),
			resource.SubjectID, resource.YearID, resource.CardColor,
			companyName, location, deadlineDate, requirements,
			salaryRange, applicationLink,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create resource SQL")
		return 0, fmt.Errorf("failed to build create resource query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create resource query")
		return 0, fmt.Errorf("error inserting resource: %w", err)
	}

	logger.Info().Int64("resourceID", id).Str("resourceType", string(resource.Type)).Msg("Resource created successfully")
	return id, nil
}

// Delete removes a catalog entry by id and returns any file paths the row
// still referenced, so the caller can surface the orphaned files.
func (r *ResourceRepository) Delete(ctx context.Context, id int64) (filePath, thumbnailPath *string, err error) {
	sqlQuery, args, err := r.sb.Delete("resources").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING file_path, thumbnail_path").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error building delete resource SQL")
		return nil, nil, fmt.Errorf("failed to build delete resource query: %w", err)
	}

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&filePath, &thumbnailPath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Int64("resourceID", id).Msg("Attempted to delete non-existent resource")
			return nil, nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error executing delete resource query")
		return nil, nil, fmt.Errorf("error deleting resource ID=%d: %w", id, err)
	}

	logger.Info().Int64("resourceID", id).Msg("Resource deleted successfully")
	return filePath, thumbnailPath, nil
}

// CountAll returns the total number of catalog entries
func (r *ResourceRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resources`).Scan(&total)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting resources")
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return total, nil
}
