package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/pkg/logger"
)

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByYear retrieves all subjects for an academic year, ordered by name
func (r *SubjectRepository) GetByYear(ctx context.Context, yearID int) ([]models.Subject, error) {
	sqlQuery, args, err := r.sb.Select("id", "name", "year_id").
		From("subjects").
		Where(squirrel.Eq{"year_id": yearID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subjects by year SQL")
		return nil, fmt.Errorf("failed to build get subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int("yearID", yearID).Msg("Error executing get subjects query")
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.YearID); err != nil {
			logger.Error().Err(err).Msg("Error scanning subject row")
			return nil, fmt.Errorf("failed to scan subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating subject rows")
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// CreateIfAbsent inserts a subject unless one with the same name and year
// already exists. Used by the startup seed; idempotent.
func (r *SubjectRepository) CreateIfAbsent(ctx context.Context, subject *models.Subject) error {
	sqlQuery, args, err := r.sb.Insert("subjects").
		Columns("name", "year_id").
		Values(subject.Name, subject.YearID).
		Suffix("ON CONFLICT (name, year_id) DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create subject SQL")
		return fmt.Errorf("failed to build create subject query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlQuery, args...); err != nil {
		logger.Error().Err(err).Str("name", subject.Name).Int("yearID", subject.YearID).Msg("Error executing create subject query")
		return fmt.Errorf("error inserting subject: %w", err)
	}

	return nil
}
