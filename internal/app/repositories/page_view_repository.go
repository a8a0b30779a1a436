package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scop/resourcehub/internal/pkg/logger"
)

// PageViewRepository records public catalog reads for the dashboard stats
type PageViewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPageViewRepository creates a new PageViewRepository
func NewPageViewRepository(db *pgxpool.Pool) *PageViewRepository {
	return &PageViewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Record inserts a single view event
func (r *PageViewRepository) Record(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `INSERT INTO page_views DEFAULT VALUES`); err != nil {
		return fmt.Errorf("error recording page view: %w", err)
	}
	return nil
}

// CountSince returns the number of view events recorded at or after since
func (r *PageViewRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	sqlQuery, args, err := r.sb.Select("COUNT(*)").
		From("page_views").
		Where(squirrel.GtOrEq{"occurred_at": since}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count page views SQL")
		return 0, fmt.Errorf("failed to build count page views query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting page views")
		return 0, fmt.Errorf("failed to count page views: %w", err)
	}
	return total, nil
}
