package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scop/resourcehub/internal/pkg/logger"
)

// PageContentRepository handles content page database operations
type PageContentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPageContentRepository creates a new PageContentRepository
func NewPageContentRepository(db *pgxpool.Pool) *PageContentRepository {
	return &PageContentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get returns the stored HTML for a slug. A slug that has never been set
// yields the empty string, not an error.
func (r *PageContentRepository) Get(ctx context.Context, slug string) (string, error) {
	sqlQuery, args, err := r.sb.Select("html").
		From("page_content").
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get page content SQL")
		return "", fmt.Errorf("failed to build get page content query: %w", err)
	}

	var html string
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&html)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error querying page content")
		return "", fmt.Errorf("error querying page content %q: %w", slug, err)
	}

	return html, nil
}

// Upsert stores the HTML blob for a slug, replacing any previous content
func (r *PageContentRepository) Upsert(ctx context.Context, slug, html string) error {
	sqlQuery, args, err := r.sb.Insert("page_content").
		Columns("slug", "html").
		Values(slug, html).
		Suffix("ON CONFLICT (slug) DO UPDATE SET html = EXCLUDED.html, updated_at = now()").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert page content SQL")
		return fmt.Errorf("failed to build upsert page content query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlQuery, args...); err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("Error executing upsert page content query")
		return fmt.Errorf("error upserting page content %q: %w", slug, err)
	}

	logger.Info().Str("slug", slug).Int("htmlLength", len(html)).Msg("Page content saved")
	return nil
}
