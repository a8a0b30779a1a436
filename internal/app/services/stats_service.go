package services

import (
	"context"
	"time"

	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/pkg/logger"
)

// viewWindow is the rolling window the dashboard view counter covers.
const viewWindow = 30 * 24 * time.Hour

type statsService struct {
	resources ResourceStore
	views     PageViewStore
}

// NewStatsService creates the dashboard stats service
func NewStatsService(resources ResourceStore, views PageViewStore) StatsService {
	return &statsService{
		resources: resources,
		views:     views,
	}
}

// Overview returns the dashboard headline numbers
func (s *statsService) Overview(ctx context.Context) (*dto.StatsResponse, error) {
	total, err := s.resources.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.views.CountSince(ctx, time.Now().Add(-viewWindow))
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalResources: total,
		TotalViews30d:  views,
	}, nil
}

// RecordView notes one public catalog read. A failed insert must never
// break the read path, so errors only reach the log.
func (s *statsService) RecordView(ctx context.Context) {
	if err := s.views.Record(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to record page view")
	}
}
