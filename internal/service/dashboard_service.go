package service

import (
	"context"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/workflow"
)

type PipelineStats struct {
	ByStatus   map[string]int64        `json:"byStatus"`
	Total      int64                   `json:"total"`
	Engagement models.EngagementTotals `json:"engagement"`
}

type DashboardStats struct {
	Contents PipelineStats `json:"contents"`
	Videos   PipelineStats `json:"videos"`
}

type DashboardService interface {
	Stats(ctx context.Context, projectID string) (*DashboardStats, error)
}

type dashboardService struct {
	c repository.ContentRepository
	v repository.VideoRepository
}

func NewDashboardService(c repository.ContentRepository, v repository.VideoRepository) DashboardService {
	return &dashboardService{c: c, v: v}
}

func (s *dashboardService) Stats(ctx context.Context, projectID string) (*DashboardStats, error) {
	contentCounts, err := s.c.CountByStatus(ctx, projectID)
	if err != nil {
		return nil, err
	}
	contentTotals, err := s.c.EngagementTotals(ctx, projectID)
	if err != nil {
		return nil, err
	}
	videoCounts, err := s.v.CountByStatus(ctx, projectID)
	if err != nil {
		return nil, err
	}
	videoTotals, err := s.v.EngagementTotals(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Contents: pipeline(contentCounts, contentTotals),
		Videos:   pipeline(videoCounts, videoTotals),
	}, nil
}

// pipeline reports every lifecycle status, zero when no row has it.
func pipeline(counts []models.StatusCount, totals *models.EngagementTotals) PipelineStats {
	stats := PipelineStats{ByStatus: map[string]int64{}}
	for _, status := range workflow.Statuses() {
		stats.ByStatus[status] = 0
	}
	for _, c := range counts {
		stats.ByStatus[c.Status] += c.Count
		stats.Total += c.Count
	}
	if totals != nil {
		stats.Engagement = *totals
	}
	return stats
}
