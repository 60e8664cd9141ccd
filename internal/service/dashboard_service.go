package service

import (
	"context"

	"github.com/spec-kit/erp-console/internal/domain"
	"github.com/spec-kit/erp-console/internal/repository"
)

// DashboardService produces the aggregate snapshot for the console landing
// page.
type DashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService constructs the service.
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Snapshot(ctx context.Context) (*domain.DashboardSnapshot, error) {
	return s.repo.Snapshot(ctx)
}
