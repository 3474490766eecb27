package services

import (
	"context"
	"fmt"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/models"
)

type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	client *api.Client
}

func NewDashboardService(client *api.Client) DashboardService {
	return &dashboardService{client: client}
}

func (s *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	stats, err := api.Get[models.DashboardStats](ctx, s.client, "/api/admin/dashboard", nil)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("load dashboard: %w", err)
	}
	return stats, nil
}
