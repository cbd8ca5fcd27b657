package services

import (
	"context"
	"fmt"

	"github.com/smartuniversity/campusctl/internal/client/api"
	"github.com/smartuniversity/campusctl/internal/client/models"
)

// DashboardService reads live campus telemetry.
type DashboardService interface {
	Sensors(ctx context.Context) ([]models.Sensor, error)
	Shuttles(ctx context.Context) ([]models.Shuttle, error)
}

type dashboardService struct {
	api *api.Client
}

func NewDashboardService(client *api.Client) DashboardService {
	return &dashboardService{api: client}
}

func (d *dashboardService) Sensors(ctx context.Context) ([]models.Sensor, error) {
	var sensors []models.Sensor
	if err := d.api.Get(ctx, "/dashboard/sensors", &sensors); err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	return sensors, nil
}

func (d *dashboardService) Shuttles(ctx context.Context) ([]models.Shuttle, error) {
	var shuttles []models.Shuttle
	if err := d.api.Get(ctx, "/dashboard/shuttles", &shuttles); err != nil {
		return nil, fmt.Errorf("list shuttles: %w", err)
	}
	return shuttles, nil
}
