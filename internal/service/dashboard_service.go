package service

import (
	"context"
	"time"

	"fleet-service/internal/model"
	"fleet-service/internal/permissions"
	"fleet-service/internal/repository"
	"fleet-service/internal/stats"
)

// DashboardService loads the collections and hands them to the pure
// aggregators in internal/stats. The reference instant is injectable so
// tests can pin it.
type DashboardService struct {
	vehicles    repository.VehicleStore
	maintenance repository.MaintenanceStore
	assignments repository.AssignmentStore
	now         func() time.Time
}

func NewDashboardService(
	vehicles repository.VehicleStore,
	maintenance repository.MaintenanceStore,
	assignments repository.AssignmentStore,
) *DashboardService {
	return &DashboardService{
		vehicles:    vehicles,
		maintenance: maintenance,
		assignments: assignments,
		now:         time.Now,
	}
}

func (s *DashboardService) Stats(ctx context.Context, principal model.Principal) (stats.DashboardStats, error) {
	if !permissions.Resolve(principal.Role).CanView {
		return stats.DashboardStats{}, ErrPermissionDenied
	}

	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return stats.DashboardStats{}, err
	}
	records, err := s.maintenance.List(ctx)
	if err != nil {
		return stats.DashboardStats{}, err
	}

	return stats.Dashboard(vehicles, records, principal.Stored(), s.now()), nil
}

func (s *DashboardService) Activity(ctx context.Context, principal model.Principal) (stats.RecentActivity, error) {
	if !permissions.Resolve(principal.Role).CanView {
		return stats.RecentActivity{}, ErrPermissionDenied
	}

	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return stats.RecentActivity{}, err
	}
	records, err := s.maintenance.List(ctx)
	if err != nil {
		return stats.RecentActivity{}, err
	}
	history, err := s.assignments.List(ctx)
	if err != nil {
		return stats.RecentActivity{}, err
	}

	return stats.Activity(vehicles, records, history, principal.Stored()), nil
}

func (s *DashboardService) Alerts(ctx context.Context, principal model.Principal) ([]stats.MaintenanceAlert, error) {
	if !permissions.Resolve(principal.Role).CanView {
		return nil, ErrPermissionDenied
	}

	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}

	return stats.Alerts(vehicles, principal.Stored(), s.now()), nil
}
