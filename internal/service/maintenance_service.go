package service

import (
	"context"

	"fleet-service/internal/model"
	"fleet-service/internal/permissions"
	"fleet-service/internal/repository"
)

// MaintenanceService lists maintenance history; drivers see only records for
// vehicles currently assigned to them.
type MaintenanceService struct {
	vehicles    repository.VehicleStore
	maintenance repository.MaintenanceStore
}

func NewMaintenanceService(vehicles repository.VehicleStore, maintenance repository.MaintenanceStore) *MaintenanceService {
	return &MaintenanceService{vehicles: vehicles, maintenance: maintenance}
}

func (s *MaintenanceService) List(ctx context.Context, principal model.Principal) ([]model.MaintenanceRecord, error) {
	if !permissions.Resolve(principal.Role).CanView {
		return nil, ErrPermissionDenied
	}

	records, err := s.maintenance.List(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsDriver() {
		return records, nil
	}

	ids, err := assignedVehicleIDs(ctx, s.vehicles, principal.Name)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.MaintenanceRecord, 0, len(records))
	for _, r := range records {
		if ids[r.VehicleID] {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func assignedVehicleIDs(ctx context.Context, vehicles repository.VehicleStore, driverName string) (map[string]bool, error) {
	all, err := vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool)
	for _, v := range all {
		if v.AssignedDriver == driverName {
			ids[v.VehicleID] = true
		}
	}
	return ids, nil
}
