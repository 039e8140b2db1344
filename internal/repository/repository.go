package repository

import (
	"context"
	"errors"

	"fleet-service/internal/model"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrVehicleIDExists = errors.New("vehicle id already exists")
	ErrVINExists       = errors.New("vin already exists")

	// ErrStoreUnavailable wraps connectivity failures of the authoritative
	// store so callers can distinguish them from validation conflicts.
	ErrStoreUnavailable = errors.New("vehicle store unavailable")
)

// VehicleStore is the single-owner abstraction over the authoritative
// vehicle collection.
type VehicleStore interface {
	List(ctx context.Context) ([]model.Vehicle, error)
	GetByID(ctx context.Context, vehicleID string) (*model.Vehicle, error)
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
}

type MaintenanceStore interface {
	List(ctx context.Context) ([]model.MaintenanceRecord, error)
	Create(ctx context.Context, record *model.MaintenanceRecord) error
}

type AssignmentStore interface {
	List(ctx context.Context) ([]model.AssignmentHistory, error)
	Create(ctx context.Context, assignment *model.AssignmentHistory) error
}
