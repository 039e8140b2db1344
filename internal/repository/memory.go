package repository

import (
	"context"
	"sync"
	"time"

	"fleet-service/internal/model"
	"fleet-service/internal/utils"
)

// MemoryVehicleStore keeps the vehicle collection in process memory behind a
// single mutex, which makes the uniqueness check and insert atomic the same
// way the transactional store does. It serves as the whole store when no
// database is configured and as the degraded read source otherwise.
type MemoryVehicleStore struct {
	mu       sync.RWMutex
	vehicles []model.Vehicle
}

func NewMemoryVehicleStore(seed []model.Vehicle) *MemoryVehicleStore {
	vehicles := make([]model.Vehicle, len(seed))
	copy(vehicles, seed)
	return &MemoryVehicleStore{vehicles: vehicles}
}

func (s *MemoryVehicleStore) List(ctx context.Context) ([]model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

func (s *MemoryVehicleStore) GetByID(ctx context.Context, vehicleID string) (*model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vehicles {
		if v.VehicleID == vehicleID {
			found := v
			return &found, nil
		}
	}
	return nil, ErrVehicleNotFound
}

func (s *MemoryVehicleStore) Create(ctx context.Context, vehicle *model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vehicle.VehicleID == "" {
		vehicle.VehicleID = model.NewVehicleID()
	}
	vehicle.VIN = utils.NormalizeVIN(vehicle.VIN)
	if vehicle.AssignedDriver == "" {
		vehicle.AssignedDriver = model.UnassignedDriver
	}
	if vehicle.LastServiceDate.IsZero() {
		vehicle.LastServiceDate = time.Now()
	}

	for _, v := range s.vehicles {
		if v.VehicleID == vehicle.VehicleID {
			return ErrVehicleIDExists
		}
		if v.VIN == vehicle.VIN {
			return ErrVINExists
		}
	}

	s.vehicles = append(s.vehicles, *vehicle)
	return nil
}

func (s *MemoryVehicleStore) Update(ctx context.Context, vehicle *model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle.VIN = utils.NormalizeVIN(vehicle.VIN)
	for _, v := range s.vehicles {
		if v.VehicleID != vehicle.VehicleID && v.VIN == vehicle.VIN {
			return ErrVINExists
		}
	}
	for i, v := range s.vehicles {
		if v.VehicleID == vehicle.VehicleID {
			s.vehicles[i] = *vehicle
			return nil
		}
	}
	return ErrVehicleNotFound
}

type MemoryMaintenanceStore struct {
	mu      sync.RWMutex
	records []model.MaintenanceRecord
}

func NewMemoryMaintenanceStore(seed []model.MaintenanceRecord) *MemoryMaintenanceStore {
	records := make([]model.MaintenanceRecord, len(seed))
	copy(records, seed)
	return &MemoryMaintenanceStore{records: records}
}

func (s *MemoryMaintenanceStore) List(ctx context.Context) ([]model.MaintenanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MaintenanceRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryMaintenanceStore) Create(ctx context.Context, record *model.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, *record)
	return nil
}

type MemoryAssignmentStore struct {
	mu          sync.RWMutex
	assignments []model.AssignmentHistory
}

func NewMemoryAssignmentStore(seed []model.AssignmentHistory) *MemoryAssignmentStore {
	assignments := make([]model.AssignmentHistory, len(seed))
	copy(assignments, seed)
	return &MemoryAssignmentStore{assignments: assignments}
}

func (s *MemoryAssignmentStore) List(ctx context.Context) ([]model.AssignmentHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.AssignmentHistory, len(s.assignments))
	copy(out, s.assignments)
	return out, nil
}

// Create mirrors the transactional store: open rows for the vehicle are
// closed before the new one is appended.
func (s *MemoryAssignmentStore) Create(ctx context.Context, assignment *model.AssignmentHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	closeDate := assignment.AssignedDate
	if closeDate.IsZero() {
		closeDate = time.Now()
	}
	for i := range s.assignments {
		if s.assignments[i].VehicleID == assignment.VehicleID && s.assignments[i].UnassignedDate == nil {
			d := closeDate
			s.assignments[i].UnassignedDate = &d
		}
	}

	s.assignments = append(s.assignments, *assignment)
	return nil
}
