package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fleet-service/internal/model"
	"fleet-service/internal/permissions"
	"fleet-service/internal/repository"
	"fleet-service/internal/validation"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries the per-field messages from draft validation so
// the handler can surface every failure, not just the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "vehicle validation failed"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

type FleetService struct {
	vehicles repository.VehicleStore
	log      zerolog.Logger
}

func NewFleetService(vehicles repository.VehicleStore, log zerolog.Logger) *FleetService {
	return &FleetService{vehicles: vehicles, log: log}
}

type VehicleInput struct {
	VehicleID       string
	Make            string
	Model           string
	Year            int
	VIN             string
	Status          model.VehicleStatus
	CurrentMileage  float64
	LastServiceDate time.Time
	AssignedDriver  string
	LicensePlate    string
	Color           string
	PurchaseDate    *time.Time
	FuelType        string
	Transmission    string
	PurchasePrice   *float64
	Notes           string
}

func (in VehicleInput) Draft() validation.VehicleDraft {
	return validation.VehicleDraft{
		Make:           in.Make,
		Model:          in.Model,
		Year:           in.Year,
		VIN:            in.VIN,
		CurrentMileage: in.CurrentMileage,
		PurchasePrice:  in.PurchasePrice,
	}
}

func (s *FleetService) List(ctx context.Context, principal model.Principal) ([]model.Vehicle, error) {
	if !permissions.Resolve(principal.Role).CanView {
		return nil, ErrPermissionDenied
	}
	return s.vehicles.List(ctx)
}

func (s *FleetService) Get(ctx context.Context, principal model.Principal, vehicleID string) (*model.Vehicle, error) {
	if !permissions.Resolve(principal.Role).CanView {
		return nil, ErrPermissionDenied
	}

	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

// Create validates the draft a second time even though the handler already
// did: the authoritative write path never trusts its callers.
func (s *FleetService) Create(ctx context.Context, principal model.Principal, input VehicleInput) (*model.Vehicle, error) {
	if !permissions.Resolve(principal.Role).CanCreate {
		return nil, ErrPermissionDenied
	}

	if result := validation.ValidateVehicleDraft(input.Draft()); !result.Valid {
		return nil, &ValidationError{Fields: result.FieldErrors}
	}

	status := input.Status
	if status == "" {
		status = model.VehicleStatusActive
	}
	if !model.ValidVehicleStatus(status) {
		return nil, fmt.Errorf("%w: unknown vehicle status %q", ErrInvalidInput, input.Status)
	}

	vehicle := &model.Vehicle{
		VehicleID:       strings.TrimSpace(input.VehicleID),
		Make:            strings.TrimSpace(input.Make),
		Model:           strings.TrimSpace(input.Model),
		Year:            input.Year,
		VIN:             input.VIN,
		Status:          status,
		CurrentMileage:  input.CurrentMileage,
		LastServiceDate: input.LastServiceDate,
		AssignedDriver:  input.AssignedDriver,
		LicensePlate:    input.LicensePlate,
		Color:           input.Color,
		PurchaseDate:    input.PurchaseDate,
		FuelType:        input.FuelType,
		Transmission:    input.Transmission,
		PurchasePrice:   input.PurchasePrice,
		Notes:           input.Notes,
	}
	if vehicle.VehicleID == "" {
		vehicle.VehicleID = model.NewVehicleID()
	}
	if vehicle.AssignedDriver == "" {
		vehicle.AssignedDriver = model.UnassignedDriver
	}
	if vehicle.LastServiceDate.IsZero() {
		vehicle.LastServiceDate = time.Now()
	}

	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		switch {
		case errors.Is(err, repository.ErrVehicleIDExists):
			return nil, fmt.Errorf("%w: vehicle ID already exists", ErrConflict)
		case errors.Is(err, repository.ErrVINExists):
			return nil, fmt.Errorf("%w: VIN already exists", ErrConflict)
		case errors.Is(err, repository.ErrStoreUnavailable):
			// The vehicle was kept locally; the caller still learns the
			// authoritative write failed.
			return vehicle, ErrStoreUnavailable
		}
		return nil, err
	}

	s.log.Info().Str("vehicle_id", vehicle.VehicleID).Msg("vehicle created")
	return vehicle, nil
}

func (s *FleetService) Update(ctx context.Context, principal model.Principal, vehicleID string, input VehicleInput) (*model.Vehicle, error) {
	if !permissions.Resolve(principal.Role).CanEdit {
		return nil, ErrPermissionDenied
	}

	existing, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if result := validation.ValidateVehicleDraft(input.Draft()); !result.Valid {
		return nil, &ValidationError{Fields: result.FieldErrors}
	}
	if input.Status != "" && !model.ValidVehicleStatus(input.Status) {
		return nil, fmt.Errorf("%w: unknown vehicle status %q", ErrInvalidInput, input.Status)
	}

	updated := *existing
	updated.Make = strings.TrimSpace(input.Make)
	updated.Model = strings.TrimSpace(input.Model)
	updated.Year = input.Year
	updated.VIN = input.VIN
	updated.CurrentMileage = input.CurrentMileage
	if input.Status != "" {
		updated.Status = input.Status
	}
	if !input.LastServiceDate.IsZero() {
		updated.LastServiceDate = input.LastServiceDate
	}
	if input.AssignedDriver != "" {
		updated.AssignedDriver = input.AssignedDriver
	}
	updated.LicensePlate = input.LicensePlate
	updated.Color = input.Color
	updated.PurchaseDate = input.PurchaseDate
	updated.FuelType = input.FuelType
	updated.Transmission = input.Transmission
	updated.PurchasePrice = input.PurchasePrice
	updated.Notes = input.Notes

	if err := s.vehicles.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrVehicleNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrVINExists):
			return nil, fmt.Errorf("%w: VIN already exists", ErrConflict)
		case errors.Is(err, repository.ErrStoreUnavailable):
			return &updated, ErrStoreUnavailable
		}
		return nil, err
	}

	return &updated, nil
}
