package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"fleet-service/internal/model"
)

// FallbackVehicleStore owns the fallback-vs-authoritative decision in one
// place. Reads come from the primary store when it answers and from the
// seeded fallback when it does not; vehicles created while the primary was
// unreachable live in the local store and are merged into every read. The
// merge rule: the authoritative row wins on a vehicleId collision.
type FallbackVehicleStore struct {
	primary  VehicleStore
	fallback *MemoryVehicleStore
	local    *MemoryVehicleStore
	log      zerolog.Logger
}

func NewFallbackVehicleStore(primary VehicleStore, fallback *MemoryVehicleStore, log zerolog.Logger) *FallbackVehicleStore {
	return &FallbackVehicleStore{
		primary:  primary,
		fallback: fallback,
		local:    NewMemoryVehicleStore(nil),
		log:      log,
	}
}

func (s *FallbackVehicleStore) List(ctx context.Context) ([]model.Vehicle, error) {
	authoritative, err := s.primary.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("vehicle store unreachable, serving fallback data")
		authoritative, _ = s.fallback.List(ctx)
	}

	locals, _ := s.local.List(ctx)
	return mergeVehicles(authoritative, locals), nil
}

func (s *FallbackVehicleStore) GetByID(ctx context.Context, vehicleID string) (*model.Vehicle, error) {
	vehicles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		if v.VehicleID == vehicleID {
			found := v
			return &found, nil
		}
	}
	return nil, ErrVehicleNotFound
}

// Create writes to the primary store. When the primary is unreachable the
// vehicle is kept in the local list so reads still see it, but the failure
// is surfaced rather than swallowed.
func (s *FallbackVehicleStore) Create(ctx context.Context, vehicle *model.Vehicle) error {
	err := s.primary.Create(ctx, vehicle)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrVehicleIDExists) || errors.Is(err, ErrVINExists) {
		return err
	}

	s.log.Warn().Err(err).Str("vehicle_id", vehicle.VehicleID).
		Msg("vehicle store unreachable, keeping vehicle in local list")
	if localErr := s.local.Create(ctx, vehicle); localErr != nil {
		return localErr
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func (s *FallbackVehicleStore) Update(ctx context.Context, vehicle *model.Vehicle) error {
	err := s.primary.Update(ctx, vehicle)
	if err == nil || errors.Is(err, ErrVehicleNotFound) || errors.Is(err, ErrVINExists) {
		return err
	}

	// Locally created vehicles stay editable while the primary is down, but
	// the write failure is still surfaced to the caller.
	_ = s.local.Update(ctx, vehicle)
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func mergeVehicles(authoritative, locals []model.Vehicle) []model.Vehicle {
	merged := make([]model.Vehicle, len(authoritative), len(authoritative)+len(locals))
	copy(merged, authoritative)

	seen := make(map[string]bool, len(authoritative))
	for _, v := range authoritative {
		seen[v.VehicleID] = true
	}
	for _, v := range locals {
		if !seen[v.VehicleID] {
			merged = append(merged, v)
		}
	}
	return merged
}
