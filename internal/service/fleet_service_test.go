package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

var (
	adminPrincipal   = model.Principal{UserID: "1", Username: "admin", Role: model.RoleAdmin, Name: "Admin User"}
	managerPrincipal = model.Principal{UserID: "2", Username: "manager", Role: model.RoleFleetManager, Name: "Fleet Manager"}
	driverPrincipal  = model.Principal{UserID: "3", Username: "driver", Role: model.RoleDriver, Name: "Driver User"}
)

func newFleetService() *FleetService {
	return NewFleetService(repository.NewMemoryVehicleStore(repository.SeedVehicles()), zerolog.Nop())
}

func validInput() VehicleInput {
	return VehicleInput{
		Make:           "Ford",
		Model:          "Maverick",
		Year:           time.Now().Year() - 1,
		VIN:            "3FTTW8E31NRA90123",
		CurrentMileage: 120,
	}
}

func TestFleetServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates with server-assigned id and defaults", func(t *testing.T) {
		svc := newFleetService()
		vehicle, err := svc.Create(ctx, adminPrincipal, validInput())
		require.NoError(t, err)
		assert.Regexp(t, `^VEH-\d+$`, vehicle.VehicleID)
		assert.Equal(t, model.VehicleStatusActive, vehicle.Status)
		assert.Equal(t, model.UnassignedDriver, vehicle.AssignedDriver)
		assert.False(t, vehicle.LastServiceDate.IsZero())
	})

	t.Run("fleet manager may create", func(t *testing.T) {
		svc := newFleetService()
		_, err := svc.Create(ctx, managerPrincipal, validInput())
		assert.NoError(t, err)
	})

	t.Run("driver may not create", func(t *testing.T) {
		svc := newFleetService()
		_, err := svc.Create(ctx, driverPrincipal, validInput())
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("invalid draft reports field errors", func(t *testing.T) {
		svc := newFleetService()
		input := validInput()
		input.Make = ""
		input.VIN = "TOOSHORT"

		_, err := svc.Create(ctx, adminPrincipal, input)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "make")
		assert.Contains(t, verr.Fields, "vin")
	})

	t.Run("duplicate vehicle id conflicts", func(t *testing.T) {
		svc := newFleetService()
		input := validInput()
		input.VehicleID = "VEH-001"
		_, err := svc.Create(ctx, adminPrincipal, input)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("duplicate VIN conflicts", func(t *testing.T) {
		svc := newFleetService()
		input := validInput()
		input.VIN = "1FTEW1EP5KFA10001"
		_, err := svc.Create(ctx, adminPrincipal, input)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown status is invalid input", func(t *testing.T) {
		svc := newFleetService()
		input := validInput()
		input.Status = model.VehicleStatus("Scrapped")
		_, err := svc.Create(ctx, adminPrincipal, input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestFleetServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("edits an existing vehicle in place", func(t *testing.T) {
		svc := newFleetService()
		input := validInput()
		input.CurrentMileage = 54000
		input.Status = model.VehicleStatusMaintenance

		vehicle, err := svc.Update(ctx, managerPrincipal, "VEH-001", input)
		require.NoError(t, err)
		assert.Equal(t, "VEH-001", vehicle.VehicleID)
		assert.Equal(t, float64(54000), vehicle.CurrentMileage)
		assert.Equal(t, model.VehicleStatusMaintenance, vehicle.Status)
	})

	t.Run("stealing another vehicle's VIN conflicts", func(t *testing.T) {
		svc := newFleetService()
		input := validInput()
		input.VIN = "1FTEW1EP5KFA10001" // VEH-001

		_, err := svc.Update(ctx, managerPrincipal, "VEH-002", input)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("keeping the vehicle's own VIN is not a conflict", func(t *testing.T) {
		svc := newFleetService()
		input := validInput()
		input.VIN = "4T1B11HK5LU200022" // VEH-002's own

		_, err := svc.Update(ctx, managerPrincipal, "VEH-002", input)
		assert.NoError(t, err)
	})

	t.Run("unknown vehicle id is not found", func(t *testing.T) {
		svc := newFleetService()
		_, err := svc.Update(ctx, managerPrincipal, "VEH-404", validInput())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("driver may not edit", func(t *testing.T) {
		svc := newFleetService()
		_, err := svc.Update(ctx, driverPrincipal, "VEH-001", validInput())
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestFleetServiceListAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newFleetService()

	vehicles, err := svc.List(ctx, driverPrincipal)
	require.NoError(t, err)
	assert.Len(t, vehicles, len(repository.SeedVehicles()))

	vehicle, err := svc.Get(ctx, driverPrincipal, "VEH-002")
	require.NoError(t, err)
	assert.Equal(t, "Camry", vehicle.Model)

	_, err = svc.Get(ctx, driverPrincipal, "VEH-404")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.List(ctx, model.Principal{})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
