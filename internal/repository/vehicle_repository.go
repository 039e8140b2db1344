package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/utils"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).
		Order("vehicle_id ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, vehicleID string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).First(&vehicle).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// Create inserts a vehicle. The uniqueness checks and the insert run in one
// transaction so concurrent creations cannot both pass the check.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	vehicle.VIN = utils.NormalizeVIN(vehicle.VIN)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if vehicle.VehicleID != "" {
			var count int64
			if err := tx.Model(&model.Vehicle{}).
				Where("vehicle_id = ?", vehicle.VehicleID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrVehicleIDExists
			}
		}

		var count int64
		if err := tx.Model(&model.Vehicle{}).
			Where("vin = ?", vehicle.VIN).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrVINExists
		}

		return tx.Create(vehicle).Error
	})
}

// Update rewrites a vehicle row. The VIN check excludes the row being
// updated, so re-saving a vehicle with its own VIN is not a conflict.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	vehicle.VIN = utils.NormalizeVIN(vehicle.VIN)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Vehicle{}).
			Where("vin = ? AND vehicle_id <> ?", vehicle.VIN, vehicle.VehicleID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrVINExists
		}

		result := tx.Model(&model.Vehicle{}).
			Where("vehicle_id = ?", vehicle.VehicleID).
			Updates(vehicle)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVehicleNotFound
		}
		return nil
	})
}
