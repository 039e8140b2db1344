package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, record *model.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}
