package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) List(ctx context.Context) ([]model.AssignmentHistory, error) {
	var history []model.AssignmentHistory
	err := r.db.WithContext(ctx).
		Order("assigned_date DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// Create records a new assignment. Any still-open row for the vehicle is
// closed first, so a vehicle converges to at most one open assignment
// without rejecting historical data that predates the rule.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *model.AssignmentHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		closeDate := assignment.AssignedDate
		if closeDate.IsZero() {
			closeDate = time.Now()
		}

		err := tx.Model(&model.AssignmentHistory{}).
			Where("vehicle_id = ? AND unassigned_date IS NULL", assignment.VehicleID).
			Update("unassigned_date", closeDate).Error
		if err != nil {
			return err
		}

		return tx.Create(assignment).Error
	})
}
