package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentHistory records a driver-vehicle association. A nil
// UnassignedDate means the assignment is still open.
type AssignmentHistory struct {
	ID             string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	VehicleID      string     `gorm:"type:varchar(32);not null;index" json:"vehicleId"`
	DriverName     string     `gorm:"type:varchar(128);not null;index" json:"driverName"`
	AssignedDate   time.Time  `gorm:"type:date;not null" json:"assignedDate"`
	UnassignedDate *time.Time `gorm:"type:date" json:"unassignedDate"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AssignmentHistory) TableName() string {
	return "assignment_history"
}

func (a *AssignmentHistory) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a AssignmentHistory) Open() bool {
	return a.UnassignedDate == nil
}
