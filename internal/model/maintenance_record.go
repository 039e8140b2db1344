package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeOilChange          ServiceType = "Oil Change"
	ServiceTypeTireReplacement    ServiceType = "Tire Replacement"
	ServiceTypeBrakeService       ServiceType = "Brake Service"
	ServiceTypeEngineRepair       ServiceType = "Engine Repair"
	ServiceTypeInspection         ServiceType = "Inspection"
	ServiceTypeGeneralMaintenance ServiceType = "General Maintenance"
	ServiceTypeBatteryReplacement ServiceType = "Battery Replacement"
)

func ValidServiceType(s ServiceType) bool {
	switch s {
	case ServiceTypeOilChange, ServiceTypeTireReplacement, ServiceTypeBrakeService,
		ServiceTypeEngineRepair, ServiceTypeInspection, ServiceTypeGeneralMaintenance,
		ServiceTypeBatteryReplacement:
		return true
	}
	return false
}

// MaintenanceRecord is an immutable historical fact once recorded.
type MaintenanceRecord struct {
	ID              string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	VehicleID       string      `gorm:"type:varchar(32);not null;index" json:"vehicleId"`
	Date            time.Time   `gorm:"type:date;not null" json:"date"`
	ServiceType     ServiceType `gorm:"type:varchar(32);not null" json:"serviceType"`
	Cost            float64     `gorm:"not null;default:0" json:"cost"`
	Mileage         float64     `gorm:"not null;default:0" json:"mileage"`
	TechnicianNotes string      `gorm:"type:text" json:"technicianNotes"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

func (r *MaintenanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
