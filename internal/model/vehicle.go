package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "Active"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
	VehicleStatusRetired     VehicleStatus = "Retired"
)

// UnassignedDriver is the sentinel value for a vehicle with no current driver.
const UnassignedDriver = "Unassigned"

type Vehicle struct {
	VehicleID       string        `gorm:"type:varchar(32);primaryKey" json:"vehicleId"`
	Make            string        `gorm:"type:varchar(64);not null" json:"make"`
	Model           string        `gorm:"type:varchar(64);not null" json:"model"`
	Year            int           `gorm:"not null" json:"year"`
	VIN             string        `gorm:"type:varchar(17);uniqueIndex;not null" json:"vin"`
	Status          VehicleStatus `gorm:"type:vehicle_status;not null;default:Active" json:"status"`
	CurrentMileage  float64       `gorm:"not null;default:0" json:"currentMileage"`
	LastServiceDate time.Time     `gorm:"type:date;not null" json:"lastServiceDate"`
	AssignedDriver  string        `gorm:"type:varchar(128);not null;default:Unassigned" json:"assignedDriver"`
	LicensePlate    string        `gorm:"type:varchar(16)" json:"licensePlate,omitempty"`
	Color           string        `gorm:"type:varchar(32)" json:"color,omitempty"`
	PurchaseDate    *time.Time    `gorm:"type:date" json:"purchaseDate,omitempty"`
	FuelType        string        `gorm:"type:varchar(32)" json:"fuelType,omitempty"`
	Transmission    string        `gorm:"type:varchar(32)" json:"transmission,omitempty"`
	PurchasePrice   *float64      `json:"purchasePrice,omitempty"`
	Notes           string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.VehicleID == "" {
		v.VehicleID = NewVehicleID()
	}
	if v.AssignedDriver == "" {
		v.AssignedDriver = UnassignedDriver
	}
	return nil
}

// DisplayName is the human-readable vehicle label used in activity feeds.
func (v Vehicle) DisplayName() string {
	return v.Make + " " + v.Model
}

// NewVehicleID produces a time-based identifier for vehicles created without
// an explicit id.
func NewVehicleID() string {
	return fmt.Sprintf("VEH-%d", time.Now().UnixMilli())
}

func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleStatusActive, VehicleStatusMaintenance, VehicleStatusRetired:
		return true
	}
	return false
}
