// Package stats derives dashboard aggregates from in-memory collections.
// Every function is pure: the caller supplies the collections and the
// reference instant, so identical inputs always produce identical output.
package stats

import (
	"sort"
	"time"

	"fleet-service/internal/model"
)

// serviceWindow is the calendar window behind "needs service" and the
// monthly maintenance cost.
const serviceWindow = 30 * 24 * time.Hour

// dueSoonLead is how close to the service deadline a vehicle gets flagged
// as due_soon.
const dueSoonLead = 7

type DashboardStats struct {
	TotalVehicles          int     `json:"totalVehicles"`
	ActiveVehicles         int     `json:"activeVehicles"`
	InMaintenance          int     `json:"inMaintenance"`
	RetiredVehicles        int     `json:"retiredVehicles"`
	VehiclesNeedingService int     `json:"vehiclesNeedingService"`
	TotalFleetMileage      float64 `json:"totalFleetMileage"`
	AverageVehicleAge      float64 `json:"averageVehicleAge"`
	MonthlyMaintenanceCost float64 `json:"monthlyMaintenanceCost"`
}

// MaintenanceEntry is a maintenance record annotated with a human-readable
// vehicle name for the activity feed.
type MaintenanceEntry struct {
	ID          string            `json:"id"`
	VehicleID   string            `json:"vehicleId"`
	Date        time.Time         `json:"date"`
	ServiceType model.ServiceType `json:"serviceType"`
	VehicleName string            `json:"vehicleName"`
}

type AssignmentEntry struct {
	ID             string     `json:"id"`
	VehicleID      string     `json:"vehicleId"`
	DriverName     string     `json:"driverName"`
	AssignedDate   time.Time  `json:"assignedDate"`
	UnassignedDate *time.Time `json:"unassignedDate"`
	VehicleName    string     `json:"vehicleName"`
}

type RecentActivity struct {
	RecentVehicles    []model.Vehicle    `json:"recentVehicles"`
	RecentMaintenance []MaintenanceEntry `json:"recentMaintenance"`
	RecentAssignments []AssignmentEntry  `json:"recentAssignments"`
}

type AlertStatus string

const (
	AlertOverdue AlertStatus = "overdue"
	AlertDueSoon AlertStatus = "due_soon"
)

type MaintenanceAlert struct {
	VehicleID        string      `json:"vehicleId"`
	VehicleName      string      `json:"vehicleName"`
	LastServiceDate  time.Time   `json:"lastServiceDate"`
	DaysSinceService int         `json:"daysSinceService"`
	Status           AlertStatus `json:"status"`
}

// filterVehicles applies the role-based view: drivers see only vehicles
// assigned to them by exact name match, everyone else sees the whole fleet.
func filterVehicles(vehicles []model.Vehicle, user model.StoredUser) []model.Vehicle {
	if user.Role != model.RoleDriver {
		return vehicles
	}
	filtered := make([]model.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.AssignedDriver == user.Name {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func vehicleIDSet(vehicles []model.Vehicle) map[string]bool {
	ids := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		ids[v.VehicleID] = true
	}
	return ids
}

// Dashboard computes the headline counters over the role-filtered fleet.
// now is the reference instant for the 30-day windows and the age average.
func Dashboard(vehicles []model.Vehicle, records []model.MaintenanceRecord, user model.StoredUser, now time.Time) DashboardStats {
	filtered := filterVehicles(vehicles, user)
	windowStart := now.Add(-serviceWindow)

	out := DashboardStats{TotalVehicles: len(filtered)}

	totalAge := 0
	for _, v := range filtered {
		switch v.Status {
		case model.VehicleStatusActive:
			out.ActiveVehicles++
		case model.VehicleStatusMaintenance:
			out.InMaintenance++
		case model.VehicleStatusRetired:
			out.RetiredVehicles++
		}
		if v.Status == model.VehicleStatusActive && v.LastServiceDate.Before(windowStart) {
			out.VehiclesNeedingService++
		}
		out.TotalFleetMileage += v.CurrentMileage
		totalAge += now.Year() - v.Year
	}

	if len(filtered) > 0 {
		out.AverageVehicleAge = float64(totalAge) / float64(len(filtered))
	}

	ids := vehicleIDSet(filtered)
	for _, r := range records {
		if !ids[r.VehicleID] {
			continue
		}
		// Window is inclusive on both ends.
		if r.Date.Before(windowStart) || r.Date.After(now) {
			continue
		}
		out.MonthlyMaintenanceCost += r.Cost
	}

	return out
}

// Activity builds the three recent-activity feeds, each truncated to the
// five most recent entries. All sorts are stable so equal dates keep the
// source order.
func Activity(vehicles []model.Vehicle, records []model.MaintenanceRecord, history []model.AssignmentHistory, user model.StoredUser) RecentActivity {
	filtered := filterVehicles(vehicles, user)
	ids := vehicleIDSet(filtered)

	recentVehicles := make([]model.Vehicle, len(filtered))
	copy(recentVehicles, filtered)
	sort.SliceStable(recentVehicles, func(i, j int) bool {
		return recentVehicles[i].VehicleID > recentVehicles[j].VehicleID
	})
	recentVehicles = truncate(recentVehicles)

	nameByID := make(map[string]string, len(filtered))
	for _, v := range filtered {
		nameByID[v.VehicleID] = v.DisplayName()
	}

	var maintenance []MaintenanceEntry
	for _, r := range records {
		if !ids[r.VehicleID] {
			continue
		}
		name, ok := nameByID[r.VehicleID]
		if !ok {
			// Referential gap: fall back to the raw id.
			name = r.VehicleID
		}
		maintenance = append(maintenance, MaintenanceEntry{
			ID:          r.ID,
			VehicleID:   r.VehicleID,
			Date:        r.Date,
			ServiceType: r.ServiceType,
			VehicleName: name,
		})
	}
	sort.SliceStable(maintenance, func(i, j int) bool {
		return maintenance[i].Date.After(maintenance[j].Date)
	})
	maintenance = truncate(maintenance)

	var assignments []AssignmentEntry
	for _, v := range filtered {
		for _, a := range history {
			if a.VehicleID != v.VehicleID {
				continue
			}
			if user.Role == model.RoleDriver && a.DriverName != user.Name {
				continue
			}
			assignments = append(assignments, AssignmentEntry{
				ID:             a.ID,
				VehicleID:      a.VehicleID,
				DriverName:     a.DriverName,
				AssignedDate:   a.AssignedDate,
				UnassignedDate: a.UnassignedDate,
				VehicleName:    v.DisplayName(),
			})
		}
	}
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].AssignedDate.After(assignments[j].AssignedDate)
	})
	assignments = truncate(assignments)

	return RecentActivity{
		RecentVehicles:    recentVehicles,
		RecentMaintenance: maintenance,
		RecentAssignments: assignments,
	}
}

// Alerts flags active vehicles approaching or past the 30-day service
// window, most overdue first.
func Alerts(vehicles []model.Vehicle, user model.StoredUser, now time.Time) []MaintenanceAlert {
	filtered := filterVehicles(vehicles, user)

	var alerts []MaintenanceAlert
	for _, v := range filtered {
		if v.Status != model.VehicleStatusActive {
			continue
		}
		days := int(now.Sub(v.LastServiceDate).Hours() / 24)
		alert := MaintenanceAlert{
			VehicleID:        v.VehicleID,
			VehicleName:      v.DisplayName(),
			LastServiceDate:  v.LastServiceDate,
			DaysSinceService: days,
		}
		switch {
		case days > 30:
			alert.Status = AlertOverdue
		case days >= 30-dueSoonLead:
			alert.Status = AlertDueSoon
		default:
			continue
		}
		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysSinceService > alerts[j].DaysSinceService
	})
	return alerts
}

func truncate[T any](entries []T) []T {
	if len(entries) > 5 {
		return entries[:5]
	}
	return entries
}
