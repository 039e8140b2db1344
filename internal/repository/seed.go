package repository

import (
	"time"

	"fleet-service/internal/model"
)

// Demo fleet used when no database is configured and as the degraded read
// source when the database is unreachable.

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptrDate(year int, month time.Month, day int) *time.Time {
	d := seedDate(year, month, day)
	return &d
}

func SeedVehicles() []model.Vehicle {
	return []model.Vehicle{
		{
			VehicleID: "VEH-001", Make: "Ford", Model: "F-150", Year: 2019,
			VIN: "1FTEW1EP5KFA10001", Status: model.VehicleStatusActive,
			CurrentMileage: 52100, LastServiceDate: seedDate(2024, 8, 11),
			AssignedDriver: model.UnassignedDriver,
		},
		{
			VehicleID: "VEH-002", Make: "Toyota", Model: "Camry", Year: 2020,
			VIN: "4T1B11HK5LU200022", Status: model.VehicleStatusActive,
			CurrentMileage: 38450, LastServiceDate: seedDate(2024, 9, 2),
			AssignedDriver: "Sarah Lee",
		},
		{
			VehicleID: "VEH-003", Make: "Chevrolet", Model: "Silverado", Year: 2018,
			VIN: "3GCUKREC5JG300033", Status: model.VehicleStatusMaintenance,
			CurrentMileage: 76210, LastServiceDate: seedDate(2024, 11, 20),
			AssignedDriver: model.UnassignedDriver,
		},
		{
			VehicleID: "VEH-004", Make: "Honda", Model: "CR-V", Year: 2022,
			VIN: "2HKRW2H85NH400044", Status: model.VehicleStatusActive,
			CurrentMileage: 16320, LastServiceDate: seedDate(2024, 12, 15),
			AssignedDriver: "Driver User",
		},
		{
			VehicleID: "VEH-005", Make: "Ford", Model: "Transit", Year: 2019,
			VIN: "1FBAX2CM5KKA50055", Status: model.VehicleStatusActive,
			CurrentMileage: 45890, LastServiceDate: seedDate(2024, 10, 13),
			AssignedDriver: "Driver User",
		},
		{
			VehicleID: "VEH-006", Make: "Ram", Model: "1500", Year: 2016,
			VIN: "1C6RR7GT4GS600066", Status: model.VehicleStatusActive,
			CurrentMileage: 118640, LastServiceDate: seedDate(2024, 10, 27),
			AssignedDriver: "Driver User",
		},
		{
			VehicleID: "VEH-007", Make: "Toyota", Model: "Corolla", Year: 2021,
			VIN: "5YFEPMAE3MP700077", Status: model.VehicleStatusActive,
			CurrentMileage: 37120, LastServiceDate: seedDate(2024, 10, 18),
			AssignedDriver: "Driver User",
		},
		{
			VehicleID: "VEH-008", Make: "Nissan", Model: "Frontier", Year: 2017,
			VIN: "1N6AD0EV8HN800088", Status: model.VehicleStatusRetired,
			CurrentMileage: 86400, LastServiceDate: seedDate(2024, 1, 9),
			AssignedDriver: model.UnassignedDriver,
		},
	}
}

func SeedMaintenanceRecords() []model.MaintenanceRecord {
	return []model.MaintenanceRecord{
		{
			ID: "MNT-001", VehicleID: "VEH-001", Date: seedDate(2024, 8, 11),
			ServiceType: model.ServiceTypeOilChange, Cost: 89.99, Mileage: 50882,
			TechnicianNotes: "Standard oil change, filter replaced. All systems checked.",
		},
		{
			ID: "MNT-002", VehicleID: "VEH-001", Date: seedDate(2024, 6, 15),
			ServiceType: model.ServiceTypeTireReplacement, Cost: 450.00, Mileage: 48500,
			TechnicianNotes: "Replaced all 4 tires. Alignment checked and adjusted.",
		},
		{
			ID: "MNT-003", VehicleID: "VEH-001", Date: seedDate(2024, 4, 20),
			ServiceType: model.ServiceTypeBrakeService, Cost: 320.50, Mileage: 46000,
			TechnicianNotes: "Front brake pads and rotors replaced. Rear brakes inspected - good condition.",
		},
		{
			ID: "MNT-004", VehicleID: "VEH-001", Date: seedDate(2024, 2, 10),
			ServiceType: model.ServiceTypeInspection, Cost: 75.00, Mileage: 43200,
			TechnicianNotes: "Annual inspection completed. All systems passed.",
		},
		{
			ID: "MNT-005", VehicleID: "VEH-004", Date: seedDate(2024, 12, 15),
			ServiceType: model.ServiceTypeOilChange, Cost: 89.99, Mileage: 15892,
			TechnicianNotes: "Oil change completed. Air filter replaced.",
		},
		{
			ID: "MNT-006", VehicleID: "VEH-004", Date: seedDate(2024, 10, 1),
			ServiceType: model.ServiceTypeGeneralMaintenance, Cost: 150.00, Mileage: 12000,
			TechnicianNotes: "Fluid levels checked, belts inspected. All good.",
		},
		{
			ID: "MNT-007", VehicleID: "VEH-005", Date: seedDate(2024, 10, 13),
			ServiceType: model.ServiceTypeOilChange, Cost: 89.99, Mileage: 44236,
			TechnicianNotes: "Standard service completed.",
		},
		{
			ID: "MNT-008", VehicleID: "VEH-006", Date: seedDate(2024, 10, 27),
			ServiceType: model.ServiceTypeBatteryReplacement, Cost: 180.00, Mileage: 117258,
			TechnicianNotes: "Battery replaced. Charging system tested - working properly.",
		},
		{
			ID: "MNT-009", VehicleID: "VEH-007", Date: seedDate(2024, 10, 18),
			ServiceType: model.ServiceTypeEngineRepair, Cost: 850.00, Mileage: 36380,
			TechnicianNotes: "Engine diagnostic performed. Replaced spark plugs and ignition coils.",
		},
		{
			ID: "MNT-010", VehicleID: "VEH-008", Date: seedDate(2024, 1, 9),
			ServiceType: model.ServiceTypeOilChange, Cost: 89.99, Mileage: 85917,
			TechnicianNotes: "Oil change and inspection completed.",
		},
	}
}

func SeedAssignmentHistory() []model.AssignmentHistory {
	return []model.AssignmentHistory{
		{
			ID: "ASG-001", VehicleID: "VEH-001", DriverName: "John Smith",
			AssignedDate: seedDate(2023, 1, 15), UnassignedDate: ptrDate(2024, 8, 15),
		},
		{
			ID: "ASG-002", VehicleID: "VEH-001", DriverName: "Sarah Lee",
			AssignedDate: seedDate(2022, 6, 1), UnassignedDate: ptrDate(2023, 1, 14),
		},
		{
			ID: "ASG-003", VehicleID: "VEH-004", DriverName: "Driver User",
			AssignedDate: seedDate(2024, 1, 10),
		},
		{
			ID: "ASG-004", VehicleID: "VEH-005", DriverName: "Driver User",
			AssignedDate: seedDate(2024, 2, 1),
		},
		{
			ID: "ASG-005", VehicleID: "VEH-006", DriverName: "Driver User",
			AssignedDate: seedDate(2024, 3, 15),
		},
		{
			ID: "ASG-006", VehicleID: "VEH-007", DriverName: "Driver User",
			AssignedDate: seedDate(2024, 4, 1),
		},
		{
			ID: "ASG-007", VehicleID: "VEH-008", DriverName: "Driver User",
			AssignedDate: seedDate(2024, 5, 10), UnassignedDate: ptrDate(2024, 11, 30),
		},
	}
}
