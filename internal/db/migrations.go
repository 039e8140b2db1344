package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_status') THEN
			CREATE TYPE vehicle_status AS ENUM ('Active', 'Maintenance', 'Retired');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id VARCHAR(32) PRIMARY KEY,
		make VARCHAR(64) NOT NULL,
		model VARCHAR(64) NOT NULL,
		year INTEGER NOT NULL,
		vin VARCHAR(17) NOT NULL UNIQUE,
		status vehicle_status NOT NULL DEFAULT 'Active',
		current_mileage DOUBLE PRECISION NOT NULL DEFAULT 0,
		last_service_date DATE NOT NULL,
		assigned_driver VARCHAR(128) NOT NULL DEFAULT 'Unassigned',
		license_plate VARCHAR(16),
		color VARCHAR(32),
		purchase_date DATE,
		fuel_type VARCHAR(32),
		transmission VARCHAR(32),
		purchase_price DOUBLE PRECISION,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_status ON vehicles (status);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_assigned_driver ON vehicles (assigned_driver);`,
	`CREATE TABLE IF NOT EXISTS maintenance_records (
		id VARCHAR(36) PRIMARY KEY,
		vehicle_id VARCHAR(32) NOT NULL REFERENCES vehicles(vehicle_id) ON DELETE CASCADE,
		date DATE NOT NULL,
		service_type VARCHAR(32) NOT NULL,
		cost DOUBLE PRECISION NOT NULL DEFAULT 0,
		mileage DOUBLE PRECISION NOT NULL DEFAULT 0,
		technician_notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_records_vehicle_id ON maintenance_records (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_records_date ON maintenance_records (date);`,
	`CREATE TABLE IF NOT EXISTS assignment_history (
		id VARCHAR(36) PRIMARY KEY,
		vehicle_id VARCHAR(32) NOT NULL REFERENCES vehicles(vehicle_id) ON DELETE CASCADE,
		driver_name VARCHAR(128) NOT NULL,
		assigned_date DATE NOT NULL,
		unassigned_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_assignment_history_vehicle_id ON assignment_history (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_assignment_history_driver_name ON assignment_history (driver_name);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_vehicles_updated_at') THEN
			CREATE TRIGGER trg_vehicles_updated_at
				BEFORE UPDATE ON vehicles
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_assignment_history_updated_at') THEN
			CREATE TRIGGER trg_assignment_history_updated_at
				BEFORE UPDATE ON assignment_history
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
