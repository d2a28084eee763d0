package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'truck_status') THEN
			CREATE TYPE truck_status AS ENUM ('ACTIVE', 'IN_MAINTENANCE', 'INACTIVE');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'driver_status') THEN
			CREATE TYPE driver_status AS ENUM ('ACTIVE', 'ON_LEAVE', 'SUSPENDED');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_status') THEN
			CREATE TYPE trip_status AS ENUM ('PLANNED', 'IN_PROGRESS', 'COMPLETED');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'maintenance_status') THEN
			CREATE TYPE maintenance_status AS ENUM ('SCHEDULED', 'IN_PROGRESS', 'COMPLETED');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'fuel_source') THEN
			CREATE TYPE fuel_source AS ENUM ('STATION', 'RESERVE');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS trucks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		truck_number VARCHAR(32) NOT NULL UNIQUE,
		make VARCHAR(64),
		model VARCHAR(64),
		year INTEGER,
		capacity_tons DOUBLE PRECISION,
		status truck_status NOT NULL DEFAULT 'ACTIVE',
		ntsa_expiry TIMESTAMPTZ,
		insurance_expiry TIMESTAMPTZ,
		tgl_expiry TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trucks_status ON trucks (status);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		full_name VARCHAR(128) NOT NULL,
		phone VARCHAR(32),
		license_number VARCHAR(64) NOT NULL UNIQUE,
		license_expiry TIMESTAMPTZ,
		status driver_status NOT NULL DEFAULT 'ACTIVE',
		assigned_truck_id UUID REFERENCES trucks(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_assigned_truck_id ON drivers (assigned_truck_id);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_number VARCHAR(32) NOT NULL UNIQUE,
		truck_id UUID REFERENCES trucks(id) ON DELETE SET NULL,
		driver_id UUID REFERENCES drivers(id) ON DELETE SET NULL,
		origin VARCHAR(128) NOT NULL,
		destination VARCHAR(128) NOT NULL,
		distance_km DOUBLE PRECISION,
		status trip_status NOT NULL DEFAULT 'PLANNED',
		planned_departure TIMESTAMPTZ NOT NULL,
		planned_arrival TIMESTAMPTZ NOT NULL,
		actual_departure TIMESTAMPTZ,
		actual_arrival TIMESTAMPTZ,
		cargo_value_usd DOUBLE PRECISION,
		fuel_cost DOUBLE PRECISION,
		toll_cost DOUBLE PRECISION,
		other_expenses DOUBLE PRECISION,
		estimated_wear_tear_ksh DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_truck_id ON trips (truck_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_driver_id ON trips (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_status ON trips (status);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_planned_departure ON trips (planned_departure);`,
	`CREATE TABLE IF NOT EXISTS cargo_items (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		weight_tons DOUBLE PRECISION,
		value_usd DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_cargo_items_trip_id ON cargo_items (trip_id);`,
	`CREATE TABLE IF NOT EXISTS fuel_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		truck_id UUID REFERENCES trucks(id) ON DELETE SET NULL,
		attendant_id UUID,
		liters DOUBLE PRECISION NOT NULL,
		cost_per_liter DOUBLE PRECISION NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		fuel_date TIMESTAMPTZ NOT NULL,
		odometer_reading DOUBLE PRECISION,
		source fuel_source NOT NULL DEFAULT 'STATION',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_records_truck_id ON fuel_records (truck_id);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_records_fuel_date ON fuel_records (fuel_date);`,
	`CREATE TABLE IF NOT EXISTS maintenance_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		truck_id UUID REFERENCES trucks(id) ON DELETE SET NULL,
		maintenance_types JSONB NOT NULL DEFAULT '[]',
		service_type VARCHAR(32),
		service_date TIMESTAMPTZ NOT NULL,
		cost DOUBLE PRECISION NOT NULL DEFAULT 0,
		status maintenance_status NOT NULL DEFAULT 'SCHEDULED',
		technician VARCHAR(128),
		provider VARCHAR(128),
		items_purchased TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_records_truck_id ON maintenance_records (truck_id);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_records_service_date ON maintenance_records (service_date);`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		part_number VARCHAR(64) NOT NULL UNIQUE,
		quantity INTEGER NOT NULL DEFAULT 0,
		unit_cost_ksh DOUBLE PRECISION NOT NULL DEFAULT 0,
		reorder_level INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS reserve_tanks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(64) NOT NULL UNIQUE,
		capacity_liters DOUBLE PRECISION NOT NULL,
		current_level_liters DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS tank_refills (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tank_id UUID NOT NULL REFERENCES reserve_tanks(id) ON DELETE CASCADE,
		liters DOUBLE PRECISION NOT NULL,
		cost_per_liter DOUBLE PRECISION NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		supplier VARCHAR(128),
		refilled_at TIMESTAMPTZ NOT NULL,
		recorded_by UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tank_refills_tank_id ON tank_refills (tank_id);`,
}

func RunMigrations(database *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := database.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
