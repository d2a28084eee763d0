package report

import (
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

// DateRange is inclusive on both ends.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// filterRecords applies the optional date range and truck narrowing with
// logical AND. A nil range or nil truckID disables that filter; callers
// translate the "all" sentinel to nil before reaching this package.
func filterRecords[T any](records []T, dateOf func(T) time.Time, truckOf func(T) *uuid.UUID, r *DateRange, truckID *uuid.UUID) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if r != nil && !r.Contains(dateOf(rec)) {
			continue
		}
		if truckID != nil {
			tid := truckOf(rec)
			if tid == nil || *tid != *truckID {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// FilterTrips narrows trips by planned departure date and assigned truck.
func FilterTrips(trips []model.Trip, r *DateRange, truckID *uuid.UUID) []model.Trip {
	return filterRecords(trips,
		func(t model.Trip) time.Time { return t.PlannedDeparture },
		func(t model.Trip) *uuid.UUID { return t.TruckID },
		r, truckID)
}

// FilterFuelRecords narrows fuel records by fuel date and truck.
func FilterFuelRecords(records []model.FuelRecord, r *DateRange, truckID *uuid.UUID) []model.FuelRecord {
	return filterRecords(records,
		func(f model.FuelRecord) time.Time { return f.FuelDate },
		func(f model.FuelRecord) *uuid.UUID { return f.TruckID },
		r, truckID)
}

// FilterMaintenanceRecords narrows maintenance records by service date and truck.
func FilterMaintenanceRecords(records []model.MaintenanceRecord, r *DateRange, truckID *uuid.UUID) []model.MaintenanceRecord {
	return filterRecords(records,
		func(m model.MaintenanceRecord) time.Time { return m.ServiceDate },
		func(m model.MaintenanceRecord) *uuid.UUID { return m.TruckID },
		r, truckID)
}

func matchesTruck(recordTruckID *uuid.UUID, truckID uuid.UUID) bool {
	return recordTruckID != nil && *recordTruckID == truckID
}
