package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fleet-service/internal/model"
)

func TestDateRangeContains(t *testing.T) {
	r := DateRange{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, r.Contains(r.From))
	assert.True(t, r.Contains(r.To))
	assert.True(t, r.Contains(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFilterTrips(t *testing.T) {
	truckA := uuid.New()
	truckB := uuid.New()

	trips := []model.Trip{
		{TripNumber: "T-001", TruckID: &truckA, PlannedDeparture: time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)},
		{TripNumber: "T-002", TruckID: &truckB, PlannedDeparture: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{TripNumber: "T-003", TruckID: &truckA, PlannedDeparture: time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)},
		{TripNumber: "T-004", TruckID: nil, PlannedDeparture: time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)},
	}

	march := &DateRange{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
	}

	t.Run("no filters returns everything", func(t *testing.T) {
		assert.Len(t, FilterTrips(trips, nil, nil), 4)
	})

	t.Run("date range only", func(t *testing.T) {
		got := FilterTrips(trips, march, nil)
		assert.Len(t, got, 3)
	})

	t.Run("truck only", func(t *testing.T) {
		got := FilterTrips(trips, nil, &truckA)
		assert.Len(t, got, 2)
	})

	t.Run("range and truck combine with AND", func(t *testing.T) {
		got := FilterTrips(trips, march, &truckA)
		assert.Len(t, got, 1)
		assert.Equal(t, "T-001", got[0].TripNumber)
	})

	t.Run("unassigned records never match a truck filter", func(t *testing.T) {
		got := FilterTrips(trips, nil, &truckB)
		assert.Len(t, got, 1)
		assert.Equal(t, "T-002", got[0].TripNumber)
	})
}

func TestFilterFuelRecords(t *testing.T) {
	truckA := uuid.New()

	records := []model.FuelRecord{
		{TruckID: &truckA, FuelDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
		{TruckID: &truckA, FuelDate: time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)},
	}

	march := &DateRange{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.Len(t, FilterFuelRecords(records, march, &truckA), 1)
	assert.Len(t, FilterFuelRecords(records, nil, &truckA), 2)
}
