package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleet-service/internal/model"
)

func TestOperationalSummaryOnTimeRate(t *testing.T) {
	planned := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	onTime := planned.Add(-30 * time.Minute)
	late := planned.Add(3 * time.Hour)

	trips := []model.Trip{
		{
			Origin:           "Mombasa",
			Destination:      "Nairobi",
			PlannedDeparture: planned.Add(-10 * time.Hour),
			PlannedArrival:   planned,
			ActualArrival:    &onTime,
		},
		{
			Origin:           "Mombasa",
			Destination:      "Nairobi",
			PlannedDeparture: planned.Add(-10 * time.Hour),
			PlannedArrival:   planned,
			ActualArrival:    &late,
		},
		{
			// Still in progress: excluded from the rate entirely.
			Origin:           "Mombasa",
			Destination:      "Kisumu",
			PlannedDeparture: planned.Add(-10 * time.Hour),
			PlannedArrival:   planned,
		},
	}

	r := OperationalSummary(trips, nil)

	assert.Equal(t, 3, r.TotalTrips)
	assert.Equal(t, 2, r.MeasuredTrips)
	assert.Equal(t, 50.0, r.OnTimeRatePercent)
}

func TestOperationalSummaryAllMeasuredOnTime(t *testing.T) {
	planned := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	early := planned.Add(-1 * time.Hour)
	exact := planned

	trips := []model.Trip{
		{Origin: "A", Destination: "B", PlannedDeparture: planned, PlannedArrival: planned, ActualArrival: &early},
		{Origin: "A", Destination: "B", PlannedDeparture: planned, PlannedArrival: planned, ActualArrival: &exact},
	}

	r := OperationalSummary(trips, nil)

	assert.Equal(t, 100.0, r.OnTimeRatePercent)
}

func TestOperationalSummaryNoMeasurableTrips(t *testing.T) {
	trips := []model.Trip{
		{Origin: "A", Destination: "B", PlannedDeparture: time.Now(), PlannedArrival: time.Now()},
	}

	r := OperationalSummary(trips, nil)

	assert.Equal(t, 0.0, r.OnTimeRatePercent)
	assert.Equal(t, 0, r.MeasuredTrips)
	assert.Equal(t, 1, r.TotalTrips)
}

func TestOperationalSummaryRouteAggregation(t *testing.T) {
	planned := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	late := planned.Add(4 * time.Hour)
	early := planned.Add(-2 * time.Hour)

	trips := []model.Trip{
		{
			Origin:           "Mombasa",
			Destination:      "Nairobi",
			PlannedDeparture: planned,
			PlannedArrival:   planned,
			ActualArrival:    &late,
			DistanceKM:       f64(480),
			CargoValueUSD:    f64(1000),
		},
		{
			Origin:           "Mombasa",
			Destination:      "Nairobi",
			PlannedDeparture: planned,
			PlannedArrival:   planned,
			ActualArrival:    &early,
			DistanceKM:       f64(480),
			CargoValueUSD:    f64(500),
		},
	}

	r := OperationalSummary(trips, nil)

	assert.Len(t, r.TopRoutes, 1)
	route := r.TopRoutes[0]
	assert.Equal(t, "Mombasa → Nairobi", route.Route)
	assert.Equal(t, 2, route.TripCount)
	assert.Equal(t, 960.0, route.TotalDistanceKM)
	assert.Equal(t, 1500*USDToKESRate, route.TotalRevenueKSH)
	// Early arrival counts as zero delay, so the average is (4+0)/2.
	assert.Equal(t, 2.0, route.AvgDelayHours)
}

func TestOperationalSummaryTopRoutesRankedByRevenue(t *testing.T) {
	planned := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	var trips []model.Trip
	for i := 0; i < 12; i++ {
		trips = append(trips, model.Trip{
			Origin:           "Origin",
			Destination:      fmt.Sprintf("Dest-%02d", i),
			PlannedDeparture: planned,
			PlannedArrival:   planned,
			CargoValueUSD:    f64(float64(i * 100)),
		})
	}

	r := OperationalSummary(trips, nil)

	assert.Len(t, r.TopRoutes, TopRouteCount)
	assert.Equal(t, "Origin → Dest-11", r.TopRoutes[0].Route)
	assert.Equal(t, "Origin → Dest-02", r.TopRoutes[TopRouteCount-1].Route)

	for i := 1; i < len(r.TopRoutes); i++ {
		assert.GreaterOrEqual(t, r.TopRoutes[i-1].TotalRevenueKSH, r.TopRoutes[i].TotalRevenueKSH)
	}
}

func TestOperationalSummaryRevenueTiesKeepInputOrder(t *testing.T) {
	planned := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	trips := []model.Trip{
		{Origin: "A", Destination: "B", PlannedDeparture: planned, PlannedArrival: planned, CargoValueUSD: f64(100)},
		{Origin: "C", Destination: "D", PlannedDeparture: planned, PlannedArrival: planned, CargoValueUSD: f64(100)},
	}

	r := OperationalSummary(trips, nil)

	assert.Len(t, r.TopRoutes, 2)
	assert.Equal(t, "A → B", r.TopRoutes[0].Route)
	assert.Equal(t, "C → D", r.TopRoutes[1].Route)
}
