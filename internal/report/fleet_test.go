package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fleet-service/internal/model"
)

func TestFleetPerformancePerTruck(t *testing.T) {
	truckA := model.Truck{ID: uuid.New(), TruckNumber: "KDA100A"}
	truckB := model.Truck{ID: uuid.New(), TruckNumber: "KDA200B"}

	trips := []model.Trip{
		{
			TruckID:          &truckA.ID,
			PlannedDeparture: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			DistanceKM:       f64(500),
			CargoValueUSD:    f64(1000),
		},
		{
			TruckID:          &truckA.ID,
			PlannedDeparture: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			DistanceKM:       f64(300),
			CargoValueUSD:    f64(400),
		},
	}
	maintenance := []model.MaintenanceRecord{
		{TruckID: &truckA.ID, ServiceDate: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), Cost: 30000},
	}
	fuel := []model.FuelRecord{
		{TruckID: &truckA.ID, FuelDate: time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), Liters: 200, TotalCost: 36000},
	}

	r := FleetPerformance(trips, maintenance, fuel, []model.Truck{truckA, truckB}, nil, nil)

	assert.Len(t, r.Trucks, 2)

	a := r.Trucks[0]
	assert.Equal(t, "KDA100A", a.TruckNumber)
	assert.Equal(t, 2, a.TripCount)
	assert.Equal(t, 800.0, a.TotalDistanceKM)
	assert.Equal(t, 1400.0, a.TotalRevenueUSD)
	assert.Equal(t, 182000.0, a.TotalRevenueKSH)
	assert.Equal(t, 66000.0, a.OperatingCostKSH)
	assert.Equal(t, 116000.0, a.ProfitLossKSH)
	assert.InDelta(t, 63.74, a.ProfitMarginPercent, 0.01)
	assert.Equal(t, 4.0, a.FuelEfficiencyKMPerL)

	b := r.Trucks[1]
	assert.Equal(t, 0, b.TripCount)
	assert.Equal(t, 0.0, b.ProfitMarginPercent)
	assert.Equal(t, 0.0, b.FuelEfficiencyKMPerL)

	assert.Equal(t, 182000.0, r.TotalRevenueKSH)
	assert.Equal(t, 66000.0, r.TotalOperatingCostKSH)
	assert.Equal(t, 116000.0, r.TotalProfitLossKSH)
}

func TestFleetPerformanceZeroGuards(t *testing.T) {
	truck := model.Truck{ID: uuid.New(), TruckNumber: "KDA100A"}

	r := FleetPerformance(nil, nil, nil, []model.Truck{truck}, nil, nil)

	assert.Len(t, r.Trucks, 1)
	assert.Equal(t, 0.0, r.Trucks[0].ProfitMarginPercent)
	assert.Equal(t, 0.0, r.Trucks[0].FuelEfficiencyKMPerL)
	assert.Equal(t, 0.0, r.AverageProfitMarginPercent)
}

func TestFleetPerformanceEmptyFleet(t *testing.T) {
	r := FleetPerformance(nil, nil, nil, nil, nil, nil)

	assert.Empty(t, r.Trucks)
	assert.Equal(t, 0.0, r.AverageProfitMarginPercent)
}

func TestFleetPerformanceSingleTruckFilter(t *testing.T) {
	truckA := model.Truck{ID: uuid.New(), TruckNumber: "KDA100A"}
	truckB := model.Truck{ID: uuid.New(), TruckNumber: "KDA200B"}

	trips := []model.Trip{
		{TruckID: &truckA.ID, PlannedDeparture: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), CargoValueUSD: f64(100)},
		{TruckID: &truckB.ID, PlannedDeparture: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), CargoValueUSD: f64(900)},
	}

	r := FleetPerformance(trips, nil, nil, []model.Truck{truckA, truckB}, nil, &truckB.ID)

	assert.Len(t, r.Trucks, 1)
	assert.Equal(t, "KDA200B", r.Trucks[0].TruckNumber)
	assert.Equal(t, 900*USDToKESRate, r.TotalRevenueKSH)
}
