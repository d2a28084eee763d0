package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fleet-service/internal/model"
)

func TestFuelUsageTotals(t *testing.T) {
	truck := model.Truck{ID: uuid.New(), TruckNumber: "KDA100A"}

	records := []model.FuelRecord{
		{TruckID: &truck.ID, FuelDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Liters: 100, TotalCost: 18000},
		{TruckID: &truck.ID, FuelDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), Liters: 50, TotalCost: 9500},
	}

	r := FuelUsage(records, []model.Truck{truck}, nil, nil)

	assert.Len(t, r.Trucks, 1)
	u := r.Trucks[0]
	assert.Equal(t, 2, u.RecordCount)
	assert.Equal(t, 150.0, u.TotalLiters)
	assert.Equal(t, 27500.0, u.TotalCostKSH)
	assert.InDelta(t, 183.33, u.AvgCostPerLiter, 0.01)
	assert.Equal(t, "2025-03-15", u.LastRefill)

	assert.Equal(t, 150.0, r.TotalLiters)
	assert.Equal(t, 27500.0, r.TotalCostKSH)
}

func TestFuelUsageNoRecords(t *testing.T) {
	truck := model.Truck{ID: uuid.New(), TruckNumber: "KDA100A"}

	r := FuelUsage(nil, []model.Truck{truck}, nil, nil)

	assert.Len(t, r.Trucks, 1)
	assert.Equal(t, NoRefill, r.Trucks[0].LastRefill)
	assert.Equal(t, 0.0, r.Trucks[0].AvgCostPerLiter)
}

func TestOdometerEfficiency(t *testing.T) {
	truckID := uuid.New()

	tests := []struct {
		name    string
		records []model.FuelRecord
		liters  float64
		want    float64
	}{
		{
			name: "two readings",
			records: []model.FuelRecord{
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), OdometerReading: f64(10000)},
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), OdometerReading: f64(10500)},
			},
			liters: 100,
			want:   5.0,
		},
		{
			name: "single reading is not enough",
			records: []model.FuelRecord{
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), OdometerReading: f64(10000)},
			},
			liters: 100,
			want:   0,
		},
		{
			name: "zero readings are skipped",
			records: []model.FuelRecord{
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), OdometerReading: f64(0)},
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), OdometerReading: f64(10500)},
			},
			liters: 100,
			want:   0,
		},
		{
			name: "odometer going backwards clamps to zero",
			records: []model.FuelRecord{
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), OdometerReading: f64(10500)},
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), OdometerReading: f64(10000)},
			},
			liters: 100,
			want:   0,
		},
		{
			name: "records arrive out of date order",
			records: []model.FuelRecord{
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), OdometerReading: f64(10500)},
				{TruckID: &truckID, FuelDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), OdometerReading: f64(10000)},
			},
			liters: 100,
			want:   5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, odometerEfficiency(tt.records, tt.liters))
		})
	}
}
