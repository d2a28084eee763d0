package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleet-service/internal/model"
)

func f64(v float64) *float64 {
	return &v
}

func TestMonthlyBreakdownConvertsRevenueOnce(t *testing.T) {
	trips := []model.Trip{
		{
			TripNumber:       "T-001",
			PlannedDeparture: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			CargoValueUSD:    f64(500),
		},
	}

	r := MonthlyBreakdown(trips, nil, nil, nil)

	assert.Len(t, r.Months, 1)
	m := r.Months[0]
	assert.Equal(t, "2025-03", m.Month)
	assert.Equal(t, 1, m.TripCount)
	assert.Equal(t, 65000.0, m.RevenueKSH)
	assert.Equal(t, 0.0, m.CostsKSH)
	assert.Equal(t, 65000.0, m.ProfitKSH)
	assert.Equal(t, 100.0, m.ProfitMarginPercent)
}

func TestMonthlyBreakdownCostsStayInKSH(t *testing.T) {
	maintenance := []model.MaintenanceRecord{
		{ServiceDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Cost: 20000},
	}
	fuel := []model.FuelRecord{
		{FuelDate: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), TotalCost: 15000},
	}

	r := MonthlyBreakdown(nil, maintenance, fuel, nil)

	assert.Len(t, r.Months, 1)
	assert.Equal(t, 35000.0, r.Months[0].CostsKSH)
	assert.Equal(t, -35000.0, r.Months[0].ProfitKSH)
	assert.Equal(t, 0.0, r.Months[0].ProfitMarginPercent)
}

func TestMonthlyBreakdownSortsMonthsAscending(t *testing.T) {
	trips := []model.Trip{
		{TripNumber: "T-001", PlannedDeparture: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), CargoValueUSD: f64(100)},
		{TripNumber: "T-002", PlannedDeparture: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), CargoValueUSD: f64(200)},
		{TripNumber: "T-003", PlannedDeparture: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), CargoValueUSD: f64(300)},
	}

	r := MonthlyBreakdown(trips, nil, nil, nil)

	assert.Len(t, r.Months, 3)
	assert.Equal(t, "2025-01", r.Months[0].Month)
	assert.Equal(t, "2025-03", r.Months[1].Month)
	assert.Equal(t, "2025-05", r.Months[2].Month)

	assert.Equal(t, 600*USDToKESRate, r.TotalRevenueKSH)
	assert.Equal(t, 0.0, r.TotalCostsKSH)
	assert.Equal(t, r.TotalRevenueKSH, r.TotalProfitKSH)
}

func TestMonthlyBreakdownRespectsDateRange(t *testing.T) {
	trips := []model.Trip{
		{TripNumber: "T-001", PlannedDeparture: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), CargoValueUSD: f64(100)},
		{TripNumber: "T-002", PlannedDeparture: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), CargoValueUSD: f64(100)},
	}

	march := &DateRange{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	r := MonthlyBreakdown(trips, nil, nil, march)

	assert.Len(t, r.Months, 1)
	assert.Equal(t, "2025-03", r.Months[0].Month)
}

func TestMonthlyBreakdownMissingCargoValue(t *testing.T) {
	trips := []model.Trip{
		{TripNumber: "T-001", PlannedDeparture: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	r := MonthlyBreakdown(trips, nil, nil, nil)

	assert.Len(t, r.Months, 1)
	assert.Equal(t, 1, r.Months[0].TripCount)
	assert.Equal(t, 0.0, r.Months[0].RevenueKSH)
}
