package report

import (
	"sort"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

// NoRefill is reported when a truck has no fuel records in range.
const NoRefill = "N/A"

type TruckFuelUsage struct {
	TruckID         uuid.UUID `json:"truck_id"`
	TruckNumber     string    `json:"truck_number"`
	RecordCount     int       `json:"record_count"`
	TotalLiters     float64   `json:"total_liters"`
	TotalCostKSH    float64   `json:"total_cost_ksh"`
	AvgCostPerLiter float64   `json:"avg_cost_per_liter"`
	// EfficiencyKMPerL is derived from odometer deltas and needs at least
	// two records with nonzero readings; otherwise it stays 0.
	EfficiencyKMPerL float64 `json:"efficiency_km_per_l"`
	LastRefill       string  `json:"last_refill"`
}

type FuelReport struct {
	Trucks       []TruckFuelUsage `json:"trucks"`
	TotalLiters  float64          `json:"total_liters"`
	TotalCostKSH float64          `json:"total_cost_ksh"`
}

// FuelUsage aggregates fuel spend and volume per truck. total_cost is
// authoritative for cost sums and liters for volume sums; the engine does
// not re-derive one from the other.
func FuelUsage(records []model.FuelRecord, trucks []model.Truck, r *DateRange, truckID *uuid.UUID) FuelReport {
	records = FilterFuelRecords(records, r, nil)

	report := FuelReport{Trucks: make([]TruckFuelUsage, 0, len(trucks))}

	for _, truck := range trucks {
		if truckID != nil && truck.ID != *truckID {
			continue
		}

		u := TruckFuelUsage{TruckID: truck.ID, TruckNumber: truck.TruckNumber, LastRefill: NoRefill}

		var own []model.FuelRecord
		for _, f := range records {
			if matchesTruck(f.TruckID, truck.ID) {
				own = append(own, f)
			}
		}

		for _, f := range own {
			u.RecordCount++
			u.TotalLiters += f.Liters
			u.TotalCostKSH += f.TotalCost
			if u.LastRefill == NoRefill || f.FuelDate.Format("2006-01-02") > u.LastRefill {
				u.LastRefill = f.FuelDate.Format("2006-01-02")
			}
		}

		u.AvgCostPerLiter = safeDiv(u.TotalCostKSH, u.TotalLiters)
		u.EfficiencyKMPerL = odometerEfficiency(own, u.TotalLiters)

		report.Trucks = append(report.Trucks, u)
		report.TotalLiters += u.TotalLiters
		report.TotalCostKSH += u.TotalCostKSH
	}

	return report
}

// odometerEfficiency estimates km/L from the first and last odometer
// readings across the truck's records, ordered by fuel date. Clamped to 0
// when the distance delta is non-positive or no liters were recorded.
func odometerEfficiency(records []model.FuelRecord, totalLiters float64) float64 {
	var withOdometer []model.FuelRecord
	for _, f := range records {
		if f.OdometerReading != nil && *f.OdometerReading != 0 {
			withOdometer = append(withOdometer, f)
		}
	}
	if len(withOdometer) < 2 || totalLiters == 0 {
		return 0
	}

	sort.SliceStable(withOdometer, func(i, j int) bool {
		return withOdometer[i].FuelDate.Before(withOdometer[j].FuelDate)
	})

	first := *withOdometer[0].OdometerReading
	last := *withOdometer[len(withOdometer)-1].OdometerReading
	if last <= first {
		return 0
	}

	return (last - first) / totalLiters
}
