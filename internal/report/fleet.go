package report

import (
	"github.com/google/uuid"

	"fleet-service/internal/model"
)

type TruckPerformance struct {
	TruckID              uuid.UUID `json:"truck_id"`
	TruckNumber          string    `json:"truck_number"`
	TripCount            int       `json:"trip_count"`
	TotalDistanceKM      float64   `json:"total_distance_km"`
	TotalRevenueUSD      float64   `json:"total_revenue_usd"`
	TotalRevenueKSH      float64   `json:"total_revenue_ksh"`
	OperatingCostKSH     float64   `json:"operating_cost_ksh"`
	ProfitLossKSH        float64   `json:"profit_loss_ksh"`
	ProfitMarginPercent  float64   `json:"profit_margin_percent"`
	TotalFuelLiters      float64   `json:"total_fuel_liters"`
	FuelEfficiencyKMPerL float64   `json:"fuel_efficiency_km_per_l"`
}

type FleetPerformanceReport struct {
	Trucks                     []TruckPerformance `json:"trucks"`
	TotalDistanceKM            float64            `json:"total_distance_km"`
	TotalRevenueKSH            float64            `json:"total_revenue_ksh"`
	TotalOperatingCostKSH      float64            `json:"total_operating_cost_ksh"`
	TotalProfitLossKSH         float64            `json:"total_profit_loss_ksh"`
	AverageProfitMarginPercent float64            `json:"average_profit_margin_percent"`
}

// FleetPerformance derives per-truck distance, revenue, operating cost,
// profit/loss and fuel efficiency from raw rows, then sums the fleet.
// Cargo values arrive in USD and cross into KSh exactly once, at the
// profit calculation. Every ratio is zero-guarded.
func FleetPerformance(
	trips []model.Trip,
	maintenance []model.MaintenanceRecord,
	fuel []model.FuelRecord,
	trucks []model.Truck,
	r *DateRange,
	truckID *uuid.UUID,
) FleetPerformanceReport {
	trips = FilterTrips(trips, r, nil)
	maintenance = FilterMaintenanceRecords(maintenance, r, nil)
	fuel = FilterFuelRecords(fuel, r, nil)

	report := FleetPerformanceReport{Trucks: make([]TruckPerformance, 0, len(trucks))}

	for _, truck := range trucks {
		if truckID != nil && truck.ID != *truckID {
			continue
		}

		p := TruckPerformance{TruckID: truck.ID, TruckNumber: truck.TruckNumber}

		for _, trip := range trips {
			if !matchesTruck(trip.TruckID, truck.ID) {
				continue
			}
			p.TripCount++
			p.TotalDistanceKM += deref(trip.DistanceKM)
			p.TotalRevenueUSD += deref(trip.CargoValueUSD)
		}

		for _, m := range maintenance {
			if matchesTruck(m.TruckID, truck.ID) {
				p.OperatingCostKSH += m.Cost
			}
		}

		for _, f := range fuel {
			if matchesTruck(f.TruckID, truck.ID) {
				p.OperatingCostKSH += f.TotalCost
				p.TotalFuelLiters += f.Liters
			}
		}

		p.TotalRevenueKSH = USD(p.TotalRevenueUSD).InKES()
		p.ProfitLossKSH = p.TotalRevenueKSH - p.OperatingCostKSH
		p.ProfitMarginPercent = safeDiv(p.ProfitLossKSH, p.TotalRevenueKSH) * 100
		p.FuelEfficiencyKMPerL = safeDiv(p.TotalDistanceKM, p.TotalFuelLiters)

		report.Trucks = append(report.Trucks, p)

		report.TotalDistanceKM += p.TotalDistanceKM
		report.TotalRevenueKSH += p.TotalRevenueKSH
		report.TotalOperatingCostKSH += p.OperatingCostKSH
		report.TotalProfitLossKSH += p.ProfitLossKSH
		report.AverageProfitMarginPercent += p.ProfitMarginPercent
	}

	report.AverageProfitMarginPercent = safeDiv(report.AverageProfitMarginPercent, float64(len(report.Trucks)))

	return report
}
