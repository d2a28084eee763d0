package report

import (
	"sort"

	"fleet-service/internal/model"
)

type MonthlyFinancials struct {
	// Month is the calendar bucket key, formatted YYYY-MM.
	Month               string  `json:"month"`
	TripCount           int     `json:"trip_count"`
	RevenueKSH          float64 `json:"revenue_ksh"`
	CostsKSH            float64 `json:"costs_ksh"`
	ProfitKSH           float64 `json:"profit_ksh"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
}

type FinancialReport struct {
	Months          []MonthlyFinancials `json:"months"`
	TotalRevenueKSH float64             `json:"total_revenue_ksh"`
	TotalCostsKSH   float64             `json:"total_costs_ksh"`
	TotalProfitKSH  float64             `json:"total_profit_ksh"`
}

// MonthlyBreakdown buckets trips, maintenance and fuel into calendar
// months. Revenue converts from USD at the fixed rate; maintenance and
// fuel costs are already KSh and are summed as-is.
func MonthlyBreakdown(trips []model.Trip, maintenance []model.MaintenanceRecord, fuel []model.FuelRecord, r *DateRange) FinancialReport {
	trips = FilterTrips(trips, r, nil)
	maintenance = FilterMaintenanceRecords(maintenance, r, nil)
	fuel = FilterFuelRecords(fuel, r, nil)

	months := make(map[string]*MonthlyFinancials)
	bucket := func(key string) *MonthlyFinancials {
		if m, ok := months[key]; ok {
			return m
		}
		m := &MonthlyFinancials{Month: key}
		months[key] = m
		return m
	}

	for _, t := range trips {
		m := bucket(t.PlannedDeparture.Format("2006-01"))
		m.TripCount++
		m.RevenueKSH += USD(deref(t.CargoValueUSD)).InKES()
	}

	for _, rec := range maintenance {
		bucket(rec.ServiceDate.Format("2006-01")).CostsKSH += rec.Cost
	}

	for _, f := range fuel {
		bucket(f.FuelDate.Format("2006-01")).CostsKSH += f.TotalCost
	}

	report := FinancialReport{Months: make([]MonthlyFinancials, 0, len(months))}
	for _, m := range months {
		m.ProfitKSH = m.RevenueKSH - m.CostsKSH
		m.ProfitMarginPercent = safeDiv(m.ProfitKSH, m.RevenueKSH) * 100
		report.Months = append(report.Months, *m)
		report.TotalRevenueKSH += m.RevenueKSH
		report.TotalCostsKSH += m.CostsKSH
		report.TotalProfitKSH += m.ProfitKSH
	}

	sort.Slice(report.Months, func(i, j int) bool {
		return report.Months[i].Month < report.Months[j].Month
	})

	return report
}
