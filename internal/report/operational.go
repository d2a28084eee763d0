package report

import (
	"fmt"
	"sort"

	"fleet-service/internal/model"
)

// TopRouteCount caps the route ranking.
const TopRouteCount = 10

type RoutePerformance struct {
	Route           string  `json:"route"`
	TripCount       int     `json:"trip_count"`
	TotalDistanceKM float64 `json:"total_distance_km"`
	TotalRevenueKSH float64 `json:"total_revenue_ksh"`
	// AvgDelayHours averages max(0, actual - planned arrival) over trips
	// where both timestamps exist.
	AvgDelayHours float64 `json:"avg_delay_hours"`
}

type OperationalReport struct {
	TopRoutes []RoutePerformance `json:"top_routes"`
	// OnTimeRatePercent is measured only over trips carrying both planned
	// and actual arrival; trips missing either are excluded entirely.
	OnTimeRatePercent float64 `json:"on_time_rate_percent"`
	MeasuredTrips     int     `json:"measured_trips"`
	TotalTrips        int     `json:"total_trips"`
}

// OperationalSummary groups trips into origin->destination routes, ranks
// the top routes by revenue and computes the fleet on-time rate.
func OperationalSummary(trips []model.Trip, r *DateRange) OperationalReport {
	trips = FilterTrips(trips, r, nil)

	routes := make(map[string]*RoutePerformance)
	var order []string
	delayCounts := make(map[string]int)

	onTime := 0
	measured := 0

	for _, t := range trips {
		key := fmt.Sprintf("%s → %s", t.Origin, t.Destination)
		rp, ok := routes[key]
		if !ok {
			rp = &RoutePerformance{Route: key}
			routes[key] = rp
			order = append(order, key)
		}

		rp.TripCount++
		rp.TotalDistanceKM += deref(t.DistanceKM)
		rp.TotalRevenueKSH += USD(deref(t.CargoValueUSD)).InKES()

		if t.ActualArrival != nil {
			delay := t.ActualArrival.Sub(t.PlannedArrival).Hours()
			if delay < 0 {
				delay = 0
			}
			n := delayCounts[key] + 1
			delayCounts[key] = n
			rp.AvgDelayHours = (rp.AvgDelayHours*float64(n-1) + delay) / float64(n)

			measured++
			if !t.ActualArrival.After(t.PlannedArrival) {
				onTime++
			}
		}
	}

	ranked := make([]RoutePerformance, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, *routes[key])
	}
	// Stable sort keeps input order on revenue ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenueKSH > ranked[j].TotalRevenueKSH
	})
	if len(ranked) > TopRouteCount {
		ranked = ranked[:TopRouteCount]
	}

	return OperationalReport{
		TopRoutes:         ranked,
		OnTimeRatePercent: safeDiv(float64(onTime), float64(measured)) * 100,
		MeasuredTrips:     measured,
		TotalTrips:        len(trips),
	}
}
