package report

import (
	"github.com/google/uuid"

	"fleet-service/internal/model"
)

type TruckMaintenanceSummary struct {
	TruckID            uuid.UUID `json:"truck_id"`
	TruckNumber        string    `json:"truck_number"`
	RecordCount        int       `json:"record_count"`
	CompletedCount     int       `json:"completed_count"`
	PendingCount       int       `json:"pending_count"`
	TotalCostKSH       float64   `json:"total_cost_ksh"`
	AvgCostPerService  float64   `json:"avg_cost_per_service"`
	ServicingCostKSH   float64   `json:"servicing_cost_ksh"`
	MaintenanceCostKSH float64   `json:"maintenance_cost_ksh"`
}

type MaintenanceReport struct {
	Trucks         []TruckMaintenanceSummary `json:"trucks"`
	TotalCostKSH   float64                   `json:"total_cost_ksh"`
	CompletedCount int                       `json:"completed_count"`
	PendingCount   int                       `json:"pending_count"`
}

// MaintenanceSummary aggregates maintenance spend per truck. The
// servicing/maintenance split matches service_type exactly; rows with any
// other value count toward totals but neither subtotal.
func MaintenanceSummary(records []model.MaintenanceRecord, trucks []model.Truck, r *DateRange, truckID *uuid.UUID) MaintenanceReport {
	records = FilterMaintenanceRecords(records, r, nil)

	report := MaintenanceReport{Trucks: make([]TruckMaintenanceSummary, 0, len(trucks))}

	for _, truck := range trucks {
		if truckID != nil && truck.ID != *truckID {
			continue
		}

		s := TruckMaintenanceSummary{TruckID: truck.ID, TruckNumber: truck.TruckNumber}

		for _, m := range records {
			if !matchesTruck(m.TruckID, truck.ID) {
				continue
			}
			s.RecordCount++
			s.TotalCostKSH += m.Cost
			if m.Status == model.MaintenanceStatusCompleted {
				s.CompletedCount++
			} else {
				s.PendingCount++
			}
			if m.ServiceType != nil {
				switch *m.ServiceType {
				case model.ServiceTypeServicing:
					s.ServicingCostKSH += m.Cost
				case model.ServiceTypeMaintenance:
					s.MaintenanceCostKSH += m.Cost
				}
			}
		}

		s.AvgCostPerService = safeDiv(s.TotalCostKSH, float64(s.RecordCount))

		report.Trucks = append(report.Trucks, s)
		report.TotalCostKSH += s.TotalCostKSH
		report.CompletedCount += s.CompletedCount
		report.PendingCount += s.PendingCount
	}

	return report
}
