package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fleet-service/internal/model"
)

func svcType(s model.ServiceType) *model.ServiceType {
	return &s
}

func TestMaintenanceSummary(t *testing.T) {
	truck := model.Truck{ID: uuid.New(), TruckNumber: "KDA100A"}
	serviceDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	records := []model.MaintenanceRecord{
		{
			TruckID:     &truck.ID,
			ServiceDate: serviceDate,
			Cost:        20000,
			Status:      model.MaintenanceStatusCompleted,
			ServiceType: svcType(model.ServiceTypeServicing),
		},
		{
			TruckID:     &truck.ID,
			ServiceDate: serviceDate,
			Cost:        50000,
			Status:      model.MaintenanceStatusScheduled,
			ServiceType: svcType(model.ServiceTypeMaintenance),
		},
		{
			TruckID:     &truck.ID,
			ServiceDate: serviceDate,
			Cost:        10000,
			Status:      model.MaintenanceStatusInProgress,
		},
	}

	r := MaintenanceSummary(records, []model.Truck{truck}, nil, nil)

	assert.Len(t, r.Trucks, 1)
	s := r.Trucks[0]
	assert.Equal(t, 3, s.RecordCount)
	assert.Equal(t, 1, s.CompletedCount)
	assert.Equal(t, 2, s.PendingCount)
	assert.Equal(t, 80000.0, s.TotalCostKSH)
	assert.InDelta(t, 26666.67, s.AvgCostPerService, 0.01)
	assert.Equal(t, 20000.0, s.ServicingCostKSH)
	assert.Equal(t, 50000.0, s.MaintenanceCostKSH)

	assert.Equal(t, 80000.0, r.TotalCostKSH)
	assert.Equal(t, 1, r.CompletedCount)
	assert.Equal(t, 2, r.PendingCount)
}

func TestMaintenanceSummaryNoRecords(t *testing.T) {
	truck := model.Truck{ID: uuid.New(), TruckNumber: "KDA100A"}

	r := MaintenanceSummary(nil, []model.Truck{truck}, nil, nil)

	assert.Len(t, r.Trucks, 1)
	assert.Equal(t, 0.0, r.Trucks[0].AvgCostPerService)
}
