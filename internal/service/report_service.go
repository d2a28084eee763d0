package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/report"
	"fleet-service/internal/repository"
)

// ReportService is the only caller of the report package. It fetches
// fresh rows on every request and injects the evaluation instant here,
// at the outermost site, so the engine itself stays deterministic.
// Aggregates are never cached or patched incrementally.
type ReportService struct {
	truckRepo       *repository.TruckRepository
	driverRepo      *repository.DriverRepository
	tripRepo        *repository.TripRepository
	fuelRepo        *repository.FuelRepository
	maintenanceRepo *repository.MaintenanceRepository
	now             func() time.Time
}

func NewReportService(
	truckRepo *repository.TruckRepository,
	driverRepo *repository.DriverRepository,
	tripRepo *repository.TripRepository,
	fuelRepo *repository.FuelRepository,
	maintenanceRepo *repository.MaintenanceRepository,
) *ReportService {
	return &ReportService{
		truckRepo:       truckRepo,
		driverRepo:      driverRepo,
		tripRepo:        tripRepo,
		fuelRepo:        fuelRepo,
		maintenanceRepo: maintenanceRepo,
		now:             time.Now,
	}
}

// ReportQuery narrows reports by date range and/or one truck. TruckID
// "all" (or empty) means the whole fleet.
type ReportQuery struct {
	DateFrom *time.Time
	DateTo   *time.Time
	TruckID  string
}

func (q ReportQuery) dateRange() (*report.DateRange, error) {
	if q.DateFrom == nil && q.DateTo == nil {
		return nil, nil
	}
	from, to := time.Time{}, time.Unix(1<<62, 0)
	if q.DateFrom != nil {
		from = *q.DateFrom
	}
	if q.DateTo != nil {
		to = *q.DateTo
	}
	if q.DateFrom != nil && q.DateTo != nil && to.Before(from) {
		return nil, ErrInvalidInput
	}
	return &report.DateRange{From: from, To: to}, nil
}

func (q ReportQuery) truckID() (*uuid.UUID, error) {
	if q.TruckID == "" || q.TruckID == "all" {
		return nil, nil
	}
	parsed, err := uuid.Parse(q.TruckID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return &parsed, nil
}

func (s *ReportService) FleetPerformance(ctx context.Context, principal model.Principal, q ReportQuery) (*report.FleetPerformanceReport, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	dateRange, err := q.dateRange()
	if err != nil {
		return nil, err
	}
	truckID, err := q.truckID()
	if err != nil {
		return nil, err
	}

	trucks, err := s.truckRepo.List(ctx, repository.TruckListFilter{})
	if err != nil {
		return nil, err
	}
	trips, err := s.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.maintenanceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	fuel, err := s.fuelRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := report.FleetPerformance(trips, maintenance, fuel, trucks, dateRange, truckID)
	return &result, nil
}

func (s *ReportService) FuelUsage(ctx context.Context, principal model.Principal, q ReportQuery) (*report.FuelReport, error) {
	if !principal.IsAdmin() && !principal.IsFuelAttendant() {
		return nil, ErrPermissionDenied
	}

	dateRange, err := q.dateRange()
	if err != nil {
		return nil, err
	}
	truckID, err := q.truckID()
	if err != nil {
		return nil, err
	}

	trucks, err := s.truckRepo.List(ctx, repository.TruckListFilter{})
	if err != nil {
		return nil, err
	}
	fuel, err := s.fuelRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := report.FuelUsage(fuel, trucks, dateRange, truckID)
	return &result, nil
}

func (s *ReportService) MaintenanceSummary(ctx context.Context, principal model.Principal, q ReportQuery) (*report.MaintenanceReport, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	dateRange, err := q.dateRange()
	if err != nil {
		return nil, err
	}
	truckID, err := q.truckID()
	if err != nil {
		return nil, err
	}

	trucks, err := s.truckRepo.List(ctx, repository.TruckListFilter{})
	if err != nil {
		return nil, err
	}
	maintenance, err := s.maintenanceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := report.MaintenanceSummary(maintenance, trucks, dateRange, truckID)
	return &result, nil
}

func (s *ReportService) ComplianceOverview(ctx context.Context, principal model.Principal) (*report.ComplianceReport, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	trucks, err := s.truckRepo.List(ctx, repository.TruckListFilter{})
	if err != nil {
		return nil, err
	}

	result := report.ComplianceOverview(trucks, s.now())
	return &result, nil
}

func (s *ReportService) MonthlyFinancials(ctx context.Context, principal model.Principal, q ReportQuery) (*report.FinancialReport, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	dateRange, err := q.dateRange()
	if err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.maintenanceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	fuel, err := s.fuelRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := report.MonthlyBreakdown(trips, maintenance, fuel, dateRange)
	return &result, nil
}

func (s *ReportService) OperationalSummary(ctx context.Context, principal model.Principal, q ReportQuery) (*report.OperationalReport, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	dateRange, err := q.dateRange()
	if err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := report.OperationalSummary(trips, dateRange)
	return &result, nil
}

// Dashboard bundles the landing-page numbers: fleet counts, compliance
// summary and the current month's financials.
type Dashboard struct {
	TotalTrucks  int                       `json:"total_trucks"`
	ActiveTrips  int                       `json:"active_trips"`
	Compliance   report.ComplianceSummary  `json:"compliance"`
	CurrentMonth *report.MonthlyFinancials `json:"current_month,omitempty"`
	GeneratedAt  time.Time                 `json:"generated_at"`
}

func (s *ReportService) Dashboard(ctx context.Context, principal model.Principal) (*Dashboard, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	asOf := s.now()

	trucks, err := s.truckRepo.List(ctx, repository.TruckListFilter{})
	if err != nil {
		return nil, err
	}
	trips, err := s.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.maintenanceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	fuel, err := s.fuelRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalTrucks: len(trucks),
		Compliance:  report.FleetComplianceSummary(trucks, asOf),
		GeneratedAt: asOf,
	}

	for _, t := range trips {
		if t.Status == model.TripStatusInProgress {
			d.ActiveTrips++
		}
	}

	monthKey := asOf.Format("2006-01")
	financials := report.MonthlyBreakdown(trips, maintenance, fuel, nil)
	for i := range financials.Months {
		if financials.Months[i].Month == monthKey {
			d.CurrentMonth = &financials.Months[i]
			break
		}
	}

	return d, nil
}

// MyTruckCompliance classifies the truck currently assigned to the
// calling driver.
func (s *ReportService) MyTruckCompliance(ctx context.Context, principal model.Principal) (*report.TruckComplianceRow, error) {
	if !principal.IsDriver() || principal.DriverID == nil {
		return nil, ErrPermissionDenied
	}

	driver, err := s.driverRepo.GetByID(ctx, *principal.DriverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if driver.AssignedTruckID == nil {
		return nil, ErrNotFound
	}

	return s.TruckCompliance(ctx, *driver.AssignedTruckID)
}

// TruckCompliance classifies a single truck's documents.
func (s *ReportService) TruckCompliance(ctx context.Context, truckID uuid.UUID) (*report.TruckComplianceRow, error) {
	truck, err := s.truckRepo.GetByID(ctx, truckID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	tc := report.ClassifyTruck(truck.NTSAExpiry, truck.InsuranceExpiry, truck.TGLExpiry, s.now())
	return &report.TruckComplianceRow{
		TruckID:         truck.ID,
		TruckNumber:     truck.TruckNumber,
		TruckCompliance: tc,
	}, nil
}
