package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type TripService struct {
	tripRepo   *repository.TripRepository
	truckRepo  *repository.TruckRepository
	driverRepo *repository.DriverRepository
	cargoRepo  *repository.CargoRepository
}

func NewTripService(
	tripRepo *repository.TripRepository,
	truckRepo *repository.TruckRepository,
	driverRepo *repository.DriverRepository,
	cargoRepo *repository.CargoRepository,
) *TripService {
	return &TripService{
		tripRepo:   tripRepo,
		truckRepo:  truckRepo,
		driverRepo: driverRepo,
		cargoRepo:  cargoRepo,
	}
}

type CreateTripInput struct {
	TripNumber           string
	TruckID              *string
	DriverID             *string
	Origin               string
	Destination          string
	DistanceKM           *float64
	PlannedDeparture     string
	PlannedArrival       string
	CargoValueUSD        *float64
	FuelCost             *float64
	TollCost             *float64
	OtherExpenses        *float64
	EstimatedWearTearKSH *float64
}

func (s *TripService) Create(ctx context.Context, principal model.Principal, input CreateTripInput) (*model.Trip, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	if input.TripNumber == "" || input.Origin == "" || input.Destination == "" {
		return nil, ErrInvalidInput
	}

	plannedDeparture, err := parseDate(input.PlannedDeparture)
	if err != nil {
		return nil, err
	}
	plannedArrival, err := parseDate(input.PlannedArrival)
	if err != nil {
		return nil, err
	}
	if !plannedArrival.After(plannedDeparture) {
		return nil, ErrInvalidInput
	}

	truckID, err := s.resolveTruck(ctx, input.TruckID)
	if err != nil {
		return nil, err
	}
	driverID, err := s.resolveDriver(ctx, input.DriverID)
	if err != nil {
		return nil, err
	}

	trip := &model.Trip{
		TripNumber:           input.TripNumber,
		TruckID:              truckID,
		DriverID:             driverID,
		Origin:               input.Origin,
		Destination:          input.Destination,
		DistanceKM:           input.DistanceKM,
		Status:               model.TripStatusPlanned,
		PlannedDeparture:     plannedDeparture,
		PlannedArrival:       plannedArrival,
		CargoValueUSD:        input.CargoValueUSD,
		FuelCost:             input.FuelCost,
		TollCost:             input.TollCost,
		OtherExpenses:        input.OtherExpenses,
		EstimatedWearTearKSH: input.EstimatedWearTearKSH,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

func (s *TripService) resolveTruck(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*raw)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if _, err := s.truckRepo.GetByID(ctx, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &parsed, nil
}

func (s *TripService) resolveDriver(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*raw)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if _, err := s.driverRepo.GetByID(ctx, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &parsed, nil
}

func (s *TripService) Get(ctx context.Context, principal model.Principal, id string) (*model.Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if principal.IsDriver() {
		if principal.DriverID == nil || trip.DriverID == nil || *trip.DriverID != *principal.DriverID {
			return nil, ErrPermissionDenied
		}
	}

	return trip, nil
}

func (s *TripService) List(ctx context.Context, principal model.Principal, filter repository.TripListFilter) ([]model.Trip, error) {
	if principal.IsDriver() {
		if principal.DriverID == nil {
			return nil, ErrPermissionDenied
		}
		// Drivers only ever see their own trips.
		filter.DriverID = principal.DriverID
	}

	return s.tripRepo.List(ctx, filter)
}

type AssignTripInput struct {
	TruckID  *string
	DriverID *string
}

func (s *TripService) Assign(ctx context.Context, principal model.Principal, id string, input AssignTripInput) (*model.Trip, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	trip, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if trip.Status == model.TripStatusCompleted {
		return nil, ErrConflict
	}

	if input.TruckID != nil {
		truckID, err := s.resolveTruck(ctx, input.TruckID)
		if err != nil {
			return nil, err
		}
		trip.TruckID = truckID
	}
	if input.DriverID != nil {
		driverID, err := s.resolveDriver(ctx, input.DriverID)
		if err != nil {
			return nil, err
		}
		trip.DriverID = driverID
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// UpdateStatus moves a trip through its forward-only lifecycle and stamps
// the matching actual timestamp. Transitions happen only here; they are
// never inferred from timestamps.
func (s *TripService) UpdateStatus(ctx context.Context, principal model.Principal, id string, next model.TripStatus) (*model.Trip, error) {
	trip, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	switch next {
	case model.TripStatusInProgress, model.TripStatusCompleted:
	default:
		return nil, ErrInvalidInput
	}

	if !trip.Status.CanTransitionTo(next) {
		return nil, ErrConflict
	}

	now := time.Now()
	switch next {
	case model.TripStatusInProgress:
		trip.ActualDeparture = &now
	case model.TripStatusCompleted:
		trip.ActualArrival = &now
	}
	trip.Status = next

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

func (s *TripService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	tripID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// Only unstarted trips can be removed.
	if trip.Status != model.TripStatusPlanned {
		return ErrConflict
	}

	return s.tripRepo.Delete(ctx, tripID)
}

type CargoItemInput struct {
	Description string
	WeightTons  *float64
	ValueUSD    *float64
}

func (s *TripService) AddCargoItem(ctx context.Context, principal model.Principal, tripID string, input CargoItemInput) (*model.CargoItem, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	trip, err := s.Get(ctx, principal, tripID)
	if err != nil {
		return nil, err
	}

	if input.Description == "" {
		return nil, ErrInvalidInput
	}

	item := &model.CargoItem{
		TripID:      trip.ID,
		Description: input.Description,
		WeightTons:  input.WeightTons,
		ValueUSD:    input.ValueUSD,
	}

	if err := s.cargoRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *TripService) ListCargo(ctx context.Context, principal model.Principal, tripID string) ([]model.CargoItem, error) {
	trip, err := s.Get(ctx, principal, tripID)
	if err != nil {
		return nil, err
	}

	return s.cargoRepo.ListByTripID(ctx, trip.ID)
}

func (s *TripService) DeleteCargoItem(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	itemID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if _, err := s.cargoRepo.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.cargoRepo.Delete(ctx, itemID)
}
