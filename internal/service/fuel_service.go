package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type FuelService struct {
	fuelRepo  *repository.FuelRepository
	truckRepo *repository.TruckRepository
	tankRepo  *repository.TankRepository
}

func NewFuelService(
	fuelRepo *repository.FuelRepository,
	truckRepo *repository.TruckRepository,
	tankRepo *repository.TankRepository,
) *FuelService {
	return &FuelService{
		fuelRepo:  fuelRepo,
		truckRepo: truckRepo,
		tankRepo:  tankRepo,
	}
}

type RecordFuelInput struct {
	TruckID         string
	Liters          float64
	CostPerLiter    float64
	TotalCost       *float64
	FuelDate        string
	OdometerReading *float64
	Source          *model.FuelSource
	TankID          *string
}

// RecordFuel writes a fuel record. RESERVE-sourced records drain the
// depot tank; the tank level never goes below zero.
func (s *FuelService) RecordFuel(ctx context.Context, principal model.Principal, input RecordFuelInput) (*model.FuelRecord, error) {
	if !principal.IsAdmin() && !principal.IsFuelAttendant() {
		return nil, ErrPermissionDenied
	}

	if input.Liters <= 0 || input.CostPerLiter < 0 {
		return nil, ErrInvalidInput
	}

	truckID, err := uuid.Parse(input.TruckID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if _, err := s.truckRepo.GetByID(ctx, truckID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fuelDate, err := parseDate(input.FuelDate)
	if err != nil {
		return nil, err
	}

	totalCost := input.Liters * input.CostPerLiter
	if input.TotalCost != nil {
		totalCost = *input.TotalCost
	}

	source := model.FuelSourceStation
	if input.Source != nil {
		switch *input.Source {
		case model.FuelSourceStation, model.FuelSourceReserve:
			source = *input.Source
		default:
			return nil, ErrInvalidInput
		}
	}

	if source == model.FuelSourceReserve {
		if input.TankID == nil {
			return nil, ErrInvalidInput
		}
		tankID, err := uuid.Parse(*input.TankID)
		if err != nil {
			return nil, ErrInvalidInput
		}
		tank, err := s.tankRepo.GetByID(ctx, tankID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if tank.CurrentLevelLiters < input.Liters {
			return nil, ErrConflict
		}
		if err := s.tankRepo.AdjustLevel(ctx, tankID, -input.Liters); err != nil {
			return nil, err
		}
	}

	attendantID := principal.UserID
	record := &model.FuelRecord{
		TruckID:         &truckID,
		AttendantID:     &attendantID,
		Liters:          input.Liters,
		CostPerLiter:    input.CostPerLiter,
		TotalCost:       totalCost,
		FuelDate:        fuelDate,
		OdometerReading: input.OdometerReading,
		Source:          source,
	}

	if err := s.fuelRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *FuelService) List(ctx context.Context, principal model.Principal, filter repository.FuelListFilter) ([]model.FuelRecord, error) {
	if !principal.IsAdmin() && !principal.IsFuelAttendant() {
		return nil, ErrPermissionDenied
	}

	return s.fuelRepo.List(ctx, filter)
}

func (s *FuelService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	recordID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if _, err := s.fuelRepo.GetByID(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.fuelRepo.Delete(ctx, recordID)
}

type CreateTankInput struct {
	Name           string
	CapacityLiters float64
}

func (s *FuelService) CreateTank(ctx context.Context, principal model.Principal, input CreateTankInput) (*model.ReserveTank, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	if input.Name == "" || input.CapacityLiters <= 0 {
		return nil, ErrInvalidInput
	}

	tank := &model.ReserveTank{
		Name:           input.Name,
		CapacityLiters: input.CapacityLiters,
	}

	if err := s.tankRepo.Create(ctx, tank); err != nil {
		return nil, err
	}

	return tank, nil
}

func (s *FuelService) ListTanks(ctx context.Context, principal model.Principal) ([]model.ReserveTank, error) {
	if !principal.IsAdmin() && !principal.IsFuelAttendant() {
		return nil, ErrPermissionDenied
	}

	return s.tankRepo.List(ctx)
}

type RefillTankInput struct {
	Liters       float64
	CostPerLiter float64
	Supplier     *string
	RefilledAt   string
}

// RefillTank raises the depot level, capped at tank capacity.
func (s *FuelService) RefillTank(ctx context.Context, principal model.Principal, tankID string, input RefillTankInput) (*model.TankRefill, error) {
	if !principal.IsAdmin() && !principal.IsFuelAttendant() {
		return nil, ErrPermissionDenied
	}

	if input.Liters <= 0 || input.CostPerLiter < 0 {
		return nil, ErrInvalidInput
	}

	id, err := uuid.Parse(tankID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	tank, err := s.tankRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if tank.CurrentLevelLiters+input.Liters > tank.CapacityLiters {
		return nil, ErrConflict
	}

	refilledAt, err := parseDate(input.RefilledAt)
	if err != nil {
		return nil, err
	}

	recordedBy := principal.UserID
	refill := &model.TankRefill{
		TankID:       id,
		Liters:       input.Liters,
		CostPerLiter: input.CostPerLiter,
		TotalCost:    input.Liters * input.CostPerLiter,
		Supplier:     input.Supplier,
		RefilledAt:   refilledAt,
		RecordedBy:   &recordedBy,
	}

	if err := s.tankRepo.CreateRefill(ctx, refill); err != nil {
		return nil, err
	}

	if err := s.tankRepo.AdjustLevel(ctx, id, input.Liters); err != nil {
		return nil, err
	}

	return refill, nil
}

func (s *FuelService) ListRefills(ctx context.Context, principal model.Principal, tankID string) ([]model.TankRefill, error) {
	if !principal.IsAdmin() && !principal.IsFuelAttendant() {
		return nil, ErrPermissionDenied
	}

	id, err := uuid.Parse(tankID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	return s.tankRepo.ListRefills(ctx, id)
}
