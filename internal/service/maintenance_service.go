package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type MaintenanceService struct {
	maintenanceRepo *repository.MaintenanceRepository
	truckRepo       *repository.TruckRepository
}

func NewMaintenanceService(
	maintenanceRepo *repository.MaintenanceRepository,
	truckRepo *repository.TruckRepository,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		truckRepo:       truckRepo,
	}
}

type CreateMaintenanceInput struct {
	TruckID          string
	MaintenanceTypes []string
	ServiceType      *model.ServiceType
	ServiceDate      string
	Cost             float64
	Technician       *string
	Provider         *string
	ItemsPurchased   *string
}

func (s *MaintenanceService) Create(ctx context.Context, principal model.Principal, input CreateMaintenanceInput) (*model.MaintenanceRecord, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	if len(input.MaintenanceTypes) == 0 || input.Cost < 0 {
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

	serviceDate, err := parseDate(input.ServiceDate)
	if err != nil {
		return nil, err
	}

	if input.ServiceType != nil {
		switch *input.ServiceType {
		case model.ServiceTypeServicing, model.ServiceTypeMaintenance:
		default:
			return nil, ErrInvalidInput
		}
	}

	record := &model.MaintenanceRecord{
		TruckID:          &truckID,
		MaintenanceTypes: input.MaintenanceTypes,
		ServiceType:      input.ServiceType,
		ServiceDate:      serviceDate,
		Cost:             input.Cost,
		Status:           model.MaintenanceStatusScheduled,
		Technician:       input.Technician,
		Provider:         input.Provider,
		ItemsPurchased:   input.ItemsPurchased,
	}

	if err := s.maintenanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (*model.MaintenanceRecord, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	record, err := s.maintenanceRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return record, nil
}

func (s *MaintenanceService) List(ctx context.Context, filter repository.MaintenanceListFilter) ([]model.MaintenanceRecord, error) {
	return s.maintenanceRepo.List(ctx, filter)
}

type UpdateMaintenanceInput struct {
	MaintenanceTypes []string
	ServiceType      *model.ServiceType
	ServiceDate      *string
	Cost             *float64
	Status           *model.MaintenanceStatus
	Technician       *string
	Provider         *string
	ItemsPurchased   *string
}

func (s *MaintenanceService) Update(ctx context.Context, principal model.Principal, id string, input UpdateMaintenanceInput) (*model.MaintenanceRecord, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(input.MaintenanceTypes) > 0 {
		record.MaintenanceTypes = input.MaintenanceTypes
	}
	if input.ServiceType != nil {
		switch *input.ServiceType {
		case model.ServiceTypeServicing, model.ServiceTypeMaintenance:
			record.ServiceType = input.ServiceType
		default:
			return nil, ErrInvalidInput
		}
	}
	if input.ServiceDate != nil {
		serviceDate, err := parseDate(*input.ServiceDate)
		if err != nil {
			return nil, err
		}
		record.ServiceDate = serviceDate
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			return nil, ErrInvalidInput
		}
		record.Cost = *input.Cost
	}
	if input.Status != nil {
		switch *input.Status {
		case model.MaintenanceStatusScheduled, model.MaintenanceStatusInProgress, model.MaintenanceStatusCompleted:
			record.Status = *input.Status
		default:
			return nil, ErrInvalidInput
		}
	}
	if input.Technician != nil {
		record.Technician = input.Technician
	}
	if input.Provider != nil {
		record.Provider = input.Provider
	}
	if input.ItemsPurchased != nil {
		record.ItemsPurchased = input.ItemsPurchased
	}

	if err := s.maintenanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	recordID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if _, err := s.maintenanceRepo.GetByID(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.maintenanceRepo.Delete(ctx, recordID)
}
