package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type DriverService struct {
	driverRepo *repository.DriverRepository
	truckRepo  *repository.TruckRepository
}

func NewDriverService(driverRepo *repository.DriverRepository, truckRepo *repository.TruckRepository) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		truckRepo:  truckRepo,
	}
}

type CreateDriverInput struct {
	FullName      string
	Phone         string
	LicenseNumber string
	LicenseExpiry *string
}

func (s *DriverService) Create(ctx context.Context, principal model.Principal, input CreateDriverInput) (*model.Driver, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	if input.FullName == "" || input.LicenseNumber == "" {
		return nil, ErrInvalidInput
	}

	licenseExpiry, err := parseOptionalDate(input.LicenseExpiry)
	if err != nil {
		return nil, err
	}

	driver := &model.Driver{
		FullName:      input.FullName,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		LicenseExpiry: licenseExpiry,
		Status:        model.DriverStatusActive,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

func (s *DriverService) Get(ctx context.Context, id string) (*model.Driver, error) {
	driverID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return driver, nil
}

func (s *DriverService) List(ctx context.Context, filter repository.DriverListFilter) ([]model.Driver, error) {
	return s.driverRepo.List(ctx, filter)
}

type UpdateDriverInput struct {
	FullName      *string
	Phone         *string
	LicenseExpiry *string
	Status        *model.DriverStatus
}

func (s *DriverService) Update(ctx context.Context, principal model.Principal, id string, input UpdateDriverInput) (*model.Driver, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	driver, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		driver.FullName = *input.FullName
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.LicenseExpiry != nil {
		licenseExpiry, err := parseOptionalDate(input.LicenseExpiry)
		if err != nil {
			return nil, err
		}
		driver.LicenseExpiry = licenseExpiry
	}
	if input.Status != nil {
		switch *input.Status {
		case model.DriverStatusActive, model.DriverStatusOnLeave, model.DriverStatusSuspended:
			driver.Status = *input.Status
		default:
			return nil, ErrInvalidInput
		}
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// AssignTruck links a driver to a truck; an empty truck id unassigns.
func (s *DriverService) AssignTruck(ctx context.Context, principal model.Principal, driverID string, truckID *string) (*model.Driver, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	driver, err := s.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if truckID == nil || *truckID == "" {
		driver.AssignedTruckID = nil
	} else {
		parsed, err := uuid.Parse(*truckID)
		if err != nil {
			return nil, ErrInvalidInput
		}
		if _, err := s.truckRepo.GetByID(ctx, parsed); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		driver.AssignedTruckID = &parsed
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

func (s *DriverService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	driverID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	return s.driverRepo.Delete(ctx, driverID)
}
