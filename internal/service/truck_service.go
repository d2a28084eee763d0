package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
	"fleet-service/internal/utils"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

// parseDate accepts the formats the dashboards send for calendar fields.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidInput
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

type TruckService struct {
	truckRepo *repository.TruckRepository
}

func NewTruckService(truckRepo *repository.TruckRepository) *TruckService {
	return &TruckService{truckRepo: truckRepo}
}

type CreateTruckInput struct {
	TruckNumber     string
	Make            string
	Model           string
	Year            *int
	CapacityTons    *float64
	NTSAExpiry      *string
	InsuranceExpiry *string
	TGLExpiry       *string
}

func (s *TruckService) Create(ctx context.Context, principal model.Principal, input CreateTruckInput) (*model.Truck, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	truckNumber := utils.NormalizeTruckNumber(input.TruckNumber)
	if truckNumber == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.truckRepo.GetByNumber(ctx, truckNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	ntsaExpiry, err := parseOptionalDate(input.NTSAExpiry)
	if err != nil {
		return nil, err
	}
	insuranceExpiry, err := parseOptionalDate(input.InsuranceExpiry)
	if err != nil {
		return nil, err
	}
	tglExpiry, err := parseOptionalDate(input.TGLExpiry)
	if err != nil {
		return nil, err
	}

	truck := &model.Truck{
		TruckNumber:     truckNumber,
		Make:            input.Make,
		Model:           input.Model,
		Year:            input.Year,
		CapacityTons:    input.CapacityTons,
		Status:          model.TruckStatusActive,
		NTSAExpiry:      ntsaExpiry,
		InsuranceExpiry: insuranceExpiry,
		TGLExpiry:       tglExpiry,
	}

	if err := s.truckRepo.Create(ctx, truck); err != nil {
		return nil, err
	}

	return truck, nil
}

func (s *TruckService) Get(ctx context.Context, id string) (*model.Truck, error) {
	truckID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	truck, err := s.truckRepo.GetByID(ctx, truckID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return truck, nil
}

func (s *TruckService) List(ctx context.Context, filter repository.TruckListFilter) ([]model.Truck, error) {
	return s.truckRepo.List(ctx, filter)
}

type UpdateTruckInput struct {
	Make         *string
	Model        *string
	Year         *int
	CapacityTons *float64
	Status       *model.TruckStatus
}

func (s *TruckService) Update(ctx context.Context, principal model.Principal, id string, input UpdateTruckInput) (*model.Truck, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	truck, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Make != nil {
		truck.Make = *input.Make
	}
	if input.Model != nil {
		truck.Model = *input.Model
	}
	if input.Year != nil {
		truck.Year = input.Year
	}
	if input.CapacityTons != nil {
		truck.CapacityTons = input.CapacityTons
	}
	if input.Status != nil {
		switch *input.Status {
		case model.TruckStatusActive, model.TruckStatusInMaintenance, model.TruckStatusInactive:
			truck.Status = *input.Status
		default:
			return nil, ErrInvalidInput
		}
	}

	if err := s.truckRepo.Update(ctx, truck); err != nil {
		return nil, err
	}

	return truck, nil
}

// UpdateComplianceDocsInput carries new expiry dates for the three
// compliance documents. Empty string clears a date, nil leaves it alone.
type UpdateComplianceDocsInput struct {
	NTSAExpiry      *string
	InsuranceExpiry *string
	TGLExpiry       *string
}

func (s *TruckService) UpdateComplianceDocs(ctx context.Context, principal model.Principal, id string, input UpdateComplianceDocsInput) (*model.Truck, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	truck, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply := func(target **time.Time, raw *string) error {
		if raw == nil {
			return nil
		}
		if strings.TrimSpace(*raw) == "" {
			*target = nil
			return nil
		}
		parsed, err := parseDate(*raw)
		if err != nil {
			return err
		}
		*target = &parsed
		return nil
	}

	if err := apply(&truck.NTSAExpiry, input.NTSAExpiry); err != nil {
		return nil, err
	}
	if err := apply(&truck.InsuranceExpiry, input.InsuranceExpiry); err != nil {
		return nil, err
	}
	if err := apply(&truck.TGLExpiry, input.TGLExpiry); err != nil {
		return nil, err
	}

	if err := s.truckRepo.Update(ctx, truck); err != nil {
		return nil, err
	}

	return truck, nil
}

func (s *TruckService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	truckID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	return s.truckRepo.Delete(ctx, truckID)
}
