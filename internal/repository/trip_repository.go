package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) Update(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Trip{}, "id = ?", id).Error
}

type TripListFilter struct {
	Status        *model.TripStatus
	TruckID       *uuid.UUID
	DriverID      *uuid.UUID
	DepartureFrom *time.Time
	DepartureTo   *time.Time
}

func (r *TripRepository) List(ctx context.Context, filter TripListFilter) ([]model.Trip, error) {
	var trips []model.Trip
	query := r.db.WithContext(ctx).Model(&model.Trip{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.TruckID != nil {
		query = query.Where("truck_id = ?", *filter.TruckID)
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.DepartureFrom != nil {
		query = query.Where("planned_departure >= ?", *filter.DepartureFrom)
	}
	if filter.DepartureTo != nil {
		query = query.Where("planned_departure <= ?", *filter.DepartureTo)
	}

	if err := query.Order("planned_departure DESC").Find(&trips).Error; err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *TripRepository) ListAll(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).Order("planned_departure ASC").Find(&trips).Error
	return trips, err
}
