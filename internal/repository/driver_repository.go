package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *DriverRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var driver model.Driver
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&driver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) Update(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Driver{}, "id = ?", id).Error
}

type DriverListFilter struct {
	Status  *model.DriverStatus
	TruckID *uuid.UUID
}

func (r *DriverRepository) List(ctx context.Context, filter DriverListFilter) ([]model.Driver, error) {
	var drivers []model.Driver
	query := r.db.WithContext(ctx).Model(&model.Driver{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.TruckID != nil {
		query = query.Where("assigned_truck_id = ?", *filter.TruckID)
	}

	if err := query.Order("full_name ASC").Find(&drivers).Error; err != nil {
		return nil, err
	}

	return drivers, nil
}
