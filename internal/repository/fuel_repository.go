package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type FuelRepository struct {
	db *gorm.DB
}

func NewFuelRepository(db *gorm.DB) *FuelRepository {
	return &FuelRepository{db: db}
}

func (r *FuelRepository) Create(ctx context.Context, record *model.FuelRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FuelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FuelRecord, error) {
	var record model.FuelRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *FuelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FuelRecord{}, "id = ?", id).Error
}

type FuelListFilter struct {
	TruckID  *uuid.UUID
	Source   *model.FuelSource
	DateFrom *time.Time
	DateTo   *time.Time
}

func (r *FuelRepository) List(ctx context.Context, filter FuelListFilter) ([]model.FuelRecord, error) {
	var records []model.FuelRecord
	query := r.db.WithContext(ctx).Model(&model.FuelRecord{})

	if filter.TruckID != nil {
		query = query.Where("truck_id = ?", *filter.TruckID)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}
	if filter.DateFrom != nil {
		query = query.Where("fuel_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("fuel_date <= ?", *filter.DateTo)
	}

	if err := query.Order("fuel_date DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *FuelRepository) ListAll(ctx context.Context) ([]model.FuelRecord, error) {
	var records []model.FuelRecord
	err := r.db.WithContext(ctx).Order("fuel_date ASC").Find(&records).Error
	return records, err
}
