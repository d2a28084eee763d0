package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TruckRepository struct {
	db *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) Create(ctx context.Context, truck *model.Truck) error {
	return r.db.WithContext(ctx).Create(truck).Error
}

func (r *TruckRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Truck, error) {
	var truck model.Truck
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&truck).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &truck, nil
}

func (r *TruckRepository) GetByNumber(ctx context.Context, truckNumber string) (*model.Truck, error) {
	if truckNumber == "" {
		return nil, nil
	}
	var truck model.Truck
	err := r.db.WithContext(ctx).Where("truck_number = ?", truckNumber).First(&truck).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &truck, nil
}

func (r *TruckRepository) Update(ctx context.Context, truck *model.Truck) error {
	return r.db.WithContext(ctx).Save(truck).Error
}

func (r *TruckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Truck{}, "id = ?", id).Error
}

type TruckListFilter struct {
	Status *model.TruckStatus
}

func (r *TruckRepository) List(ctx context.Context, filter TruckListFilter) ([]model.Truck, error) {
	var trucks []model.Truck
	query := r.db.WithContext(ctx).Model(&model.Truck{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Order("truck_number ASC").Find(&trucks).Error; err != nil {
		return nil, err
	}

	return trucks, nil
}
