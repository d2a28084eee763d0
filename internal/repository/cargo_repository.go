package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type CargoRepository struct {
	db *gorm.DB
}

func NewCargoRepository(db *gorm.DB) *CargoRepository {
	return &CargoRepository{db: db}
}

func (r *CargoRepository) Create(ctx context.Context, item *model.CargoItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CargoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CargoItem, error) {
	var item model.CargoItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CargoRepository) Update(ctx context.Context, item *model.CargoItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *CargoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CargoItem{}, "id = ?", id).Error
}

func (r *CargoRepository) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]model.CargoItem, error) {
	var items []model.CargoItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
