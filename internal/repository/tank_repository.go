package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TankRepository struct {
	db *gorm.DB
}

func NewTankRepository(db *gorm.DB) *TankRepository {
	return &TankRepository{db: db}
}

func (r *TankRepository) Create(ctx context.Context, tank *model.ReserveTank) error {
	return r.db.WithContext(ctx).Create(tank).Error
}

func (r *TankRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ReserveTank, error) {
	var tank model.ReserveTank
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &tank, nil
}

func (r *TankRepository) List(ctx context.Context) ([]model.ReserveTank, error) {
	var tanks []model.ReserveTank
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tanks).Error
	return tanks, err
}

// AdjustLevel applies a signed delta to the tank level inside the
// current transaction scope.
func (r *TankRepository) AdjustLevel(ctx context.Context, id uuid.UUID, deltaLiters float64) error {
	return r.db.WithContext(ctx).Model(&model.ReserveTank{}).
		Where("id = ?", id).
		Update("current_level_liters", gorm.Expr("current_level_liters + ?", deltaLiters)).Error
}

func (r *TankRepository) CreateRefill(ctx context.Context, refill *model.TankRefill) error {
	return r.db.WithContext(ctx).Create(refill).Error
}

func (r *TankRepository) ListRefills(ctx context.Context, tankID uuid.UUID) ([]model.TankRefill, error) {
	var refills []model.TankRefill
	err := r.db.WithContext(ctx).
		Where("tank_id = ?", tankID).
		Order("refilled_at DESC").
		Find(&refills).Error
	return refills, err
}
