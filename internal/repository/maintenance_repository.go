package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, record *model.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	var record model.MaintenanceRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, record *model.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MaintenanceRecord{}, "id = ?", id).Error
}

type MaintenanceListFilter struct {
	TruckID  *uuid.UUID
	Status   *model.MaintenanceStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

func (r *MaintenanceRepository) List(ctx context.Context, filter MaintenanceListFilter) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	query := r.db.WithContext(ctx).Model(&model.MaintenanceRecord{})

	if filter.TruckID != nil {
		query = query.Where("truck_id = ?", *filter.TruckID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("service_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("service_date <= ?", *filter.DateTo)
	}

	if err := query.Order("service_date DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *MaintenanceRepository) ListAll(ctx context.Context) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	err := r.db.WithContext(ctx).Order("service_date ASC").Find(&records).Error
	return records, err
}
