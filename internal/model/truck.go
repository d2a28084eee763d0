package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TruckStatus string

const (
	TruckStatusActive        TruckStatus = "ACTIVE"
	TruckStatusInMaintenance TruckStatus = "IN_MAINTENANCE"
	TruckStatusInactive      TruckStatus = "INACTIVE"
)

type Truck struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TruckNumber     string      `gorm:"type:varchar(32);uniqueIndex;not null" json:"truck_number"`
	Make            string      `gorm:"type:varchar(64)" json:"make"`
	Model           string      `gorm:"type:varchar(64)" json:"model"`
	Year            *int        `json:"year"`
	CapacityTons    *float64    `json:"capacity_tons"`
	Status          TruckStatus `gorm:"type:truck_status;not null;default:ACTIVE" json:"status"`
	NTSAExpiry      *time.Time  `gorm:"column:ntsa_expiry" json:"ntsa_expiry"`
	InsuranceExpiry *time.Time  `json:"insurance_expiry"`
	TGLExpiry       *time.Time  `gorm:"column:tgl_expiry" json:"tgl_expiry"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Truck) TableName() string {
	return "trucks"
}

func (t *Truck) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
