package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DriverStatus string

const (
	DriverStatusActive    DriverStatus = "ACTIVE"
	DriverStatusOnLeave   DriverStatus = "ON_LEAVE"
	DriverStatusSuspended DriverStatus = "SUSPENDED"
)

type Driver struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	FullName        string       `gorm:"type:varchar(128);not null" json:"full_name"`
	Phone           string       `gorm:"type:varchar(32)" json:"phone"`
	LicenseNumber   string       `gorm:"type:varchar(64);uniqueIndex;not null" json:"license_number"`
	LicenseExpiry   *time.Time   `json:"license_expiry"`
	Status          DriverStatus `gorm:"type:driver_status;not null;default:ACTIVE" json:"status"`
	AssignedTruckID *uuid.UUID   `gorm:"type:uuid;index" json:"assigned_truck_id"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Driver) TableName() string {
	return "drivers"
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
