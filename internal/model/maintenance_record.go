package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatus = "COMPLETED"
)

// ServiceType splits maintenance spend into routine servicing vs repairs
// for reporting. Rows with any other value fall into neither bucket.
type ServiceType string

const (
	ServiceTypeServicing   ServiceType = "servicing"
	ServiceTypeMaintenance ServiceType = "maintenance"
)

type MaintenanceRecord struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TruckID          *uuid.UUID                  `gorm:"type:uuid;index" json:"truck_id"`
	MaintenanceTypes datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"maintenance_types"`
	ServiceType      *ServiceType                `gorm:"type:varchar(32)" json:"service_type"`
	ServiceDate      time.Time                   `gorm:"not null;index" json:"service_date"`
	Cost             float64                     `gorm:"not null;default:0" json:"cost"`
	Status           MaintenanceStatus           `gorm:"type:maintenance_status;not null;default:SCHEDULED" json:"status"`
	Technician       *string                     `gorm:"type:varchar(128)" json:"technician"`
	Provider         *string                     `gorm:"type:varchar(128)" json:"provider"`
	ItemsPurchased   *string                     `gorm:"type:text" json:"items_purchased"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

func (m *MaintenanceRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
