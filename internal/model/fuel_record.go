package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FuelSource string

const (
	FuelSourceStation FuelSource = "STATION"
	FuelSourceReserve FuelSource = "RESERVE"
)

type FuelRecord struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TruckID         *uuid.UUID `gorm:"type:uuid;index" json:"truck_id"`
	AttendantID     *uuid.UUID `gorm:"type:uuid" json:"attendant_id"`
	Liters          float64    `gorm:"not null" json:"liters"`
	CostPerLiter    float64    `gorm:"not null" json:"cost_per_liter"`
	TotalCost       float64    `gorm:"not null" json:"total_cost"`
	FuelDate        time.Time  `gorm:"not null;index" json:"fuel_date"`
	OdometerReading *float64   `json:"odometer_reading"`
	Source          FuelSource `gorm:"type:fuel_source;not null;default:STATION" json:"source"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FuelRecord) TableName() string {
	return "fuel_records"
}

func (f *FuelRecord) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
