package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReserveTank is the depot fuel store. Its level only moves through
// refill records and RESERVE-sourced fuel records.
type ReserveTank struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name               string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	CapacityLiters     float64   `gorm:"not null" json:"capacity_liters"`
	CurrentLevelLiters float64   `gorm:"not null;default:0" json:"current_level_liters"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReserveTank) TableName() string {
	return "reserve_tanks"
}

func (t *ReserveTank) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TankRefill struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TankID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"tank_id"`
	Liters       float64    `gorm:"not null" json:"liters"`
	CostPerLiter float64    `gorm:"not null" json:"cost_per_liter"`
	TotalCost    float64    `gorm:"not null" json:"total_cost"`
	Supplier     *string    `gorm:"type:varchar(128)" json:"supplier"`
	RefilledAt   time.Time  `gorm:"not null" json:"refilled_at"`
	RecordedBy   *uuid.UUID `gorm:"type:uuid" json:"recorded_by"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (TankRefill) TableName() string {
	return "tank_refills"
}

func (r *TankRefill) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
