package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CargoItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TripID      uuid.UUID `gorm:"type:uuid;not null;index" json:"trip_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	WeightTons  *float64  `json:"weight_tons"`
	ValueUSD    *float64  `gorm:"column:value_usd" json:"value_usd"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CargoItem) TableName() string {
	return "cargo_items"
}

func (c *CargoItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
