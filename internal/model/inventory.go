package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name         string    `gorm:"type:varchar(128);not null" json:"name"`
	PartNumber   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"part_number"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity"`
	UnitCostKSH  float64   `gorm:"column:unit_cost_ksh;not null;default:0" json:"unit_cost_ksh"`
	ReorderLevel int       `gorm:"not null;default:0" json:"reorder_level"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// LowStock reports whether the item has dropped to its reorder level.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.ReorderLevel
}
