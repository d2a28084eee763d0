package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TripStatus string

const (
	TripStatusPlanned    TripStatus = "PLANNED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
)

// CanTransitionTo enforces the forward-only trip lifecycle:
// PLANNED -> IN_PROGRESS -> COMPLETED. Status never moves backwards
// and is never inferred from timestamps.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	switch s {
	case TripStatusPlanned:
		return next == TripStatusInProgress
	case TripStatusInProgress:
		return next == TripStatusCompleted
	default:
		return false
	}
}

type Trip struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TripNumber           string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"trip_number"`
	TruckID              *uuid.UUID `gorm:"type:uuid;index" json:"truck_id"`
	DriverID             *uuid.UUID `gorm:"type:uuid;index" json:"driver_id"`
	Origin               string     `gorm:"type:varchar(128);not null" json:"origin"`
	Destination          string     `gorm:"type:varchar(128);not null" json:"destination"`
	DistanceKM           *float64   `gorm:"column:distance_km" json:"distance_km"`
	Status               TripStatus `gorm:"type:trip_status;not null;default:PLANNED" json:"status"`
	PlannedDeparture     time.Time  `gorm:"not null" json:"planned_departure"`
	PlannedArrival       time.Time  `gorm:"not null" json:"planned_arrival"`
	ActualDeparture      *time.Time `json:"actual_departure"`
	ActualArrival        *time.Time `json:"actual_arrival"`
	CargoValueUSD        *float64   `gorm:"column:cargo_value_usd" json:"cargo_value_usd"`
	FuelCost             *float64   `json:"fuel_cost"`
	TollCost             *float64   `json:"toll_cost"`
	OtherExpenses        *float64   `json:"other_expenses"`
	EstimatedWearTearKSH *float64   `gorm:"column:estimated_wear_tear_ksh" json:"estimated_wear_tear_ksh"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trip) TableName() string {
	return "trips"
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
