package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleDriver        Role = "DRIVER"
	RoleFuelAttendant Role = "FUEL_ATTENDANT"
)

// Principal is the authenticated caller extracted from the access token.
// Identity issuing lives in the external auth service; this service only
// verifies tokens and scopes queries by role.
type Principal struct {
	UserID   uuid.UUID
	Role     Role
	DriverID *uuid.UUID
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsDriver() bool {
	return p.Role == RoleDriver
}

func (p Principal) IsFuelAttendant() bool {
	return p.Role == RoleFuelAttendant
}
