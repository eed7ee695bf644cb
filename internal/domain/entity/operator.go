package entity

import (
	"time"

	"github.com/google/uuid"
)

// OperatorStatus is the availability state of a field operator.
type OperatorStatus string

const (
	OperatorAvailable OperatorStatus = "available"
	OperatorBusy      OperatorStatus = "busy"
	OperatorOffline   OperatorStatus = "offline"
)

// Operator is a mobile field worker with one vehicle. The planning
// engine treats operator records as read-only input for a planning run;
// they are owned by the fleet-management subsystem.
type Operator struct {
	ID              uuid.UUID
	Name            string
	Phone           string
	VehicleName     string
	Status          OperatorStatus
	CurrentLocation Coordinate
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
