package entities

import (
	"time"
)

type Errand struct {
	ID              string
	Status          ErrandStatusType
	RequesterID     string
	RunnerID        *string
	Pickup          Location
	Dropoff         Location
	TransactionCode string
	PriceEstimate   float64
	DistanceKm      float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Location struct {
	Address   string
	Latitude  float64
	Longitude float64
}

type ErrandStatusType string

const (
	ErrandPending   ErrandStatusType = "pending"
	ErrandAccepted  ErrandStatusType = "accepted"
	ErrandPickedUp  ErrandStatusType = "picked_up"
	ErrandOnTheWay  ErrandStatusType = "on_the_way"
	ErrandDelivered ErrandStatusType = "delivered"
	ErrandCompleted ErrandStatusType = "completed"
	ErrandCancelled ErrandStatusType = "cancelled"
)

func (s ErrandStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are permitted.
func (s ErrandStatusType) IsTerminal() bool {
	return s == ErrandCompleted || s == ErrandCancelled
}

type ErrandActionType string

const (
	ActionAccept        ErrandActionType = "accept"
	ActionCancel        ErrandActionType = "cancel"
	ActionMarkPickedUp  ErrandActionType = "mark_picked_up"
	ActionStartDelivery ErrandActionType = "start_delivery"
	ActionMarkDelivered ErrandActionType = "mark_delivered"
	ActionComplete      ErrandActionType = "complete"
)

func (a ErrandActionType) String() string {
	return string(a)
}

type ActorRoleType string

const (
	RoleRequester ActorRoleType = "requester"
	RoleRunner    ActorRoleType = "runner"
)

func (r ActorRoleType) String() string {
	return string(r)
}

type ErrandModify struct {
	ID              *string
	Status          *ErrandStatusType
	RequesterID     *string
	RunnerID        *string
	Pickup          *Location
	Dropoff         *Location
	TransactionCode *string
	PriceEstimate   *float64
	DistanceKm      *float64
}

// TransitionEvent describes a committed status change. It carries enough
// context for the notification dispatcher to resolve the counterparty
// without re-reading the errand.
type TransitionEvent struct {
	ErrandID      string
	From          ErrandStatusType
	To            ErrandStatusType
	InitiatorID   string
	InitiatorRole ActorRoleType
	RequesterID   string
	RunnerID      *string
	OccurredAt    time.Time
}
