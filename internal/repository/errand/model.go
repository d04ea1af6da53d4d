package errand

import "time"

type ErrandDB struct {
	ID              string
	Status          string
	RequesterID     string
	RunnerID        *string
	PickupAddress   string
	PickupLat       float64
	PickupLon       float64
	DropoffAddress  string
	DropoffLat      float64
	DropoffLon      float64
	TransactionCode string
	PriceEstimate   float64
	DistanceKm      float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ErrandModifyDB struct {
	ID              *string
	Status          *string
	RequesterID     *string
	RunnerID        *string
	PickupAddress   *string
	PickupLat       *float64
	PickupLon       *float64
	DropoffAddress  *string
	DropoffLat      *float64
	DropoffLon      *float64
	TransactionCode *string
	PriceEstimate   *float64
	DistanceKm      *float64
}
