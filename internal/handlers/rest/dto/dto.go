// Package dto описывает JSON-схемы HTTP-поверхности.
package dto

import (
	"time"

	"service/internal/entities"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Errand struct {
	ID              string    `json:"ID"`
	Status          string    `json:"status"`
	RequesterID     string    `json:"requester_ID"`
	RunnerID        *string   `json:"runner_ID,omitempty"`
	Pickup          Location  `json:"pickup"`
	Dropoff         Location  `json:"dropoff"`
	TransactionCode string    `json:"transaction_code"`
	PriceEstimate   float64   `json:"price_estimate"`
	DistanceKm      float64   `json:"distance_km"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ErrandCreate struct {
	RequesterID string   `json:"requester_ID"`
	Pickup      Location `json:"pickup"`
	Dropoff     Location `json:"dropoff"`
}

type ErrandClaim struct {
	Code     string `json:"code"`
	RunnerID string `json:"runner_ID"`
}

type ErrandTransition struct {
	Action  string `json:"action"`
	ActorID string `json:"actor_ID"`
	Role    string `json:"role"`
}

type Tracking struct {
	ErrandID   string    `json:"errand_ID"`
	RunnerID   string    `json:"runner_ID"`
	Position   GeoPoint  `json:"position"`
	Anchor     Location  `json:"anchor"`
	DistanceKm float64   `json:"distance_km"`
	Distance   string    `json:"distance"`
	EtaMinutes int       `json:"eta_minutes"`
	ComputedAt time.Time `json:"computed_at"`
}

type LocationPublish struct {
	ActorID   string     `json:"actor_ID"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	SampledAt *time.Time `json:"sampled_at,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Notification struct {
	ID          string    `json:"ID"`
	RecipientID string    `json:"recipient_ID"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Type        string    `json:"type"`
	Read        bool      `json:"read"`
	ErrandID    string    `json:"errand_ID"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewErrand переводит сущность в транспортную схему.
func NewErrand(errand entities.Errand) Errand {
	return Errand{
		ID:          errand.ID,
		Status:      errand.Status.String(),
		RequesterID: errand.RequesterID,
		RunnerID:    errand.RunnerID,
		Pickup: Location{
			Latitude:  errand.Pickup.Latitude,
			Longitude: errand.Pickup.Longitude,
			Address:   errand.Pickup.Address,
		},
		Dropoff: Location{
			Latitude:  errand.Dropoff.Latitude,
			Longitude: errand.Dropoff.Longitude,
			Address:   errand.Dropoff.Address,
		},
		TransactionCode: errand.TransactionCode,
		PriceEstimate:   errand.PriceEstimate,
		DistanceKm:      errand.DistanceKm,
		CreatedAt:       errand.CreatedAt,
		UpdatedAt:       errand.UpdatedAt,
	}
}
