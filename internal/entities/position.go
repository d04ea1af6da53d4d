package entities

import "time"

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// ActorPosition is ephemeral: the location store keeps only the latest
// sample per actor, no history.
type ActorPosition struct {
	ActorID     string
	Coordinates GeoPoint
	SampledAt   time.Time
}

// TrackingUpdate is pushed to subscribers after every position publish
// for a runner with an active errand.
type TrackingUpdate struct {
	ErrandID   string
	RunnerID   string
	Position   GeoPoint
	Anchor     Location
	DistanceKm float64
	EtaMinutes int
	ComputedAt time.Time
}
