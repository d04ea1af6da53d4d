package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"service/internal/entities"
	"service/internal/service/tracking"
)

const keyPrefix = "actor_location:"

// Store keeps only the latest position per actor. Writes overwrite
// unconditionally (latest-write-wins) and carry a TTL so stale actors
// disappear on their own; there is no position history.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

type positionRecord struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
	SampledAt time.Time `json:"sampled_at"`
}

func (s *Store) SetActorLocation(ctx context.Context, position entities.ActorPosition) error {
	record := positionRecord{
		Latitude:  position.Coordinates.Latitude,
		Longitude: position.Coordinates.Longitude,
		SampledAt: position.SampledAt,
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal position: %w", err)
	}

	err = s.client.Set(ctx, keyPrefix+position.ActorID, payload, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("unexpected location store set error: %w", err)
	}

	return nil
}

func (s *Store) GetActorLocation(ctx context.Context, actorID string) (entities.ActorPosition, error) {
	payload, err := s.client.Get(ctx, keyPrefix+actorID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.ActorPosition{}, tracking.ErrPositionNotFound
		}
		return entities.ActorPosition{}, fmt.Errorf("unexpected location store get error: %w", err)
	}

	var record positionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return entities.ActorPosition{}, fmt.Errorf("unmarshal position: %w", err)
	}

	return entities.ActorPosition{
		ActorID: actorID,
		Coordinates: entities.GeoPoint{
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		},
		SampledAt: record.SampledAt,
	}, nil
}

// CurrentPosition lets the store double as the tracker's position
// source: the sampling loop re-reads the last device-reported position.
func (s *Store) CurrentPosition(ctx context.Context, actorID string) (entities.ActorPosition, error) {
	return s.GetActorLocation(ctx, actorID)
}
