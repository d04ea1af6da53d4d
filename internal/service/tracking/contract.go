//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// PositionSource yields the current position of an actor. In production
// this is backed by the location store fed by device reports; tests and
// simulations supply their own.
type PositionSource interface {
	CurrentPosition(ctx context.Context, actorID string) (entities.ActorPosition, error)
}

// LocationStore keeps the latest position per actor, latest-write-wins,
// no history.
type LocationStore interface {
	SetActorLocation(ctx context.Context, position entities.ActorPosition) error
	GetActorLocation(ctx context.Context, actorID string) (entities.ActorPosition, error)
}

type ErrandProvider interface {
	GetByID(ctx context.Context, id string) (*entities.Errand, error)

	// ActiveByRunner returns the runner's current non-terminal errand,
	// or ErrNoActiveErrand.
	ActiveByRunner(ctx context.Context, runnerID string) (*entities.Errand, error)
}
