//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_test
package errand

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, errandModify entities.ErrandModify) (*entities.Errand, error)
	GetByID(ctx context.Context, id string) (*entities.Errand, error)
	ListByRole(ctx context.Context, actorID string, role entities.ActorRoleType, statusFilter []entities.ErrandStatusType) ([]entities.Errand, error)

	// CompareAndSetRunner assigns the runner and moves pending -> accepted
	// in one conditional write. Fails if the errand is no longer pending
	// or already has a runner.
	CompareAndSetRunner(ctx context.Context, id, runnerID string) (*entities.Errand, error)

	// UpdateStatus persists newStatus only while the stored status still
	// equals expectedStatus.
	UpdateStatus(ctx context.Context, id string, expectedStatus, newStatus entities.ErrandStatusType) (*entities.Errand, error)

	// ActiveByRunner returns the runner's current non-terminal errand,
	// or tracking.ErrNoActiveErrand.
	ActiveByRunner(ctx context.Context, runnerID string) (*entities.Errand, error)
}

type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// CodeMatcher performs the atomic first-claim-wins handshake for a
// transaction code.
type CodeMatcher interface {
	Claim(ctx context.Context, code, runnerID string) (*entities.Errand, error)
}

// Dispatcher fans a committed transition out to the counterparty.
// Best-effort: implementations log failures and never block the caller.
type Dispatcher interface {
	OnTransition(ctx context.Context, event entities.TransitionEvent)
}

// TrackerControl starts and stops the periodic location sampling tied to
// an errand's active window.
type TrackerControl interface {
	Start(actorID string)
	Stop(actorID string)
}

type PriceFactory interface {
	CalculatePrice(distanceKm float64) float64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
