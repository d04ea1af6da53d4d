package errand

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"service/internal/entities"
	"service/internal/pkg/geo"
	"service/internal/service/tracking"
)

// Errand coordinates the lifecycle: it validates actions through the pure
// transition table, persists the new status with conditional writes and
// fans the committed event out to the dispatcher and the tracker.
type Errand struct {
	repository    Repository
	codeGenerator CodeGenerator
	codeMatcher   CodeMatcher
	dispatcher    Dispatcher
	tracker       TrackerControl
	priceFactory  PriceFactory
	txManager     TxManager
}

func New(
	repository Repository,
	codeGenerator CodeGenerator,
	codeMatcher CodeMatcher,
	dispatcher Dispatcher,
	tracker TrackerControl,
	priceFactory PriceFactory,
	txManager TxManager,
) *Errand {
	return &Errand{
		repository:    repository,
		codeGenerator: codeGenerator,
		codeMatcher:   codeMatcher,
		dispatcher:    dispatcher,
		tracker:       tracker,
		priceFactory:  priceFactory,
		txManager:     txManager,
	}
}

func (e *Errand) CreateErrand(ctx context.Context, errandModify entities.ErrandModify) (*entities.Errand, error) {
	if errandModify.RequesterID == nil ||
		errandModify.Pickup == nil ||
		errandModify.Dropoff == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidID(*errandModify.RequesterID) {
		return nil, ErrInvalidActorID
	}
	if !isValidLocation(errandModify.Pickup) || !isValidLocation(errandModify.Dropoff) {
		return nil, ErrInvalidLocation
	}

	code, err := e.codeGenerator.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate transaction code: %w", err)
	}

	distanceKm := geo.DistanceKm(
		entities.GeoPoint{Latitude: errandModify.Pickup.Latitude, Longitude: errandModify.Pickup.Longitude},
		entities.GeoPoint{Latitude: errandModify.Dropoff.Latitude, Longitude: errandModify.Dropoff.Longitude},
	)
	price := e.priceFactory.CalculatePrice(distanceKm)

	id := uuid.NewString()
	status := entities.ErrandPending

	errandModify.ID = &id
	errandModify.Status = &status
	errandModify.TransactionCode = &code
	errandModify.DistanceKm = &distanceKm
	errandModify.PriceEstimate = &price
	errandModify.RunnerID = nil

	created, err := e.repository.Create(ctx, errandModify)
	if err != nil {
		return nil, fmt.Errorf("create errand: %w", err)
	}

	return created, nil
}

// ExecuteTransition applies a lifecycle action on behalf of an actor.
// The status write is conditional on the status observed inside the
// transaction, so two concurrent actors cannot both win: the loser gets
// ErrStatusConflict (or ErrAlreadyAccepted for a lost claim) and must
// re-fetch.
func (e *Errand) ExecuteTransition(
	ctx context.Context,
	errandID string,
	action entities.ErrandActionType,
	actorID string,
	role entities.ActorRoleType,
) (*entities.Errand, error) {
	if !isValidID(errandID) {
		return nil, ErrInvalidErrandID
	}
	if !isValidID(actorID) {
		return nil, ErrInvalidActorID
	}
	if !isValidRole(role) {
		return nil, ErrInvalidRole
	}
	if !isValidAction(action) {
		return nil, ErrInvalidAction
	}

	var (
		updated *entities.Errand
		event   entities.TransitionEvent
	)

	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := e.repository.GetByID(ctx, errandID)
		if err != nil {
			return fmt.Errorf("get errand: %w", err)
		}

		result, err := Transition(current, action, role, actorID)
		if err != nil {
			return err
		}

		if result.RunnerIDToSet != nil {
			updated, err = e.repository.CompareAndSetRunner(ctx, errandID, *result.RunnerIDToSet)
		} else {
			updated, err = e.repository.UpdateStatus(ctx, errandID, current.Status, result.NextStatus)
		}
		if err != nil {
			return fmt.Errorf("persist transition: %w", err)
		}

		event = entities.TransitionEvent{
			ErrandID:      errandID,
			From:          current.Status,
			To:            updated.Status,
			InitiatorID:   actorID,
			InitiatorRole: role,
			RequesterID:   updated.RequesterID,
			RunnerID:      updated.RunnerID,
			OccurredAt:    time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.afterTransition(ctx, event)

	return updated, nil
}

// ClaimByCode lets a runner take ownership of a pending errand by
// submitting its transaction code. The claim itself is atomic inside the
// matcher; the notification and tracker start happen after commit.
func (e *Errand) ClaimByCode(ctx context.Context, code, runnerID string) (*entities.Errand, error) {
	if !isValidID(runnerID) {
		return nil, ErrInvalidActorID
	}

	claimed, err := e.codeMatcher.Claim(ctx, code, runnerID)
	if err != nil {
		return nil, err
	}

	e.afterTransition(ctx, entities.TransitionEvent{
		ErrandID:      claimed.ID,
		From:          entities.ErrandPending,
		To:            claimed.Status,
		InitiatorID:   runnerID,
		InitiatorRole: entities.RoleRunner,
		RequesterID:   claimed.RequesterID,
		RunnerID:      claimed.RunnerID,
		OccurredAt:    time.Now().UTC(),
	})

	return claimed, nil
}

func (e *Errand) GetErrand(ctx context.Context, id string) (*entities.Errand, error) {
	if !isValidID(id) {
		return nil, ErrInvalidErrandID
	}

	found, err := e.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get errand: %w", err)
	}
	return found, nil
}

func (e *Errand) ListErrands(
	ctx context.Context,
	actorID string,
	role entities.ActorRoleType,
	statusFilter []entities.ErrandStatusType,
) ([]entities.Errand, error) {
	if !isValidID(actorID) {
		return nil, ErrInvalidActorID
	}
	if !isValidRole(role) {
		return nil, ErrInvalidRole
	}

	errands, err := e.repository.ListByRole(ctx, actorID, role, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("list errands: %w", err)
	}
	return errands, nil
}

// afterTransition runs outside the transactional boundary: notification
// delivery and tracker lifecycle must never roll back a committed status.
func (e *Errand) afterTransition(ctx context.Context, event entities.TransitionEvent) {
	e.dispatcher.OnTransition(ctx, event)

	if event.RunnerID == nil {
		return
	}

	switch {
	case event.To == entities.ErrandAccepted:
		e.tracker.Start(*event.RunnerID)
	case event.To.IsTerminal():
		// The runner may still be on another errand; sampling stops
		// only once the last active one goes terminal.
		_, err := e.repository.ActiveByRunner(ctx, *event.RunnerID)
		if errors.Is(err, tracking.ErrNoActiveErrand) {
			e.tracker.Stop(*event.RunnerID)
		}
		// On a lookup failure the tracker keeps running; the sweep
		// task stops it later if the errand really was the last one.
	}
}
