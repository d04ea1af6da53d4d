package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"service/internal/entities"
	"service/internal/pkg/geo"
	"service/pkg/logger"
)

// Tracking runs one periodic sampling loop per actor with an active
// errand. Every tick reads the actor's current position, publishes it to
// the location store and recomputes distance/ETA against the anchor of
// the active errand. Ticks are fire-and-forget: a failed read or publish
// drops that sample, nothing is queued or retried.
type Tracking struct {
	log     handlerLogger
	source  PositionSource
	store   LocationStore
	errands ErrandProvider

	activeInterval time.Duration
	avgSpeedKmh    float64

	baseCtx context.Context

	mu          sync.Mutex
	trackers    map[string]context.CancelFunc
	subscribers map[string]map[int]chan entities.TrackingUpdate
	nextSubID   int
}

func New(
	ctx context.Context,
	log handlerLogger,
	source PositionSource,
	store LocationStore,
	errands ErrandProvider,
	activeInterval time.Duration,
	avgSpeedKmh float64,
) *Tracking {
	return &Tracking{
		log:            log.With(),
		source:         source,
		store:          store,
		errands:        errands,
		activeInterval: activeInterval,
		avgSpeedKmh:    avgSpeedKmh,
		baseCtx:        ctx,
		trackers:       make(map[string]context.CancelFunc),
		subscribers:    make(map[string]map[int]chan entities.TrackingUpdate),
	}
}

// Start begins periodic sampling for the actor. Starting an already
// tracked actor is a no-op, so a runner with two claims keeps one loop.
func (t *Tracking) Start(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.trackers[actorID]; exists {
		return
	}

	ctx, cancel := context.WithCancel(t.baseCtx)
	t.trackers[actorID] = cancel

	go t.runSamplingLoop(ctx, actorID)

	t.log.Info("tracking started",
		logger.NewField("actor", actorID),
		logger.NewField("interval", t.activeInterval),
	)
}

// Stop cancels the actor's sampling loop. Must be called when the
// actor's last active errand reaches a terminal state.
func (t *Tracking) Stop(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cancel, exists := t.trackers[actorID]
	if !exists {
		return
	}

	cancel()
	delete(t.trackers, actorID)

	t.log.Info("tracking stopped", logger.NewField("actor", actorID))
}

// PublishPosition is the direct path for device-reported positions. The
// store write is authoritative; recomputation and fan-out are best-effort.
func (t *Tracking) PublishPosition(ctx context.Context, position entities.ActorPosition) error {
	if err := validatePosition(position); err != nil {
		return err
	}

	if position.SampledAt.IsZero() {
		position.SampledAt = time.Now().UTC()
	}

	if err := t.store.SetActorLocation(ctx, position); err != nil {
		return fmt.Errorf("publish position: %w", err)
	}

	t.recompute(ctx, position)
	return nil
}

// Snapshot computes the current distance/ETA view for an errand from the
// latest published runner position.
func (t *Tracking) Snapshot(ctx context.Context, errandID string) (*entities.TrackingUpdate, error) {
	if errandID == "" {
		return nil, ErrInvalidErrandID
	}

	errand, err := t.errands.GetByID(ctx, errandID)
	if err != nil {
		return nil, fmt.Errorf("get errand: %w", err)
	}

	if errand.RunnerID == nil || errand.Status.IsTerminal() {
		return nil, ErrNotTracking
	}

	position, err := t.store.GetActorLocation(ctx, *errand.RunnerID)
	if err != nil {
		return nil, fmt.Errorf("get runner position: %w", err)
	}

	update := t.buildUpdate(errand, position)
	return &update, nil
}

// Subscribe returns a channel of tracking updates for the errand and an
// unsubscribe function. Slow consumers lose updates instead of blocking
// the sampling loop.
func (t *Tracking) Subscribe(errandID string) (<-chan entities.TrackingUpdate, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan entities.TrackingUpdate, 8)

	if t.subscribers[errandID] == nil {
		t.subscribers[errandID] = make(map[int]chan entities.TrackingUpdate)
	}
	id := t.nextSubID
	t.nextSubID++
	t.subscribers[errandID][id] = ch

	unsubscribe := func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		if subs, ok := t.subscribers[errandID]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(t.subscribers, errandID)
			}
		}
	}

	return ch, unsubscribe
}

// SweepInactive stops loops for actors who no longer have an active
// errand. Safety net behind the coordinator's explicit Stop calls.
func (t *Tracking) SweepInactive(ctx context.Context) (int64, error) {
	t.mu.Lock()
	tracked := make([]string, 0, len(t.trackers))
	for actorID := range t.trackers {
		tracked = append(tracked, actorID)
	}
	t.mu.Unlock()

	var stopped int64
	for _, actorID := range tracked {
		_, err := t.errands.ActiveByRunner(ctx, actorID)
		switch {
		case err == nil:
			continue
		case errors.Is(err, ErrNoActiveErrand):
			t.Stop(actorID)
			stopped++
		default:
			return stopped, fmt.Errorf("sweep actor %s: %w", actorID, err)
		}
	}

	return stopped, nil
}

func (t *Tracking) runSamplingLoop(ctx context.Context, actorID string) {
	ticker := time.NewTicker(t.activeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.sampleOnce(ctx, actorID)
		}
	}
}

func (t *Tracking) sampleOnce(ctx context.Context, actorID string) {
	position, err := t.source.CurrentPosition(ctx, actorID)
	if err != nil {
		// Sample dropped; only the latest successfully published
		// position matters.
		t.log.Warn("position read failed, sample dropped",
			logger.NewField("actor", actorID),
			logger.NewField("error", err),
		)
		return
	}

	if err := t.store.SetActorLocation(ctx, position); err != nil {
		t.log.Warn("position publish failed, sample dropped",
			logger.NewField("actor", actorID),
			logger.NewField("error", err),
		)
		return
	}

	t.recompute(ctx, position)
}

func (t *Tracking) recompute(ctx context.Context, position entities.ActorPosition) {
	errand, err := t.errands.ActiveByRunner(ctx, position.ActorID)
	if err != nil {
		if !errors.Is(err, ErrNoActiveErrand) {
			t.log.Warn("active errand lookup failed",
				logger.NewField("actor", position.ActorID),
				logger.NewField("error", err),
			)
		}
		return
	}

	t.notify(t.buildUpdate(errand, position))
}

func (t *Tracking) buildUpdate(errand *entities.Errand, position entities.ActorPosition) entities.TrackingUpdate {
	anchor := geo.Anchor(errand)
	distanceKm := geo.DistanceKm(position.Coordinates, entities.GeoPoint{
		Latitude:  anchor.Latitude,
		Longitude: anchor.Longitude,
	})

	runnerID := position.ActorID

	return entities.TrackingUpdate{
		ErrandID:   errand.ID,
		RunnerID:   runnerID,
		Position:   position.Coordinates,
		Anchor:     anchor,
		DistanceKm: distanceKm,
		EtaMinutes: geo.EtaMinutes(distanceKm, t.avgSpeedKmh),
		ComputedAt: time.Now().UTC(),
	}
}

func (t *Tracking) notify(update entities.TrackingUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, ch := range t.subscribers[update.ErrandID] {
		select {
		case ch <- update:
		default:
		}
	}
}

func validatePosition(position entities.ActorPosition) error {
	if position.ActorID == "" {
		return ErrInvalidActorID
	}
	if position.Coordinates.Latitude < -90 || position.Coordinates.Latitude > 90 {
		return ErrInvalidCoordinates
	}
	if position.Coordinates.Longitude < -180 || position.Coordinates.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
