package tracking_sweep

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	SweepInactive(ctx context.Context) (int64, error)
}

type TrackingSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTrackingSweep(log logger.Logger, service Service, interval time.Duration) *TrackingSweep {
	return &TrackingSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TrackingSweep) TTL() time.Duration {
	return t.interval
}

func (t *TrackingSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	stopped, err := t.service.SweepInactive(ctxWithTimeout)

	if stopped > 0 {
		t.log.With(
			logger.NewField("stopped_trackers", stopped),
		).Info("tracking sweep")
	}

	return err
}

func (t *TrackingSweep) Info() string {
	return "tracking sweep"
}
