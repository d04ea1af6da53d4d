package tracking

import "errors"

var (
	ErrInvalidActorID     = errors.New("invalid actor id")
	ErrInvalidErrandID    = errors.New("invalid errand id")
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	ErrPositionNotFound = errors.New("no position published for actor")
	ErrNoActiveErrand   = errors.New("runner has no active errand")
	ErrNotTracking      = errors.New("errand is not being tracked")
)
