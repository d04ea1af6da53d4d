package errand

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidErrandID       = errors.New("invalid errand id")
	ErrInvalidActorID        = errors.New("invalid actor id")
	ErrInvalidRole           = errors.New("invalid actor role")
	ErrInvalidAction         = errors.New("invalid action")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrErrandNotFound    = errors.New("errand not found")
	ErrCodeConflict      = errors.New("transaction code already in use")
	ErrInvalidTransition = errors.New("action not allowed for current status")
	ErrUnauthorizedRole  = errors.New("actor not authorized for this action")
	ErrAlreadyAccepted   = errors.New("errand already has a runner")

	// ErrStatusConflict means a concurrent writer committed first (e.g.
	// a cancel racing an accept). The caller should re-fetch and retry.
	ErrStatusConflict = errors.New("errand status changed concurrently")
)
