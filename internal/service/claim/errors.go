package claim

import "errors"

var (
	ErrInvalidCode     = errors.New("invalid transaction code")
	ErrInvalidRunnerID = errors.New("invalid runner id")

	ErrCodeNotFound = errors.New("no claimable errand for this code")
	// ErrAlreadyClaimed means another runner won the concurrent claim.
	ErrAlreadyClaimed     = errors.New("errand already claimed")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique transaction code")
)
