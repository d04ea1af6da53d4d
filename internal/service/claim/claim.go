package claim

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"service/internal/entities"
)

const (
	codeLength  = 6
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// maxGenerateAttempts bounds the collision retry loop. With a 36^6
	// code space collisions are rare; hitting the bound means the
	// non-terminal errand population is pathologically large.
	maxGenerateAttempts = 5
)

// Claim issues transaction codes and performs the atomic
// first-claim-wins handshake that assigns a runner to a pending errand.
type Claim struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Claim {
	return &Claim{
		repository: repository,
		txManager:  txManager,
	}
}

// Generate produces a 6-character uppercase alphanumeric code that is not
// used by any non-terminal errand. Codes of completed or cancelled
// errands are recyclable.
func (c *Claim) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}

		inUse, err := c.repository.CodeInUse(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code collision: %w", err)
		}
		if !inUse {
			return code, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}

// Claim resolves the code to its unique non-terminal errand and assigns
// the runner with a conditional write. If two runners submit the same
// code concurrently, exactly one write lands; the loser observes zero
// affected rows and gets ErrAlreadyClaimed.
func (c *Claim) Claim(ctx context.Context, code, runnerID string) (*entities.Errand, error) {
	if !isValidCode(code) {
		return nil, ErrInvalidCode
	}
	if runnerID == "" {
		return nil, ErrInvalidRunnerID
	}

	var claimed *entities.Errand
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		found, err := c.repository.GetByTransactionCode(ctx, normalizeCode(code))
		if err != nil {
			return fmt.Errorf("resolve transaction code: %w", err)
		}

		// Claimed some time ago: the code no longer identifies a
		// claimable errand.
		if found.RunnerID != nil || found.Status != entities.ErrandPending {
			return ErrCodeNotFound
		}

		claimed, err = c.repository.CompareAndSetRunner(ctx, found.ID, runnerID)
		if err != nil {
			if errors.Is(err, ErrAlreadyClaimed) {
				return ErrAlreadyClaimed
			}
			return fmt.Errorf("assign runner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return claimed, nil
}

func randomCode() (string, error) {
	// Rejection sampling: bytes >= 252 (the largest multiple of 36 below
	// 256) would skew the modulo towards the start of the charset.
	const unbiasedLimit = 252

	code := make([]byte, 0, codeLength)
	buf := make([]byte, codeLength)
	for len(code) < codeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}

		for _, b := range buf {
			if b >= unbiasedLimit {
				continue
			}
			code = append(code, codeCharset[int(b)%len(codeCharset)])
			if len(code) == codeLength {
				break
			}
		}
	}
	return string(code), nil
}
