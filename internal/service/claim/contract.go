//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=claim_test
package claim

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	// GetByTransactionCode returns the unique non-terminal errand with
	// this code.
	GetByTransactionCode(ctx context.Context, code string) (*entities.Errand, error)

	// CodeInUse reports whether any non-terminal errand holds the code.
	CodeInUse(ctx context.Context, code string) (bool, error)

	// CompareAndSetRunner assigns the runner and moves pending ->
	// accepted only if runner_id is still unset.
	CompareAndSetRunner(ctx context.Context, id, runnerID string) (*entities.Errand, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
