//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_claim_post_test
package errand_claim_post

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

type Service interface {
	ClaimByCode(ctx context.Context, code, runnerID string) (*entities.Errand, error)
}
