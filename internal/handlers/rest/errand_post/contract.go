//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_post_test
package errand_post

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
	CreateErrand(ctx context.Context, errandModify entities.ErrandModify) (*entities.Errand, error)
}
