//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_put_test
package location_put

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
	PublishPosition(ctx context.Context, position entities.ActorPosition) error
}
