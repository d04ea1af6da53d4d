//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_transition_post_test
package errand_transition_post

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
	ExecuteTransition(ctx context.Context, errandID string, action entities.ErrandActionType, actorID string, role entities.ActorRoleType) (*entities.Errand, error)
}
