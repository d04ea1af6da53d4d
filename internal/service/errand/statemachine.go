package errand

import (
	"service/internal/entities"
)

// TransitionResult is the outcome of a successful pure transition:
// the status to persist and, for claims, the runner to assign.
type TransitionResult struct {
	NextStatus    entities.ErrandStatusType
	RunnerIDToSet *string
}

type transitionRule struct {
	next entities.ErrandStatusType
	role entities.ActorRoleType

	// setsRunner marks the claim transition: runner_id goes from unset
	// to the initiator, exactly once.
	setsRunner bool

	// requiresAssignedRunner gates runner-driven progress to the runner
	// that owns the errand.
	requiresAssignedRunner bool
}

// transitionTable is the single source of truth for the errand lifecycle.
// Any (status, action) pair absent here is an invalid transition.
var transitionTable = map[entities.ErrandStatusType]map[entities.ErrandActionType]transitionRule{
	entities.ErrandPending: {
		entities.ActionAccept: {
			next:       entities.ErrandAccepted,
			role:       entities.RoleRunner,
			setsRunner: true,
		},
		entities.ActionCancel: {
			next: entities.ErrandCancelled,
			role: entities.RoleRequester,
		},
	},
	entities.ErrandAccepted: {
		entities.ActionMarkPickedUp: {
			next:                   entities.ErrandPickedUp,
			role:                   entities.RoleRunner,
			requiresAssignedRunner: true,
		},
	},
	entities.ErrandPickedUp: {
		entities.ActionStartDelivery: {
			next:                   entities.ErrandOnTheWay,
			role:                   entities.RoleRunner,
			requiresAssignedRunner: true,
		},
	},
	entities.ErrandOnTheWay: {
		entities.ActionMarkDelivered: {
			next:                   entities.ErrandDelivered,
			role:                   entities.RoleRunner,
			requiresAssignedRunner: true,
		},
	},
	entities.ErrandDelivered: {
		entities.ActionComplete: {
			next: entities.ErrandCompleted,
			role: entities.RoleRequester,
		},
	},
}

// Transition validates an action against the errand's current status and
// the initiator's role and identity. It is pure: persistence and
// notification are the coordinator's responsibility.
func Transition(
	errand *entities.Errand,
	action entities.ErrandActionType,
	role entities.ActorRoleType,
	actorID string,
) (TransitionResult, error) {
	actions, ok := transitionTable[errand.Status]
	if !ok {
		return TransitionResult{}, ErrInvalidTransition
	}

	rule, ok := actions[action]
	if !ok {
		return TransitionResult{}, ErrInvalidTransition
	}

	if role != rule.role {
		return TransitionResult{}, ErrUnauthorizedRole
	}

	switch rule.role {
	case entities.RoleRequester:
		if actorID != errand.RequesterID {
			return TransitionResult{}, ErrUnauthorizedRole
		}
	case entities.RoleRunner:
		if rule.requiresAssignedRunner {
			if errand.RunnerID == nil || *errand.RunnerID != actorID {
				return TransitionResult{}, ErrUnauthorizedRole
			}
		}
	}

	result := TransitionResult{NextStatus: rule.next}
	if rule.setsRunner {
		if errand.RunnerID != nil {
			return TransitionResult{}, ErrAlreadyAccepted
		}
		runnerID := actorID
		result.RunnerIDToSet = &runnerID
	}

	return result, nil
}
