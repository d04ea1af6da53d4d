package errand

import (
	"strings"

	"service/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidRole(role entities.ActorRoleType) bool {
	switch role {
	case entities.RoleRequester, entities.RoleRunner:
		return true
	default:
		return false
	}
}

func isValidAction(action entities.ErrandActionType) bool {
	switch action {
	case entities.ActionAccept,
		entities.ActionCancel,
		entities.ActionMarkPickedUp,
		entities.ActionStartDelivery,
		entities.ActionMarkDelivered,
		entities.ActionComplete:
		return true
	default:
		return false
	}
}

func isValidLocation(loc *entities.Location) bool {
	if loc == nil {
		return false
	}
	if strings.TrimSpace(loc.Address) == "" {
		return false
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return false
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return false
	}
	return true
}
