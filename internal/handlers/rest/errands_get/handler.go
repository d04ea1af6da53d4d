package errands_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	errandservice "service/internal/service/errand"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	actorID := query.Get("actor_id")
	role := entities.ActorRoleType(query.Get("role"))

	var statusFilter []entities.ErrandStatusType
	if raw := query.Get("status"); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			statusFilter = append(statusFilter, entities.ErrandStatusType(status))
		}
	}

	errandEntities, err := h.service.ListErrands(r.Context(), actorID, role, statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, errandservice.ErrInvalidActorID),
			errors.Is(err, errandservice.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	errandDTOs := make([]dto.Errand, len(errandEntities))
	for i, errand := range errandEntities {
		errandDTOs[i] = dto.NewErrand(errand)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(errandDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
