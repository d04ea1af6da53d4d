package errand_transition_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/claim"
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
	errandID := mux.Vars(r)["id"]

	var transitionDTO dto.ErrandTransition
	err := json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.ExecuteTransition(
		r.Context(),
		errandID,
		entities.ErrandActionType(transitionDTO.Action),
		transitionDTO.ActorID,
		entities.ActorRoleType(transitionDTO.Role),
	)
	if err != nil {
		switch {
		case errors.Is(err, errandservice.ErrInvalidErrandID),
			errors.Is(err, errandservice.ErrInvalidActorID),
			errors.Is(err, errandservice.ErrInvalidRole),
			errors.Is(err, errandservice.ErrInvalidAction):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, errandservice.ErrUnauthorizedRole):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, errandservice.ErrErrandNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, errandservice.ErrInvalidTransition),
			errors.Is(err, errandservice.ErrAlreadyAccepted),
			errors.Is(err, errandservice.ErrStatusConflict),
			errors.Is(err, claim.ErrAlreadyClaimed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewErrand(*updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
