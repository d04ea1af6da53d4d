package errand_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var errandCreateDTO dto.ErrandCreate
	err := json.NewDecoder(r.Body).Decode(&errandCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pickup := entities.Location{
		Address:   errandCreateDTO.Pickup.Address,
		Latitude:  errandCreateDTO.Pickup.Latitude,
		Longitude: errandCreateDTO.Pickup.Longitude,
	}
	dropoff := entities.Location{
		Address:   errandCreateDTO.Dropoff.Address,
		Latitude:  errandCreateDTO.Dropoff.Latitude,
		Longitude: errandCreateDTO.Dropoff.Longitude,
	}
	errandModifyEntity := entities.ErrandModify{
		RequesterID: &errandCreateDTO.RequesterID,
		Pickup:      &pickup,
		Dropoff:     &dropoff,
	}

	created, err := h.service.CreateErrand(r.Context(), errandModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, errandservice.ErrMissingRequiredFields),
			errors.Is(err, errandservice.ErrInvalidActorID),
			errors.Is(err, errandservice.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, errandservice.ErrCodeConflict),
			errors.Is(err, claim.ErrCodeSpaceExhausted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewErrand(*created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
