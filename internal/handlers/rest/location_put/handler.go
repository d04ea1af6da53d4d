package location_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/tracking"
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
	var locationDTO dto.LocationPublish
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	position := entities.ActorPosition{
		ActorID: locationDTO.ActorID,
		Coordinates: entities.GeoPoint{
			Latitude:  locationDTO.Latitude,
			Longitude: locationDTO.Longitude,
		},
	}
	if locationDTO.SampledAt != nil {
		position.SampledAt = *locationDTO.SampledAt
	}

	err = h.service.PublishPosition(r.Context(), position)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidActorID),
			errors.Is(err, tracking.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
