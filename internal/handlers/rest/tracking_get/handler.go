package tracking_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/handlers/rest/dto"
	"service/internal/pkg/geo"
	errandservice "service/internal/service/errand"
	"service/internal/service/tracking"
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

	update, err := h.service.Snapshot(r.Context(), errandID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidErrandID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, errandservice.ErrErrandNotFound),
			errors.Is(err, tracking.ErrNotTracking),
			errors.Is(err, tracking.ErrPositionNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	trackingDTO := dto.Tracking{
		ErrandID: update.ErrandID,
		RunnerID: update.RunnerID,
		Position: dto.GeoPoint{
			Latitude:  update.Position.Latitude,
			Longitude: update.Position.Longitude,
		},
		Anchor: dto.Location{
			Latitude:  update.Anchor.Latitude,
			Longitude: update.Anchor.Longitude,
			Address:   update.Anchor.Address,
		},
		DistanceKm: update.DistanceKm,
		Distance:   geo.FormatDistance(update.DistanceKm),
		EtaMinutes: update.EtaMinutes,
		ComputedAt: update.ComputedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(trackingDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
