package notifications_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/handlers/rest/dto"
	"service/internal/service/notification"
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
	userID := r.URL.Query().Get("user_id")

	notificationEntities, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidRecipient):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	notificationDTOs := make([]dto.Notification, len(notificationEntities))
	for i, entity := range notificationEntities {
		notificationDTOs[i] = dto.Notification{
			ID:          entity.ID,
			RecipientID: entity.RecipientID,
			Title:       entity.Title,
			Body:        entity.Body,
			Type:        entity.Type.String(),
			Read:        entity.Read,
			ErrandID:    entity.ErrandID,
			CreatedAt:   entity.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(notificationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
