package notification_read_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/service/notification"
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
	notificationID := mux.Vars(r)["id"]

	err := h.service.MarkRead(r.Context(), notificationID)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidNotificationID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, notification.ErrNotificationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
