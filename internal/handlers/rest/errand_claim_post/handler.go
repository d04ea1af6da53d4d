package errand_claim_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var claimDTO dto.ErrandClaim
	err := json.NewDecoder(r.Body).Decode(&claimDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	claimed, err := h.service.ClaimByCode(r.Context(), claimDTO.Code, claimDTO.RunnerID)
	if err != nil {
		switch {
		case errors.Is(err, errandservice.ErrInvalidActorID),
			errors.Is(err, claim.ErrInvalidCode),
			errors.Is(err, claim.ErrInvalidRunnerID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, claim.ErrCodeNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, claim.ErrAlreadyClaimed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewErrand(*claimed)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
