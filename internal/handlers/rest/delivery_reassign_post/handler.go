package delivery_reassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/service/booking"
	"dispatch/pkg/logger"
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
	orderID := mux.Vars(r)["id"]

	var reassignDTO dto.OrderReassign
	err := json.NewDecoder(r.Body).Decode(&reassignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.Reassign(r.Context(), orderID, reassignDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidOrderID),
			errors.Is(err, booking.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrOrderNotFound),
			errors.Is(err, booking.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrOrderTerminal),
			errors.Is(err, booking.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.OrderFromEntity(*order))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
