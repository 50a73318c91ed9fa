package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
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

	var updateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.Transition(
		r.Context(),
		orderID,
		entities.OrderStatusType(updateDTO.Status),
		entities.ActorRole(updateDTO.Actor),
		updateDTO.Reason,
	)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidOrderID),
			errors.Is(err, booking.ErrInvalidStatus),
			errors.Is(err, booking.ErrUnknownActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrOrderNotFound):
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
