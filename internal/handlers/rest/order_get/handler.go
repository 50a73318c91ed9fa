package order_get

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

// Handler serves two routes: /order/{id} looks an order up by its
// internal id, /booking/{code} by the customer-facing booking code.
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
	vars := mux.Vars(r)

	var order *entities.DeliveryOrder
	var err error
	if code, ok := vars["code"]; ok {
		order, err = h.service.GetOrderByBookingCode(r.Context(), code)
	} else {
		order, err = h.service.GetOrder(r.Context(), vars["id"])
	}
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidOrderID),
			errors.Is(err, booking.ErrInvalidBookingCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
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
