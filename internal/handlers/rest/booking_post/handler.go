package booking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
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
	var bookingDTO dto.BookingCreate
	err := json.NewDecoder(r.Body).Decode(&bookingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request := booking.BookingRequest{
		Tenant: entities.Tenant(bookingDTO.Tenant),
		PickupPoint: entities.Point{
			Lat: bookingDTO.PickupPoint.Lat,
			Lng: bookingDTO.PickupPoint.Lng,
		},
		CustomerPoint: entities.Point{
			Lat: bookingDTO.CustomerPoint.Lat,
			Lng: bookingDTO.CustomerPoint.Lng,
		},
		LeadMinutes:  bookingDTO.LeadMinutes,
		CustomerID:   bookingDTO.CustomerID,
		StoreStaffID: bookingDTO.StoreStaffID,
		StoreName:    bookingDTO.StoreName,
		CustomerName: bookingDTO.CustomerName,
	}

	result, err := h.service.Book(r.Context(), request)
	if err != nil {
		metrics.BookingOutcomes.WithLabelValues("failed").Inc()
		switch {
		case errors.Is(err, booking.ErrUnknownTenant),
			errors.Is(err, booking.ErrInvalidCoordinates),
			errors.Is(err, booking.ErrInvalidLeadTime),
			errors.Is(err, booking.ErrInvalidRecipient):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrBookingCodeTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if result.Declined {
		metrics.BookingOutcomes.WithLabelValues("declined").Inc()
		h.writeJSON(w, http.StatusOK, dto.BookingDeclined{
			Declined: true,
			Reason:   string(result.DeclineReason),
		})
		return
	}

	metrics.BookingOutcomes.WithLabelValues("booked").Inc()
	h.writeJSON(w, http.StatusCreated, dto.OrderFromEntity(*result.Order))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
