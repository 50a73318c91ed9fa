package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	filter, withCounts, err := parseQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderList{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for _, order := range orders {
		response.Orders = append(response.Orders, dto.OrderFromEntity(order))
	}

	if withCounts {
		counts, err := h.service.CountByStatus(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for _, count := range counts {
			response.Counts = append(response.Counts, dto.OrderStatusCount{
				Status: count.Status.String(),
				Count:  count.Count,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseQuery(r *http.Request) (entities.OrderFilter, bool, error) {
	var filter entities.OrderFilter
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		statusType := entities.OrderStatusType(status)
		filter.Status = &statusType
	}
	if driver := query.Get("driver_id"); driver != "" {
		driverID, err := strconv.ParseInt(driver, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, false, err
		}
		filter.DriverID = &driverID
	}
	if limit := query.Get("limit"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, false, err
		}
		filter.Limit = parsed
	}
	if offset := query.Get("offset"); offset != "" {
		parsed, err := strconv.ParseUint(offset, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, false, err
		}
		filter.Offset = parsed
	}

	withCounts := query.Get("with_counts") == "true"
	return filter, withCounts, nil
}
