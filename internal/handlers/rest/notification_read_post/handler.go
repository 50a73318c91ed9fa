package notification_read_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	notificationservice "dispatch/internal/service/notification"
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
	id := mux.Vars(r)["id"]
	tenant := entities.Tenant(r.URL.Query().Get("tenant"))

	notificationEntity, err := h.service.MarkAsRead(r.Context(), tenant, id)
	if err != nil {
		switch {
		case errors.Is(err, notificationservice.ErrUnknownTenant):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, notificationservice.ErrNotificationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NotificationFromEntity(*notificationEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
