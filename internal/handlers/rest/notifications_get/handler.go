package notifications_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	query := r.URL.Query()

	recipientID, err := strconv.ParseInt(query.Get("recipient_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options := notificationservice.ListOptions{
		UnreadOnly: query.Get("unread_only") == "true",
	}
	if limit := query.Get("limit"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		options.Limit = parsed
	}
	if offset := query.Get("offset"); offset != "" {
		parsed, err := strconv.ParseUint(offset, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		options.Offset = parsed
	}

	notifications, err := h.service.GetUserNotifications(
		r.Context(),
		entities.Tenant(query.Get("tenant")),
		recipientID,
		options,
	)
	if err != nil {
		switch {
		case errors.Is(err, notificationservice.ErrUnknownTenant),
			errors.Is(err, notificationservice.ErrInvalidRecipient):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NotificationList{
		Notifications: make([]dto.Notification, 0, len(notifications)),
	}
	for _, notificationEntity := range notifications {
		response.Notifications = append(response.Notifications, dto.NotificationFromEntity(notificationEntity))
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
