package driver_location_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/booking"
)

type Handler struct {
	log     handlerLogger
	drivers DriverStore
}

func New(log handlerLogger, drivers DriverStore) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		drivers: drivers,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || driverID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var locationDTO dto.DriverLocationUpdate
	err = json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	location := entities.Point{Lat: locationDTO.Lat, Lng: locationDTO.Lng}
	if !location.Valid() {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.drivers.UpdateLocation(r.Context(), driverID, location)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
