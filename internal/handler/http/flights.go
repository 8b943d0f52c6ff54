package http

import (
	"net/http"

	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/utils"
	"github.com/MKhiriev/go-flight-board/models"
)

const (
	iataParam = "iata"
	typeParam = "type"
)

// flights answers GET /flights?iata=XXX&type=arrivals|departures with the
// upcoming flights of the airport.
func (h *Handler) flights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	board, err := h.services.FlightService.GetFlights(r.Context(), models.FlightQuery{
		Airport:   query.Get(iataParam),
		Direction: models.FlightDirection(query.Get(typeParam)),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, board, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
