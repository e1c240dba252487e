package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/planner"
	"github.com/moizlokhandwala/aitravelagent/internal/service"
	"github.com/moizlokhandwala/aitravelagent/internal/utils"
	"github.com/moizlokhandwala/aitravelagent/models"
)

func (h *Handler) suggestFromPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.ItineraryService.SuggestFromPrompt(ctx, req)
	if err != nil {
		h.writeGenerationError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) suggestFromFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.ItineraryService.SuggestFromFilters(ctx, req)
	if err != nil {
		h.writeGenerationError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) saveItinerary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SaveItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ItineraryService.SaveItinerary(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, service.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable")
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		default:
			log.Err(err).Msg("unexpected error occurred during itinerary save")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Itinerary saved successfully"}, http.StatusOK)
}

func (h *Handler) listSavedItineraries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, "user_id")

	packages, err := h.services.ItineraryService.ListSaved(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable")
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		default:
			log.Err(err).Msg("unexpected error occurred during itinerary lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if len(packages) == 0 {
		http.Error(w, "No saved itineraries found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.PackageResponse{Packages: packages}, http.StatusOK)
}

// writeGenerationError maps planner failures onto HTTP statuses. Upstream
// model problems are a bad gateway, not our fault and not retried here.
func (h *Handler) writeGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, planner.ErrMissingDates):
		log.Err(err).Msg("missing trip dates")
		http.Error(w, "from_date and to_date are required", http.StatusBadRequest)
	case errors.Is(err, planner.ErrInvalidDateRange):
		log.Err(err).Msg("invalid date range")
		http.Error(w, "to_date must not be earlier than from_date", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg("invalid data provided")
		http.Error(w, "invalid data provided", http.StatusBadRequest)
	case errors.Is(err, planner.ErrCompletionFailed),
		errors.Is(err, planner.ErrUnparsableResponse),
		errors.Is(err, planner.ErrNoPackages):
		log.Err(err).Msg("package generation failed")
		http.Error(w, "Package generation failed", http.StatusBadGateway)
	default:
		log.Err(err).Msg("unexpected error occurred during package generation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
