package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/service"
	"github.com/moizlokhandwala/aitravelagent/internal/store"
	"github.com/moizlokhandwala/aitravelagent/internal/utils"
	"github.com/moizlokhandwala/aitravelagent/models"
)

func (h *Handler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProfileService.Upsert(ctx, profile)
	if err != nil {
		h.writeProfileError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	profile, err := h.services.ProfileService.Get(ctx, userID)
	if err != nil {
		h.writeProfileError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// path parameter wins over any user_id in the body
	profile.UserID = chi.URLParam(r, "user_id")

	updated, err := h.services.ProfileService.Upsert(ctx, profile)
	if err != nil {
		h.writeProfileError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) writeProfileError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg("invalid data provided")
		http.Error(w, "invalid data provided", http.StatusBadRequest)
	case errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user not found")
		http.Error(w, "User not found", http.StatusNotFound)
	case errors.Is(err, service.ErrStorageUnavailable):
		log.Err(err).Msg("storage unavailable")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
	default:
		log.Err(err).Msg("unexpected error occurred during profile operation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
