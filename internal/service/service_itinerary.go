package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moizlokhandwala/aitravelagent/internal/adapter"
	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/planner"
	"github.com/moizlokhandwala/aitravelagent/internal/store"
	"github.com/moizlokhandwala/aitravelagent/models"
)

// itineraryService implements ItineraryService: it orchestrates the
// prompt-to-structured-data pipeline (instruction building, upstream
// completion, response parsing) and manages the saved-itinerary store.
//
// Generation failures always propagate to the caller as planner errors; the
// service never substitutes mock itinerary data, so callers can distinguish
// "no plan generated" from "here is your plan".
type itineraryService struct {
	completer   planner.Completer
	countries   adapter.CountryLookup
	itineraries store.ItineraryStore

	// callTimeout bounds a single upstream completion call.
	callTimeout time.Duration

	logger *logger.Logger
}

// NewItineraryService constructs an ItineraryService. countries may be nil,
// in which case filter prompts are not enriched with destination facts.
func NewItineraryService(
	completer planner.Completer,
	countries adapter.CountryLookup,
	itineraries store.ItineraryStore,
	cfg config.OpenAI,
	logger *logger.Logger,
) ItineraryService {
	return &itineraryService{
		completer:   completer,
		countries:   countries,
		itineraries: itineraries,
		callTimeout: cfg.RequestTimeout,
		logger:      logger,
	}
}

// SuggestFromPrompt generates packages from unstructured free text.
//
// Returns ErrInvalidDataProvided for an empty prompt, or the planner's
// sentinel errors when the upstream call or parse fails.
func (s *itineraryService) SuggestFromPrompt(ctx context.Context, req models.PromptRequest) (models.PackageResponse, error) {
	if req.Prompt == "" {
		return models.PackageResponse{}, ErrInvalidDataProvided
	}

	instruction := planner.BuildPromptInstruction(req)

	return s.generate(ctx, instruction)
}

// SuggestFromFilters generates packages from structured trip parameters.
//
// The filter dates are validated before any upstream call: a to_date before
// from_date surfaces planner.ErrInvalidDateRange. When a country lookup is
// configured, destination facts are fetched best-effort and appended to the
// instruction; lookup failure degrades silently to the plain prompt.
func (s *itineraryService) SuggestFromFilters(ctx context.Context, req models.FilterRequest) (models.PackageResponse, error) {
	log := logger.FromContext(ctx)

	if req.Destination == "" {
		return models.PackageResponse{}, ErrInvalidDataProvided
	}

	extraContext := ""
	if s.countries != nil {
		facts, err := s.countries.Lookup(ctx, req.Destination)
		if err != nil {
			log.Debug().Err(err).Str("destination", req.Destination).Msg("country facts unavailable, continuing without enrichment")
		} else {
			extraContext = facts.PromptContext()
		}
	}

	instruction, err := planner.BuildFilterInstruction(req, extraContext)
	if err != nil {
		return models.PackageResponse{}, err
	}

	return s.generate(ctx, instruction)
}

// generate performs the bounded upstream call and parses the raw completion
// into the package schema, assigning identifiers to packages the model left
// unnamed.
func (s *itineraryService) generate(ctx context.Context, instruction string) (models.PackageResponse, error) {
	log := logger.FromContext(ctx)

	callCtx := ctx
	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}

	raw, err := s.completer.Complete(callCtx, instruction)
	if err != nil {
		log.Err(err).Msg("itinerary generation failed")
		return models.PackageResponse{}, fmt.Errorf("itinerary generation failed: %w", err)
	}

	response, err := planner.ParsePackageResponse(raw)
	if err != nil {
		log.Err(err).Int("raw_length", len(raw)).Msg("model response could not be parsed")
		return models.PackageResponse{}, fmt.Errorf("model response could not be parsed: %w", err)
	}

	for i := range response.Packages {
		if response.Packages[i].PackageID == "" {
			response.Packages[i].PackageID = uuid.NewString()
		}
	}

	return response, nil
}

// SaveItinerary appends the selected package to the user's saved list.
func (s *itineraryService) SaveItinerary(ctx context.Context, req models.SaveItineraryRequest) error {
	if req.UserID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.itineraries.Save(ctx, req.UserID, req.SelectedPackage); err != nil {
		return fmt.Errorf("saving itinerary failed: %w", err)
	}

	return nil
}

// ListSaved returns the user's saved packages in save order. A user with
// nothing saved yields an empty slice; presentation of the empty state is
// left to the transport layer.
func (s *itineraryService) ListSaved(ctx context.Context, userID string) ([]models.Package, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	packages, err := s.itineraries.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing saved itineraries failed: %w", err)
	}

	return packages, nil
}
