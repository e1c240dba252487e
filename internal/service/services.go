package service

import (
	"github.com/moizlokhandwala/aitravelagent/internal/adapter"
	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/planner"
	"github.com/moizlokhandwala/aitravelagent/internal/store"
)

type Services struct {
	AuthService      AuthService
	ProfileService   ProfileService
	ItineraryService ItineraryService
}

func NewServices(
	storages *store.Storages,
	completer planner.Completer,
	countries adapter.CountryLookup,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService:   NewProfileService(storages.UserRepository, logger),
		ItineraryService: NewItineraryService(completer, countries, storages.ItineraryStore, cfg.OpenAI, logger),
	}
}
