package service

import (
	"context"

	"github.com/moizlokhandwala/aitravelagent/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and updates the travel profile attached to a user row.
type ProfileService interface {
	Get(ctx context.Context, userID string) (models.UserProfile, error)
	Upsert(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
}

// ItineraryService is the generation and saved-itinerary facade: it turns
// prompt or filter requests into package suggestions via the upstream model
// and manages the per-user saved package list.
type ItineraryService interface {
	SuggestFromPrompt(ctx context.Context, req models.PromptRequest) (models.PackageResponse, error)
	SuggestFromFilters(ctx context.Context, req models.FilterRequest) (models.PackageResponse, error)
	SaveItinerary(ctx context.Context, req models.SaveItineraryRequest) error
	ListSaved(ctx context.Context, userID string) ([]models.Package, error)
}
