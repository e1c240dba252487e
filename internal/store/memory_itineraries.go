package store

import (
	"context"
	"sync"

	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/models"
)

// memoryItineraryStore keeps saved packages in process memory: an ordered
// per-user append list guarded by a single RWMutex, so concurrent saves for
// the same user serialize instead of racing. Contents are lost on restart.
type memoryItineraryStore struct {
	mu     sync.RWMutex
	saved  map[string][]models.Package
	logger *logger.Logger
}

// NewMemoryItineraryStore constructs the default, process-local
// [ItineraryStore].
func NewMemoryItineraryStore(logger *logger.Logger) ItineraryStore {
	logger.Debug().Msg("creating in-memory itinerary store")
	return &memoryItineraryStore{
		saved:  make(map[string][]models.Package),
		logger: logger,
	}
}

// Save appends pkg to the user's saved list, preserving save order.
func (s *memoryItineraryStore) Save(_ context.Context, userID string, pkg models.Package) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved[userID] = append(s.saved[userID], pkg)
	return nil
}

// List returns a copy of the user's saved packages in save order.
// A user with nothing saved yields an empty slice, not an error.
func (s *memoryItineraryStore) List(_ context.Context, userID string) ([]models.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	packages := make([]models.Package, len(s.saved[userID]))
	copy(packages, s.saved[userID])
	return packages, nil
}
