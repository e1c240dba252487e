package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/models"
)

// redisItineraryStore persists saved packages as per-user Redis lists, so
// explicitly saved itineraries survive process restarts. Entries are stored
// JSON-encoded under "itineraries:<user_id>"; RPUSH/LRANGE keep save order.
type redisItineraryStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisItineraryStore connects to Redis and returns a persistent
// [ItineraryStore]. The connection is verified with a ping.
func NewRedisItineraryStore(ctx context.Context, cfg config.Itineraries, log *logger.Logger) (ItineraryStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisItineraryStore").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis successfully")

	return &redisItineraryStore{client: client, logger: log}, nil
}

func (s *redisItineraryStore) key(userID string) string {
	return "itineraries:" + userID
}

// Save appends pkg to the tail of the user's list.
func (s *redisItineraryStore) Save(ctx context.Context, userID string, pkg models.Package) error {
	data, err := json.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("error encoding package: %w", err)
	}

	if err := s.client.RPush(ctx, s.key(userID), data).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrItineraryNotSaved, err)
	}

	return nil
}

// List returns the user's saved packages in save order. A missing key yields
// an empty slice.
func (s *redisItineraryStore) List(ctx context.Context, userID string) ([]models.Package, error) {
	entries, err := s.client.LRange(ctx, s.key(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading saved itineraries: %w", err)
	}

	packages := make([]models.Package, 0, len(entries))
	for _, entry := range entries {
		var pkg models.Package
		if err := json.Unmarshal([]byte(entry), &pkg); err != nil {
			return nil, fmt.Errorf("error decoding saved package: %w", err)
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}
