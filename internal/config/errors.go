package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Several may be
// joined together when more than one required value is missing.
var (
	ErrNoTokenSignKey            = errors.New("token sign key is not set")
	ErrUnsupportedTokenAlgorithm = errors.New("token algorithm must be HS256, HS384 or HS512")
	ErrNoDatabaseDSN             = errors.New("database DSN is not set")
	ErrNoRedisAddress            = errors.New("redis address is required for the redis itinerary backend")
	ErrUnknownItineraryBackend   = errors.New("itinerary backend must be memory or redis")
	ErrNoOpenAIKey               = errors.New("openai api key is not set")
)
