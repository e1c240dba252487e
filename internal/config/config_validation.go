package config

import "errors"

// validate checks the merged configuration for values the application cannot
// start without. Defaults have already been applied by the builder, so any
// remaining zero value here is a genuine operator error.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	switch c.App.TokenAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, ErrUnsupportedTokenAlgorithm)
	}

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}

	switch c.Storage.Itineraries.Backend {
	case "memory":
	case "redis":
		if c.Storage.Itineraries.RedisAddr == "" {
			errs = append(errs, ErrNoRedisAddress)
		}
	default:
		errs = append(errs, ErrUnknownItineraryBackend)
	}

	if c.OpenAI.APIKey == "" {
		errs = append(errs, ErrNoOpenAIKey)
	}

	return errors.Join(errs...)
}
