package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration fields, so operators can keep a readable config
// file ("token_duration": "1h") alongside environment variables.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenAlgorithm string   `json:"token_algorithm"`
		TokenDuration  Duration `json:"token_duration"`
	} `json:"auth"`

	Storage struct {
		DatabaseURI      string `json:"database_uri"`
		ItineraryBackend string `json:"itinerary_backend"`
		RedisAddr        string `json:"redis_addr"`
		RedisPassword    string `json:"redis_password"`
	} `json:"storage"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server"`

	OpenAI struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		Model          string   `json:"model"`
		Temperature    float64  `json:"temperature"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"openai"`

	Countries struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"countries"`
}

// Duration wraps time.Duration so that JSON values like "30s" or "1h"
// round-trip through encoding/json.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler accepting both "1h30m" strings
// and raw nanosecond numbers.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	case float64:
		d.Duration = time.Duration(value)
	default:
		return fmt.Errorf("invalid duration value: %v", raw)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

// parseJSON reads the JSON config file at path and converts it into a
// [StructuredConfig] suitable for merging with the other sources.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return jsonCfg.toStructuredConfig(), nil
}

func (j *StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:   j.Auth.TokenSignKey,
			TokenIssuer:    j.Auth.TokenIssuer,
			TokenAlgorithm: j.Auth.TokenAlgorithm,
			TokenDuration:  j.Auth.TokenDuration.Duration,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DatabaseURI},
			Itineraries: Itineraries{
				Backend:       j.Storage.ItineraryBackend,
				RedisAddr:     j.Storage.RedisAddr,
				RedisPassword: j.Storage.RedisPassword,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.Address,
			RequestTimeout: j.Server.RequestTimeout.Duration,
			AllowedOrigins: j.Server.AllowedOrigins,
		},
		OpenAI: OpenAI{
			APIKey:         j.OpenAI.APIKey,
			BaseURL:        j.OpenAI.BaseURL,
			Model:          j.OpenAI.Model,
			Temperature:    j.OpenAI.Temperature,
			RequestTimeout: j.OpenAI.RequestTimeout.Duration,
		},
		Countries: Countries{
			BaseURL:        j.Countries.BaseURL,
			RequestTimeout: j.Countries.RequestTimeout.Duration,
		},
	}
}
