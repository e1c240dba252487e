package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
)

const japanPayload = `[
  {
    "name": {"common": "Japan"},
    "region": "Asia",
    "currencies": {"JPY": {"name": "Japanese yen"}},
    "languages": {"jpn": "Japanese"}
  }
]`

func newCountriesServer(t *testing.T, handler http.HandlerFunc) CountryLookup {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	lookup, err := NewCountriesClient(config.Countries{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return lookup
}

func TestLookup_Success(t *testing.T) {
	lookup := newCountriesServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3.1/name/Japan", r.URL.Path)
		assert.Equal(t, "name,region,currencies,languages", r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(japanPayload))
	})

	facts, err := lookup.Lookup(context.Background(), "Japan")
	require.NoError(t, err)

	assert.Equal(t, "Japan", facts.Name)
	assert.Equal(t, "Asia", facts.Region)
	assert.Equal(t, []string{"Japanese yen"}, facts.Currencies)
	assert.Equal(t, []string{"Japanese"}, facts.Languages)
}

func TestLookup_NotFound(t *testing.T) {
	lookup := newCountriesServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status": 404, "message": "Not Found"}`, http.StatusNotFound)
	})

	_, err := lookup.Lookup(context.Background(), "Atlantis")
	require.ErrorIs(t, err, ErrCountryNotFound)
}

func TestLookup_EmptyList(t *testing.T) {
	lookup := newCountriesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := lookup.Lookup(context.Background(), "Nowhere")
	require.ErrorIs(t, err, ErrCountryNotFound)
}

func TestLookup_UpstreamError(t *testing.T) {
	lookup := newCountriesServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	})

	_, err := lookup.Lookup(context.Background(), "Japan")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCountryNotFound)
}

func TestLookup_EscapesDestinationName(t *testing.T) {
	lookup := newCountriesServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3.1/name/Costa%20Rica", r.URL.EscapedPath())
		_, _ = w.Write([]byte(japanPayload))
	})

	_, err := lookup.Lookup(context.Background(), "Costa Rica")
	require.NoError(t, err)
}

func TestNewCountriesClient_EmptyBaseURL(t *testing.T) {
	_, err := NewCountriesClient(config.Countries{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "scheme kept", raw: "https://restcountries.com", want: "https://restcountries.com"},
		{name: "scheme added", raw: "restcountries.com", want: "https://restcountries.com"},
		{name: "trailing slash trimmed", raw: "https://restcountries.com/", want: "https://restcountries.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptContext(t *testing.T) {
	facts := CountryFacts{
		Name:       "Japan",
		Region:     "Asia",
		Currencies: []string{"Japanese yen"},
		Languages:  []string{"Japanese"},
	}

	text := facts.PromptContext()
	assert.Contains(t, text, "Destination country facts for Japan")
	assert.Contains(t, text, "Region: Asia")
	assert.Contains(t, text, "Japanese yen")

	assert.Empty(t, CountryFacts{}.PromptContext())
}
