// Package adapter implements outbound HTTP integrations with third-party
// services. Its only current member is the REST Countries lookup used to
// enrich filter-based generation prompts with destination country facts.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
)

// ErrCountryNotFound is returned when the lookup service has no entry for
// the requested destination name.
var ErrCountryNotFound = errors.New("country not found")

// CountryFacts is the condensed view of a destination country used when
// enriching generation prompts.
type CountryFacts struct {
	Name       string
	Region     string
	Currencies []string
	Languages  []string
}

// PromptContext renders the facts as instruction text for the model. The
// zero value renders to an empty string.
func (f CountryFacts) PromptContext() string {
	if f.Name == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Destination country facts for %s:\n", f.Name)
	if f.Region != "" {
		fmt.Fprintf(&b, "- Region: %s\n", f.Region)
	}
	if len(f.Currencies) > 0 {
		fmt.Fprintf(&b, "- Local currency: %s (quote costs in this currency where sensible)\n", strings.Join(f.Currencies, ", "))
	}
	if len(f.Languages) > 0 {
		fmt.Fprintf(&b, "- Spoken languages: %s\n", strings.Join(f.Languages, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// CountryLookup resolves a destination name to country facts.
type CountryLookup interface {
	Lookup(ctx context.Context, name string) (CountryFacts, error)
}

// countriesClient is the REST Countries (restcountries.com) implementation
// of [CountryLookup].
type countriesClient struct {
	client *resty.Client
	logger *logger.Logger
}

// restCountry mirrors the subset of the REST Countries v3 payload the
// adapter consumes.
type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Region     string `json:"region"`
	Currencies map[string]struct {
		Name string `json:"name"`
	} `json:"currencies"`
	Languages map[string]string `json:"languages"`
}

// NewCountriesClient constructs a [CountryLookup] against the REST Countries
// API rooted at cfg.BaseURL. Returns an error if the base URL is empty or
// cannot be parsed.
func NewCountriesClient(cfg config.Countries, log *logger.Logger) (CountryLookup, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid countries base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &countriesClient{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Lookup implements [CountryLookup]. It GETs /v3.1/name/{name} and condenses
// the first match into [CountryFacts]. A 404 maps to [ErrCountryNotFound];
// any other non-2xx status or transport failure is returned as an error.
func (c *countriesClient) Lookup(ctx context.Context, name string) (CountryFacts, error) {
	log := logger.FromContext(ctx)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "name,region,currencies,languages").
		Get("/v3.1/name/" + url.PathEscape(name))
	if err != nil {
		return CountryFacts{}, fmt.Errorf("country lookup request: %w", err)
	}

	if resp.StatusCode() == 404 {
		return CountryFacts{}, ErrCountryNotFound
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("country", name).Msg("country lookup failed")
		return CountryFacts{}, fmt.Errorf("country lookup: unexpected status %d", resp.StatusCode())
	}

	var countries []restCountry
	if err := json.Unmarshal(resp.Body(), &countries); err != nil {
		return CountryFacts{}, fmt.Errorf("country lookup decode: %w", err)
	}
	if len(countries) == 0 {
		return CountryFacts{}, ErrCountryNotFound
	}

	return condense(countries[0]), nil
}

func condense(country restCountry) CountryFacts {
	facts := CountryFacts{
		Name:   country.Name.Common,
		Region: country.Region,
	}

	for _, currency := range country.Currencies {
		facts.Currencies = append(facts.Currencies, currency.Name)
	}
	for _, language := range country.Languages {
		facts.Languages = append(facts.Languages, language)
	}

	// map iteration order is random; keep the rendered prompt deterministic
	sort.Strings(facts.Currencies)
	sort.Strings(facts.Languages)

	return facts
}
