// Package geocode wraps the Google Geocoding HTTP API behind ports.Geocoder.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yourplaces/places-api/internal/api/metrics"
	"github.com/yourplaces/places-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the geocoding client. Timeout is explicit
// configuration: it bounds every lookup, and a zero value falls back to
// defaultTimeout rather than "no timeout".
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// GoogleGeocoder resolves addresses via the Google Geocoding JSON API. Each
// call is a fresh network round trip; no retries, no caching.
type GoogleGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGoogleGeocoder(cfg Config) *GoogleGeocoder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GoogleGeocoder{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location domain.Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve looks up the coordinates for a free-text address. Zero results map
// to domain.ErrLocationNotFound; transport and decode failures propagate
// wrapped.
func (g *GoogleGeocoder) Resolve(ctx context.Context, address string) (domain.Location, error) {
	start := time.Now()
	loc, err := g.resolve(ctx, address)
	metrics.GeocodeLookupDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.GeocodeLookupsTotal.WithLabelValues("ok").Inc()
	case err == domain.ErrLocationNotFound:
		metrics.GeocodeLookupsTotal.WithLabelValues("not_found").Inc()
	default:
		metrics.GeocodeLookupsTotal.WithLabelValues("error").Inc()
	}
	return loc, err
}

func (g *GoogleGeocoder) resolve(ctx context.Context, address string) (domain.Location, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, fmt.Errorf("geocode lookup: unexpected status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Location{}, fmt.Errorf("geocode decode: %w", err)
	}

	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		return domain.Location{}, domain.ErrLocationNotFound
	}

	return body.Results[0].Geometry.Location, nil
}
