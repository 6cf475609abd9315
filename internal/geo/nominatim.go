package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder resolves addresses through a Nominatim search endpoint.
// Nominatim's usage policy requires an identifying User-Agent.
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	return &NominatimGeocoder{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (Location, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("building geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocoding %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocoding %q: unexpected status %d", address, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Location{}, fmt.Errorf("decoding geocode response: %w", err)
	}
	if len(results) == 0 {
		return Location{}, fmt.Errorf("geocoding %q: %w", address, ErrNoResults)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("parsing latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("parsing longitude %q: %w", results[0].Lon, err)
	}
	return Location{Latitude: lat, Longitude: lon}, nil
}
