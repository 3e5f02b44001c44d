// Package googlegeo provides a Google Geocoding API client.
package googlegeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nalssiboard/nalssiboard/internal/geo"
	"github.com/nalssiboard/nalssiboard/internal/location"
	"github.com/nalssiboard/nalssiboard/internal/provider/resilience"
)

const (
	// ProviderName identifies this geocoding provider.
	ProviderName = "googlegeo"

	// DefaultBaseURL is the Google Geocoding API endpoint.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Address component types used by the Geocoding API.
const (
	typeCountry     = "country"
	typeProvince    = "administrative_area_level_1"
	typeCity        = "locality"
	typeCityAlt     = "administrative_area_level_2"
	typeSubLocality = "sublocality_level_1"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Google Geocoding client.
type ClientConfig struct {
	// APIKey is the Google Maps API key (required).
	APIKey string

	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// Language for returned names (default: ko).
	Language string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is a Google Geocoding API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient HTTPDoer
}

// NewClient creates a new Google Geocoding client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	language := cfg.Language
	if language == "" {
		language = "ko"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:            ProviderName,
			Timeout:         timeout,
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		})
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		language:   language,
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Geocoding API response structures.

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Reverse resolves a coordinate into candidate addresses.
func (c *Client) Reverse(ctx context.Context, coord geo.Coordinate) ([]location.Address, error) {
	query := url.Values{}
	query.Set("latlng", fmt.Sprintf("%f,%f", coord.Lat, coord.Lon))
	return c.geocode(ctx, query)
}

// Search resolves a free-text query into candidate addresses.
func (c *Client) Search(ctx context.Context, text string) ([]location.Address, error) {
	query := url.Values{}
	query.Set("address", text)
	query.Set("region", "kr")
	return c.geocode(ctx, query)
}

func (c *Client) geocode(ctx context.Context, query url.Values) ([]location.Address, error) {
	query.Set("key", c.apiKey)
	query.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	switch geoResp.Status {
	case statusOK:
	case statusZeroResults:
		return nil, nil
	default:
		return nil, fmt.Errorf("geocoding status: %s", geoResp.Status)
	}

	addresses := make([]location.Address, 0, len(geoResp.Results))
	for _, result := range geoResp.Results {
		addr := location.Address{
			Coordinate: geo.Coordinate{
				Lat: result.Geometry.Location.Lat,
				Lon: result.Geometry.Location.Lng,
			},
		}

		// Each component extraction is independently optional; an
		// address missing a component just leaves the field empty.
		for _, component := range result.AddressComponents {
			for _, componentType := range component.Types {
				switch componentType {
				case typeCountry:
					addr.Country = component.LongName
					addr.CountryCode = component.ShortName
				case typeProvince:
					addr.Province = component.LongName
				case typeCity:
					addr.Locality = component.LongName
				case typeCityAlt:
					if addr.Locality == "" {
						addr.Locality = component.LongName
					}
				case typeSubLocality:
					addr.SubLocality = component.LongName
				}
			}
		}

		addresses = append(addresses, addr)
	}

	return addresses, nil
}
