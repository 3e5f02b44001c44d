// Package airkorea provides a client for the AirKorea (에어코리아)
// real-time measurement API.
package airkorea

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nalssiboard/nalssiboard/internal/airquality"
	"github.com/nalssiboard/nalssiboard/internal/provider/resilience"
)

const (
	// ProviderName identifies this air-quality provider.
	ProviderName = "airkorea"

	// DefaultBaseURL is the ArpltnInforInqireSvc base URL.
	DefaultBaseURL = "http://apis.data.go.kr/B552584/ArpltnInforInqireSvc"

	endpointSido = "/getCtprvnRltmMesureDnsty"

	resultCodeOK = "00"

	// apiVersion 1.0 makes the provider include the grade fields.
	apiVersion = "1.0"

	defaultRows = 100
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the AirKorea client.
type ClientConfig struct {
	// ServiceKey is the data.go.kr service key (required).
	ServiceKey string

	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is an AirKorea API client.
type Client struct {
	serviceKey string
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new AirKorea client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
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
		serviceKey: cfg.ServiceKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// API response types (from the AirKorea API).

type sidoResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items      []sidoItem `json:"items"`
			TotalCount int        `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

type sidoItem struct {
	StationName string `json:"stationName"`
	SidoName    string `json:"sidoName"`
	DataTime    string `json:"dataTime"`
	PM10Value   string `json:"pm10Value"`
	PM25Value   string `json:"pm25Value"`
	PM10Grade   string `json:"pm10Grade"`
	PM25Grade   string `json:"pm25Grade"`
}

// FetchBySido retrieves the latest per-station readings for a
// first-level region, identified by its short (sido) name.
func (c *Client) FetchBySido(ctx context.Context, sidoName string) ([]airquality.Reading, error) {
	query := url.Values{}
	query.Set("serviceKey", c.serviceKey)
	query.Set("returnType", "json")
	query.Set("numOfRows", strconv.Itoa(defaultRows))
	query.Set("pageNo", "1")
	query.Set("sidoName", sidoName)
	query.Set("ver", apiVersion)

	reqURL := c.baseURL + endpointSido + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
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

	var apiResp sidoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if code := apiResp.Response.Header.ResultCode; code != resultCodeOK {
		return nil, fmt.Errorf("airkorea result %s: %s", code, apiResp.Response.Header.ResultMsg)
	}

	readings := make([]airquality.Reading, 0, len(apiResp.Response.Body.Items))
	for _, item := range apiResp.Response.Body.Items {
		readings = append(readings, airquality.Reading{
			StationName: item.StationName,
			PM10Value:   item.PM10Value,
			PM10Grade:   airquality.GradeFromCode(item.PM10Grade),
			PM25Value:   item.PM25Value,
			PM25Grade:   airquality.GradeFromCode(item.PM25Grade),
			MeasuredAt:  item.DataTime,
		})
	}

	return readings, nil
}
