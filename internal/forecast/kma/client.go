// Package kma provides a client for the KMA (기상청) short-term forecast
// open APIs.
package kma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nalssiboard/nalssiboard/internal/forecast"
	"github.com/nalssiboard/nalssiboard/internal/geo"
	"github.com/nalssiboard/nalssiboard/internal/provider/resilience"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "kma"

	// DefaultBaseURL is the VilageFcstInfoService base URL.
	DefaultBaseURL = "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0"

	endpointCurrent = "/getUltraSrtNcst"
	endpointHourly  = "/getUltraSrtFcst"
	endpointDaily   = "/getVilageFcst"

	resultCodeOK = "00"
)

// Row counts per endpoint. Current observation carries one record per
// category; the multi-day forecast spans three days of hourly records.
const (
	rowsCurrent = 10
	rowsHourly  = 60
	rowsDaily   = 900
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the KMA client.
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

// Client is a KMA forecast API client.
type Client struct {
	serviceKey string
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new KMA client.
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

// API response shape shared by all three endpoints: a nested
// body→items→item array of flat category records.

type apiResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items struct {
				Item []apiItem `json:"item"`
			} `json:"items"`
			TotalCount int `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

type apiItem struct {
	BaseDate  string `json:"baseDate"`
	BaseTime  string `json:"baseTime"`
	Category  string `json:"category"`
	ObsrValue string `json:"obsrValue"` // observation endpoints
	FcstDate  string `json:"fcstDate"`  // forecast endpoints
	FcstTime  string `json:"fcstTime"`
	FcstValue string `json:"fcstValue"`
	NX        int    `json:"nx"`
	NY        int    `json:"ny"`
}

// FetchCurrent retrieves the latest ground observation records for a
// grid cell at the given base timestamp.
func (c *Client) FetchCurrent(ctx context.Context, cell geo.GridCell, baseDate, baseTime string) ([]forecast.CategoryRecord, error) {
	items, err := c.fetch(ctx, endpointCurrent, cell, baseDate, baseTime, rowsCurrent)
	if err != nil {
		return nil, err
	}

	records := make([]forecast.CategoryRecord, 0, len(items))
	for _, item := range items {
		records = append(records, forecast.CategoryRecord{
			Category: item.Category,
			Date:     item.BaseDate,
			Time:     item.BaseTime,
			Value:    item.ObsrValue,
		})
	}
	return records, nil
}

// FetchHourly retrieves ultra-short-term forecast records for a grid
// cell at the given base timestamp.
func (c *Client) FetchHourly(ctx context.Context, cell geo.GridCell, baseDate, baseTime string) ([]forecast.CategoryRecord, error) {
	items, err := c.fetch(ctx, endpointHourly, cell, baseDate, baseTime, rowsHourly)
	if err != nil {
		return nil, err
	}
	return forecastRecords(items), nil
}

// FetchDaily retrieves multi-day village forecast records for a grid
// cell. The base time is the provider's fixed daily publication slot.
func (c *Client) FetchDaily(ctx context.Context, cell geo.GridCell, baseDate, baseTime string) ([]forecast.CategoryRecord, error) {
	items, err := c.fetch(ctx, endpointDaily, cell, baseDate, baseTime, rowsDaily)
	if err != nil {
		return nil, err
	}
	return forecastRecords(items), nil
}

func forecastRecords(items []apiItem) []forecast.CategoryRecord {
	records := make([]forecast.CategoryRecord, 0, len(items))
	for _, item := range items {
		records = append(records, forecast.CategoryRecord{
			Category: item.Category,
			Date:     item.FcstDate,
			Time:     item.FcstTime,
			Value:    item.FcstValue,
		})
	}
	return records
}

func (c *Client) fetch(ctx context.Context, endpoint string, cell geo.GridCell, baseDate, baseTime string, numOfRows int) ([]apiItem, error) {
	query := url.Values{}
	query.Set("serviceKey", c.serviceKey)
	query.Set("pageNo", "1")
	query.Set("numOfRows", strconv.Itoa(numOfRows))
	query.Set("dataType", "JSON")
	query.Set("base_date", baseDate)
	query.Set("base_time", baseTime)
	query.Set("nx", strconv.Itoa(cell.NX))
	query.Set("ny", strconv.Itoa(cell.NY))

	reqURL := c.baseURL + endpoint + "?" + query.Encode()

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

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if code := apiResp.Response.Header.ResultCode; code != resultCodeOK {
		return nil, fmt.Errorf("kma result %s: %s", code, apiResp.Response.Header.ResultMsg)
	}

	items := apiResp.Response.Body.Items.Item
	if len(items) == 0 {
		return nil, forecast.ErrEmptyResponse
	}

	return items, nil
}
