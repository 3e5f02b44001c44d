package kma_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalssiboard/nalssiboard/internal/forecast"
	"github.com/nalssiboard/nalssiboard/internal/forecast/kma"
	"github.com/nalssiboard/nalssiboard/internal/geo"
)

func TestClient_FetchCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getUltraSrtNcst", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("serviceKey"))
		assert.Equal(t, "JSON", r.URL.Query().Get("dataType"))
		assert.Equal(t, "20240115", r.URL.Query().Get("base_date"))
		assert.Equal(t, "1400", r.URL.Query().Get("base_time"))
		assert.Equal(t, "60", r.URL.Query().Get("nx"))
		assert.Equal(t, "127", r.URL.Query().Get("ny"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"response": {
				"header": {"resultCode": "00", "resultMsg": "NORMAL_SERVICE"},
				"body": {
					"items": {"item": [
						{"baseDate":"20240115","baseTime":"1400","category":"T1H","obsrValue":"3.2","nx":60,"ny":127},
						{"baseDate":"20240115","baseTime":"1400","category":"REH","obsrValue":"41","nx":60,"ny":127},
						{"baseDate":"20240115","baseTime":"1400","category":"PTY","obsrValue":"0","nx":60,"ny":127}
					]},
					"totalCount": 3
				}
			}
		}`))
	}))
	defer server.Close()

	client := kma.NewClient(kma.ClientConfig{
		ServiceKey: "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	records, err := client.FetchCurrent(context.Background(), geo.GridCell{NX: 60, NY: 127}, "20240115", "1400")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "T1H", records[0].Category)
	assert.Equal(t, "3.2", records[0].Value)
	assert.Equal(t, "20240115", records[0].Date)

	obs := forecast.BuildObservation(records)
	assert.Equal(t, "3.2", obs.Temperature)
	assert.Equal(t, "41", obs.Humidity)
	assert.Equal(t, forecast.PrecipClear, obs.Precipitation)
}

func TestClient_FetchHourly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getUltraSrtFcst", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"response": {
				"header": {"resultCode": "00", "resultMsg": "NORMAL_SERVICE"},
				"body": {
					"items": {"item": [
						{"baseDate":"20240115","baseTime":"1400","category":"T1H","fcstDate":"20240115","fcstTime":"1500","fcstValue":"4"},
						{"baseDate":"20240115","baseTime":"1400","category":"SKY","fcstDate":"20240115","fcstTime":"1500","fcstValue":"1"}
					]},
					"totalCount": 2
				}
			}
		}`))
	}))
	defer server.Close()

	client := kma.NewClient(kma.ClientConfig{
		ServiceKey: "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	records, err := client.FetchHourly(context.Background(), geo.GridCell{NX: 60, NY: 127}, "20240115", "1400")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1500", records[0].Time)
	assert.Equal(t, "4", records[0].Value)
	assert.Equal(t, "SKY", records[1].Category)
}

func TestClient_FetchDaily_ResultError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getVilageFcst", r.URL.Path)
		assert.Equal(t, "0200", r.URL.Query().Get("base_time"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"response": {
				"header": {"resultCode": "03", "resultMsg": "NO_DATA"},
				"body": {"items": {"item": []}, "totalCount": 0}
			}
		}`))
	}))
	defer server.Close()

	client := kma.NewClient(kma.ClientConfig{
		ServiceKey: "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.FetchDaily(context.Background(), geo.GridCell{NX: 60, NY: 127}, "20240115", "0200")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_DATA")
}

func TestClient_FetchCurrent_EmptyItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"response": {
				"header": {"resultCode": "00", "resultMsg": "NORMAL_SERVICE"},
				"body": {"items": {"item": []}, "totalCount": 0}
			}
		}`))
	}))
	defer server.Close()

	client := kma.NewClient(kma.ClientConfig{
		ServiceKey: "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.FetchCurrent(context.Background(), geo.GridCell{NX: 60, NY: 127}, "20240115", "1400")
	assert.ErrorIs(t, err, forecast.ErrEmptyResponse)
}

func TestClient_FetchCurrent_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := kma.NewClient(kma.ClientConfig{
		ServiceKey: "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.FetchCurrent(context.Background(), geo.GridCell{NX: 60, NY: 127}, "20240115", "1400")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}
