package location_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalssiboard/nalssiboard/internal/geo"
	"github.com/nalssiboard/nalssiboard/internal/location"
)

// mockGeocoder returns configurable addresses.
type mockGeocoder struct {
	addresses []location.Address
	err       error
}

func (m *mockGeocoder) Reverse(_ context.Context, _ geo.Coordinate) ([]location.Address, error) {
	return m.addresses, m.err
}

func (m *mockGeocoder) Search(_ context.Context, _ string) ([]location.Address, error) {
	return m.addresses, m.err
}

func (m *mockGeocoder) Name() string { return "mock" }

func newResolver(g location.Geocoder) *location.Resolver {
	return location.NewResolver(location.ResolverConfig{
		Geocoder: g,
		Logger:   zerolog.New(io.Discard),
	})
}

func jeonjuAddress() location.Address {
	return location.Address{
		Country:     "대한민국",
		CountryCode: "KR",
		Province:    "전라북도",
		Locality:    "전주시",
		SubLocality: "완산구",
		Coordinate:  geo.Coordinate{Lat: 35.8242, Lon: 127.1480},
	}
}

func TestResolver_FromCoordinate(t *testing.T) {
	resolver := newResolver(&mockGeocoder{addresses: []location.Address{jeonjuAddress()}})

	coord := geo.Coordinate{Lat: 35.8242, Lon: 127.1480}
	info, err := resolver.FromCoordinate(context.Background(), coord)
	require.NoError(t, err)

	assert.Equal(t, coord, info.Coordinate)
	assert.Equal(t, geo.Project(coord.Lat, coord.Lon), info.Grid)
	assert.Equal(t, "대한민국", info.Country)
	assert.Equal(t, "전라북도", info.Province)
	assert.Equal(t, "전주시", info.Locality)
	assert.Equal(t, "완산구", info.SubLocality)
	assert.Equal(t, "전주시, 전라북도", info.CityLabel())
}

func TestResolver_FromCoordinate_OutOfBounds(t *testing.T) {
	resolver := newResolver(&mockGeocoder{addresses: []location.Address{{
		Country:     "日本",
		CountryCode: "JP",
		Province:    "東京都",
	}}})

	info, err := resolver.FromCoordinate(context.Background(), geo.Coordinate{Lat: 35.6762, Lon: 139.6503})
	assert.ErrorIs(t, err, location.ErrOutOfBounds)
	assert.Nil(t, info) // no partial update for the caller to absorb
}

func TestResolver_FromCoordinate_InvalidCoordinate(t *testing.T) {
	resolver := newResolver(&mockGeocoder{addresses: []location.Address{jeonjuAddress()}})

	_, err := resolver.FromCoordinate(context.Background(), geo.Coordinate{Lat: 200, Lon: 0})
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinates)
}

func TestResolver_FromQuery(t *testing.T) {
	resolver := newResolver(&mockGeocoder{addresses: []location.Address{jeonjuAddress()}})

	info, err := resolver.FromQuery(context.Background(), "전주")
	require.NoError(t, err)

	// Coordinate and grid come from the geocoder's first result.
	assert.Equal(t, geo.Coordinate{Lat: 35.8242, Lon: 127.1480}, info.Coordinate)
	assert.Equal(t, geo.Project(35.8242, 127.1480), info.Grid)
}

func TestResolver_FromQuery_NotFound(t *testing.T) {
	resolver := newResolver(&mockGeocoder{})

	_, err := resolver.FromQuery(context.Background(), "없는곳어딘가")
	assert.ErrorIs(t, err, location.ErrNotFound)
}

func TestResolver_GeocoderFailure(t *testing.T) {
	resolver := newResolver(&mockGeocoder{err: errors.New("boom")})

	_, err := resolver.FromQuery(context.Background(), "서울")
	assert.ErrorIs(t, err, location.ErrGeocoderUnavailable)

	_, err = resolver.FromCoordinate(context.Background(), geo.Coordinate{Lat: 37.5, Lon: 127.0})
	assert.ErrorIs(t, err, location.ErrGeocoderUnavailable)
}

func TestInfo_CityLabel_WithoutLocality(t *testing.T) {
	info := &location.Info{Province: "세종특별자치시"}
	assert.Equal(t, "세종특별자치시", info.CityLabel())
}
