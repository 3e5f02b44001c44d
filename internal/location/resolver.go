package location

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nalssiboard/nalssiboard/internal/geo"
)

// Geocoder defines the interface for forward/reverse geocoding
// providers.
type Geocoder interface {
	// Reverse resolves a coordinate into candidate addresses.
	Reverse(ctx context.Context, coord geo.Coordinate) ([]Address, error)

	// Search resolves a free-text query into candidate addresses.
	Search(ctx context.Context, query string) ([]Address, error)

	// Name returns the provider name for logging.
	Name() string
}

// ResolverConfig holds configuration for the resolver.
type ResolverConfig struct {
	// Geocoder is the geocoding provider.
	Geocoder Geocoder

	// Logger for resolver operations.
	Logger zerolog.Logger
}

// Resolver turns coordinates and queries into validated Info values.
type Resolver struct {
	geocoder Geocoder
	logger   zerolog.Logger
}

// NewResolver creates a new location resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	return &Resolver{
		geocoder: cfg.Geocoder,
		logger:   cfg.Logger,
	}
}

// FromCoordinate resolves a map-click coordinate. The returned Info
// keeps the clicked coordinate; only the names come from the geocoder.
func (r *Resolver) FromCoordinate(ctx context.Context, coord geo.Coordinate) (*Info, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	addresses, err := r.geocoder.Reverse(ctx, coord)
	if err != nil {
		r.logger.Error().Err(err).
			Float64("lat", coord.Lat).
			Float64("lon", coord.Lon).
			Str("provider", r.geocoder.Name()).
			Msg("reverse geocoding failed")
		return nil, ErrGeocoderUnavailable
	}
	if len(addresses) == 0 {
		return nil, ErrNotFound
	}

	return r.resolve(addresses[0], coord)
}

// FromQuery resolves a free-text search. The coordinate comes from the
// geocoder's first result.
func (r *Resolver) FromQuery(ctx context.Context, query string) (*Info, error) {
	addresses, err := r.geocoder.Search(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).
			Str("query", query).
			Str("provider", r.geocoder.Name()).
			Msg("forward geocoding failed")
		return nil, ErrGeocoderUnavailable
	}
	if len(addresses) == 0 {
		return nil, ErrNotFound
	}

	addr := addresses[0]
	return r.resolve(addr, addr.Coordinate)
}

// resolve applies the shared validation and assembles the Info. It
// returns an error without any partial result, so callers can always
// retain their previous location on failure.
func (r *Resolver) resolve(addr Address, coord geo.Coordinate) (*Info, error) {
	if addr.CountryCode != SupportedCountryCode {
		r.logger.Warn().
			Str("country", addr.Country).
			Str("country_code", addr.CountryCode).
			Msg("resolved location outside supported country")
		return nil, ErrOutOfBounds
	}

	return &Info{
		Coordinate:  coord,
		Grid:        geo.ProjectCoordinate(coord),
		Country:     addr.Country,
		Province:    addr.Province,
		Locality:    addr.Locality,
		SubLocality: addr.SubLocality,
	}, nil
}
