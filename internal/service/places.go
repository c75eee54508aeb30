package service

import (
	"context"

	"github.com/dailyhub/dailyhub/internal/upstream"
)

// PlaceSearchRadius is the nearby search radius in meters.
const PlaceSearchRadius = 2000

// Place is a point of interest near a city center.
type Place struct {
	Name     string
	Address  string
	Rating   *float64
	Location upstream.LatLng
}

// PlacesByCity geocodes city and lists nearby places matching keyword.
func (g *Gateway) PlacesByCity(ctx context.Context, city, keyword string) ([]Place, error) {
	geo, err := g.up.Places.Geocode(ctx, city)
	if err != nil {
		return nil, upstreamError("Failed to look up city.", err)
	}
	if geo.Status != upstream.GeocodeStatusOK {
		return nil, validationError("City not found.")
	}

	found, err := g.up.Places.NearbySearch(ctx, geo.Location, PlaceSearchRadius, keyword)
	if err != nil {
		return nil, upstreamError("Failed to search places.", err)
	}

	places := make([]Place, 0, len(found))
	for _, p := range found {
		places = append(places, Place{
			Name:     p.Name,
			Address:  p.Address,
			Rating:   p.Rating,
			Location: p.Location,
		})
	}
	return places, nil
}
