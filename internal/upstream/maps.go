package upstream

import (
	"context"
	"net/url"
	"strconv"
)

// GeocodeStatusOK is the geocoder status for a successful lookup.
const GeocodeStatusOK = "OK"

// LatLng is a coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocode is the outcome of a geocoding lookup. Location is only
// meaningful when Status is GeocodeStatusOK.
type Geocode struct {
	Status   string
	Location LatLng
}

// Place is a nearby search hit.
type Place struct {
	Name     string
	Address  string
	Rating   *float64 // nil when the place has no rating
	Location LatLng
}

// Maps wraps geocoding and nearby place search.
type Maps struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewMaps creates a geocoding and places client.
func NewMaps(client *Client, baseURL, apiKey string) *Maps {
	return &Maps{client: client, baseURL: baseURL, apiKey: apiKey}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address to coordinates. A non-OK upstream status is
// reported through Geocode.Status, not as an error.
func (m *Maps) Geocode(ctx context.Context, address string) (*Geocode, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", m.apiKey)

	var resp geocodeResponse
	if err := m.client.getJSON(ctx, buildURL(m.baseURL, "/geocode/json", params), nil, &resp); err != nil {
		return nil, err
	}

	result := &Geocode{Status: resp.Status}
	if resp.Status == GeocodeStatusOK && len(resp.Results) > 0 {
		result.Location = resp.Results[0].Geometry.Location
	} else if resp.Status == GeocodeStatusOK {
		result.Status = "ZERO_RESULTS"
	}
	return result, nil
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string   `json:"name"`
		Vicinity string   `json:"vicinity"`
		Rating   *float64 `json:"rating"`
		Geometry struct {
			Location LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NearbySearch lists places within radius meters of loc matching keyword.
func (m *Maps) NearbySearch(ctx context.Context, loc LatLng, radius int, keyword string) ([]Place, error) {
	params := url.Values{}
	params.Set("location", strconv.FormatFloat(loc.Lat, 'f', -1, 64)+","+strconv.FormatFloat(loc.Lng, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radius))
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	params.Set("key", m.apiKey)

	var resp nearbyResponse
	if err := m.client.getJSON(ctx, buildURL(m.baseURL, "/place/nearbysearch/json", params), nil, &resp); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, Place{
			Name:     r.Name,
			Address:  r.Vicinity,
			Rating:   r.Rating,
			Location: r.Geometry.Location,
		})
	}
	return places, nil
}
