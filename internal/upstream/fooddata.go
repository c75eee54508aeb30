package upstream

import (
	"context"
	"net/url"
	"strconv"
)

// Nutrient is one entry of a food's nutrient list.
type Nutrient struct {
	ID       int     `json:"nutrientId"`
	Name     string  `json:"nutrientName"`
	Number   string  `json:"nutrientNumber"`
	UnitName string  `json:"unitName"`
	Value    float64 `json:"value"`
}

// Food is a food database search hit. Nutrients keep the upstream order.
type Food struct {
	Description string     `json:"description"`
	Nutrients   []Nutrient `json:"foodNutrients"`
}

// FoodData searches the food composition database.
type FoodData struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewFoodData creates a nutrition lookup client.
func NewFoodData(client *Client, baseURL, apiKey string) *FoodData {
	return &FoodData{client: client, baseURL: baseURL, apiKey: apiKey}
}

type foodSearchResponse struct {
	Foods []Food `json:"foods"`
}

// SearchFoods returns up to pageSize foods matching query.
func (f *FoodData) SearchFoods(ctx context.Context, query string, pageSize int) ([]Food, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("api_key", f.apiKey)

	var resp foodSearchResponse
	if err := f.client.getJSON(ctx, buildURL(f.baseURL, "/foods/search", params), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Foods, nil
}
