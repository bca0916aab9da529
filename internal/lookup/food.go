// internal/lookup/food.go
package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	defaultFoodURL = "https://world.openfoodfacts.org/cgi/search.pl"
	foodPageSize   = 5
)

// FoodClient resolves food queries through the OpenFoodFacts search API.
type FoodClient struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

func NewFoodClient(baseURL string, logger zerolog.Logger) *FoodClient {
	if baseURL == "" {
		baseURL = defaultFoodURL
	}
	return &FoodClient{
		httpClient: &http.Client{Timeout: lookupTimeout},
		baseURL:    baseURL,
		log:        logger,
	}
}

type foodSearchResponse struct {
	Products []foodProduct `json:"products"`
}

type foodProduct struct {
	ProductName string         `json:"product_name"`
	GenericName string         `json:"generic_name"`
	Nutriments  map[string]any `json:"nutriments"`
}

// FoodEnergy scans the first page of ranked candidates and returns the
// first product with a parsable energy-kcal_100g value. The display name
// falls back from product_name to generic_name to the query itself.
func (f *FoodClient) FoodEnergy(ctx context.Context, query string) (FoodInfo, bool) {
	params := url.Values{}
	params.Set("action", "process")
	params.Set("search_terms", query)
	params.Set("json", "true")
	params.Set("page_size", strconv.Itoa(foodPageSize))

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return FoodInfo{}, false
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.log.Warn().Err(err).Str("query", query).Msg("food search request failed")
		return FoodInfo{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Warn().Int("status", resp.StatusCode).Str("query", query).Msg("food service returned non-200")
		return FoodInfo{}, false
	}

	var payload foodSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		f.log.Warn().Err(err).Str("query", query).Msg("could not decode food payload")
		return FoodInfo{}, false
	}

	for _, p := range payload.Products {
		kcal, ok := parseKcal(p.Nutriments["energy-kcal_100g"])
		if !ok {
			continue
		}
		name := strings.TrimSpace(p.ProductName)
		if name == "" {
			name = strings.TrimSpace(p.GenericName)
		}
		if name == "" {
			name = query
		}
		return FoodInfo{Name: name, KcalPer100g: kcal}, true
	}
	return FoodInfo{}, false
}

// parseKcal tolerates the mixed typing of OpenFoodFacts nutriments, where
// energy values show up as numbers or as strings.
func parseKcal(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		kcal, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return kcal, true
	case json.Number:
		kcal, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return kcal, true
	default:
		return 0, false
	}
}
