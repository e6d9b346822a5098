package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"arogya/internal/models/response_models"
	mem "arogya/pkg/memcache"
)

// SpoonacularService is a best-effort nutrition lookup: a missing key or
// any transport/API fault degrades to an empty result, never an error
// surfaced to the caller.
type SpoonacularService interface {
	SearchIngredients(ctx context.Context, query string) []response_models.Ingredient
	IngredientInfo(ctx context.Context, id int) *response_models.IngredientInfo
}

type spoonacularClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	cache      mem.LookupCache
	cacheTTL   time.Duration
}

const spoonacularBaseURL = "https://api.spoonacular.com"

func NewSpoonacularService(cache mem.LookupCache) SpoonacularService {
	return &spoonacularClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     os.Getenv("SPOONACULAR_API_KEY"),
		baseURL:    spoonacularBaseURL,
		cache:      cache,
		cacheTTL:   time.Hour,
	}
}

func (s *spoonacularClient) SearchIngredients(ctx context.Context, query string) []response_models.Ingredient {
	if s.apiKey == "" || query == "" {
		return []response_models.Ingredient{}
	}

	cacheKey := "spoon:search:" + query
	if cached, ok := s.cache.Get(cacheKey); ok {
		if hits, ok := cached.([]response_models.Ingredient); ok {
			return hits
		}
	}

	var payload struct {
		Results []response_models.Ingredient `json:"results"`
	}
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("query", query)
	params.Set("number", "10")
	if err := s.getJSON(ctx, "/food/ingredients/search", params, &payload); err != nil {
		log.Printf("Spoonacular ingredient search failed: %v", err)
		return []response_models.Ingredient{}
	}

	s.cache.Set(cacheKey, payload.Results, s.cacheTTL)
	return payload.Results
}

func (s *spoonacularClient) IngredientInfo(ctx context.Context, id int) *response_models.IngredientInfo {
	if s.apiKey == "" {
		return nil
	}

	var payload struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Nutrition struct {
			Nutrients []response_models.NutrientAmount `json:"nutrients"`
		} `json:"nutrition"`
	}
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("amount", "1")
	params.Set("unit", "serving")
	path := fmt.Sprintf("/food/ingredients/%d/information", id)
	if err := s.getJSON(ctx, path, params, &payload); err != nil {
		log.Printf("Spoonacular ingredient info failed: %v", err)
		return nil
	}

	return &response_models.IngredientInfo{
		ID:        payload.ID,
		Name:      payload.Name,
		Nutrients: payload.Nutrition.Nutrients,
	}
}

func (s *spoonacularClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spoonacular status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
