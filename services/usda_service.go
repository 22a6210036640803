package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Elziee/BIOOO-comp/config"
)

// Nutrients is the normalized macro view of a food.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodResult is one search candidate, normalized across sources.
type FoodResult struct {
	FoodID    string    `json:"food_id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"` // "usda" or "local"
	Nutrients Nutrients `json:"nutrients"`
}

// USDAService talks to the FoodData Central search endpoint.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewUSDAService initializes the USDAService with credentials and HTTP client.
func NewUSDAService(cfg *config.Config) *USDAService {
	return &USDAService{
		apiKey:  cfg.USDAAPIKey,
		baseURL: cfg.USDABaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// SearchFoods calls the FoodData Central /foods/search endpoint.
type foodNutrient struct {
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
}

type foodSearchResponse struct {
	Foods []struct {
		FdcID         int64          `json:"fdcId"`
		Description   string         `json:"description"`
		FoodNutrients []foodNutrient `json:"foodNutrients"`
	} `json:"foods"`
}

func (s *USDAService) SearchFoods(query string) ([]FoodResult, error) {
	// Build request URL, restricted to the survey dataset
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("query", query)
	params.Set("dataType", "Survey (FNDDS)")
	params.Set("pageSize", "10")
	u := fmt.Sprintf("%s/foods/search?%s", s.baseURL, params.Encode())

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA search JSON: %w", err)
	}

	results := make([]FoodResult, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		results = append(results, FoodResult{
			FoodID: strconv.FormatInt(f.FdcID, 10),
			Name:   f.Description,
			Source: "usda",
			Nutrients: Nutrients{
				Calories: nutrientValue(f.FoodNutrients, "Energy"),
				Protein:  nutrientValue(f.FoodNutrients, "Protein"),
				Carbs:    nutrientValue(f.FoodNutrients, "Carbohydrate, by difference"),
				Fat:      nutrientValue(f.FoodNutrients, "Total lipid (fat)"),
			},
		})
	}
	return results, nil
}

// nutrientValue picks the first nutrient with the given name; absent resolves to 0.
func nutrientValue(list []foodNutrient, name string) float64 {
	for _, n := range list {
		if n.NutrientName == name {
			return n.Value
		}
	}
	return 0
}
