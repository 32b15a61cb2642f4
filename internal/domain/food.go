package domain

import "strings"

// FoodRecord is the nutrition data for one serving of a known food
type FoodRecord struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // grams
	Carbs    float64 `json:"carbs"`    // grams
	Fats     float64 `json:"fats"`     // grams
	Portion  string  `json:"portion"`
}

// MatchKind records which resolution step produced a FoodMatch
type MatchKind string

const (
	MatchExact     MatchKind = "exact"
	MatchSubstring MatchKind = "substring"
	MatchCleaned   MatchKind = "cleaned"
	MatchFuzzy     MatchKind = "fuzzy"
	MatchDefault   MatchKind = "default"
)

// FoodMatch is a resolved food record plus whether it came from the catalog.
// The record fields are flattened into the JSON object.
type FoodMatch struct {
	FoodRecord
	Matched bool      `json:"matched"`
	Match   MatchKind `json:"match"`
}

// NamedFoods maps original (unnormalized) food names to their resolved records
type NamedFoods = OrderedMap[FoodMatch]

// NormalizeFoodKey lower-cases and trims a food name into a catalog key
func NormalizeFoodKey(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
