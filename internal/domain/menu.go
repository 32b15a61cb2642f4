package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Placeholders used when the scanner could not read a date or weekday
const (
	UnknownDate = "unknown"
	UnknownDay  = "Unknown"
)

// MenuStructure is what the menu scanner extracts from an uploaded menu
type MenuStructure struct {
	Menus []MenuEntry `json:"menus"`
}

// MenuEntry is one dated menu: meal type (Breakfast, Lunch, ...) to raw food names
type MenuEntry struct {
	Date  string    `json:"date"`
	Day   string    `json:"day"`
	Meals MealItems `json:"meals"`
}

// MealItems maps a meal type to the raw food names listed for it, in scanned order
type MealItems = OrderedMap[FoodList]

// ResolvedMeals maps a meal type to its resolved foods, keyed by raw food name
type ResolvedMeals = OrderedMap[NamedFoods]

// ResolvedMenuEntry is a MenuEntry annotated with nutrition for every food.
// RawItems keeps the scanned meals untouched.
type ResolvedMenuEntry struct {
	Date     string        `json:"date"`
	Day      string        `json:"day"`
	Meals    ResolvedMeals `json:"meals"`
	RawItems MealItems     `json:"raw_items"`
}

// FoodList is a list of raw food names as the scanner reported them.
//
// It decodes from a JSON array or from an object, in which case the object's
// keys are the names. Non-string array elements are kept as their JSON text
// and null becomes an empty name.
type FoodList []string

// UnmarshalJSON accepts ["a", "b"] or {"a": ..., "b": ...}
func (l *FoodList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		names := make(FoodList, 0, len(raw))
		for _, item := range raw {
			names = append(names, rawName(item))
		}
		*l = names
		return nil
	case '{':
		var set OrderedMap[json.RawMessage]
		if err := set.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		*l = set.Keys()
		return nil
	default:
		return fmt.Errorf("food list must be an array or object, got %s", string(trimmed))
	}
}

func rawName(item json.RawMessage) string {
	item = bytes.TrimSpace(item)
	if bytes.Equal(item, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s
	}
	return string(item)
}
