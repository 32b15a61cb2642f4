package catalog

import (
	"log"

	"github.com/messmeal/backend/internal/domain"
)

// Catalog is an immutable nutrition dataset keyed by normalized food name.
// It is safe for concurrent reads; nothing mutates it after New returns.
type Catalog struct {
	keys    []string
	records map[string]domain.FoodRecord
}

// New builds a catalog from food definitions. Names are normalized with
// domain.NormalizeFoodKey; a repeated key keeps its first position but takes the later record.
func New(foods []domain.FoodRecord) *Catalog {
	c := &Catalog{
		keys:    make([]string, 0, len(foods)),
		records: make(map[string]domain.FoodRecord, len(foods)),
	}

	for _, food := range foods {
		key := domain.NormalizeFoodKey(food.Name)
		if _, exists := c.records[key]; !exists {
			c.keys = append(c.keys, key)
		}
		c.records[key] = food
	}

	log.Printf("[CATALOG] Nutrition database initialized with %d food items", len(c.keys))
	return c
}

// Get returns the record stored under an already normalized key
func (c *Catalog) Get(key string) (domain.FoodRecord, bool) {
	record, ok := c.records[key]
	return record, ok
}

// Keys returns all keys in insertion order
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Size returns the number of distinct keys
func (c *Catalog) Size() int {
	return len(c.keys)
}
