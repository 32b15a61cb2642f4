package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// FoodCatalog is the read-only nutrition dataset the matcher searches
type FoodCatalog interface {
	Get(key string) (FoodRecord, bool)
	Keys() []string
	Size() int
}

// MenuScanner extracts a menu structure from an uploaded image or PDF
type MenuScanner interface {
	ScanMenu(ctx context.Context, doc MenuDocument) (*MenuStructure, error)
}

// MealAdvisor produces natural-language advice from targets and menus
type MealAdvisor interface {
	Recommend(ctx context.Context, advisory AdvisoryContext) (*Recommendations, error)
	Guidance(ctx context.Context, profile BiometricProfile, target, current Intake) (string, error)
	Motivation(ctx context.Context, workoutDay, goal string) (string, error)
}
