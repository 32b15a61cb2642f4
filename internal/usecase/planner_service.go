package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/messmeal/backend/internal/domain"
)

// PlannerServiceConfig holds configuration for the planner service
type PlannerServiceConfig struct {
	CacheTTL time.Duration
	Matcher  MatcherConfig
}

// PlannerService wires the nutrition engine to the scanning and advisory
// collaborators and caches their answers.
type PlannerService struct {
	cache       domain.CacheRepository
	scanner     domain.MenuScanner
	advisor     domain.MealAdvisor
	matcher     *FoodMatcher
	calculator  *MacroCalculator
	aggregator  *MenuAggregator
	catalogSize int
	cacheTTL    time.Duration
}

// NewPlannerService creates a new planner service with dependencies
func NewPlannerService(
	catalog domain.FoodCatalog,
	cache domain.CacheRepository,
	scanner domain.MenuScanner,
	advisor domain.MealAdvisor,
	config PlannerServiceConfig,
) *PlannerService {
	matcher := NewFoodMatcher(catalog, config.Matcher)

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &PlannerService{
		cache:       cache,
		scanner:     scanner,
		advisor:     advisor,
		matcher:     matcher,
		calculator:  NewMacroCalculator(),
		aggregator:  NewMenuAggregator(matcher),
		catalogSize: catalog.Size(),
		cacheTTL:    cacheTTL,
	}
}

// CatalogSize returns the number of foods the matcher searches
func (s *PlannerService) CatalogSize() int {
	return s.catalogSize
}

// SetupProfile computes TDEE and daily macro targets for a profile
func (s *PlannerService) SetupProfile(profile domain.BiometricProfile) domain.ProfileTargets {
	return s.calculator.Calculate(profile)
}

// SearchFood resolves a single food name
func (s *PlannerService) SearchFood(name string) domain.FoodMatch {
	return s.matcher.Resolve(name)
}

// ResolveMenu annotates an already extracted menu structure
func (s *PlannerService) ResolveMenu(structure domain.MenuStructure) []domain.ResolvedMenuEntry {
	return s.aggregator.Aggregate(structure)
}

// ScanMenu extracts a menu from an uploaded document and resolves its foods.
// Flow: check cache -> scan via Gemini -> aggregate -> cache -> return
func (s *PlannerService) ScanMenu(ctx context.Context, doc domain.MenuDocument) ([]domain.ResolvedMenuEntry, error) {
	if len(doc.Data) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := scanCacheKey(doc.Data)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if menus, ok := cached.([]domain.ResolvedMenuEntry); ok && len(menus) > 0 {
			log.Printf("[PLANNER] Scan cache hit for %s", doc.Filename)
			return menus, nil
		}
		// Unusable entry: drop it and scan again
		if err := s.cache.Delete(ctx, cacheKey); err != nil {
			log.Printf("[PLANNER] Failed to drop cached scan for %s: %v", doc.Filename, err)
		}
	}

	structure, err := s.scanner.ScanMenu(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", doc.Filename, err)
	}

	menus := s.aggregator.Aggregate(*structure)
	log.Printf("[PLANNER] Resolved %d menu entries from %s", len(menus), doc.Filename)

	// Empty scans stay uncached so a re-upload scans again
	if len(menus) == 0 {
		return menus, nil
	}

	if err := s.cache.Set(ctx, cacheKey, menus, s.cacheTTL); err != nil {
		log.Printf("[PLANNER] Failed to cache scan result: %v", err)
	}

	return menus, nil
}

// Recommend asks the advisor for meal combinations
func (s *PlannerService) Recommend(ctx context.Context, advisory domain.AdvisoryContext) (*domain.Recommendations, error) {
	return s.advisor.Recommend(ctx, advisory)
}

// Guidance asks the advisor for next-meal guidance
func (s *PlannerService) Guidance(ctx context.Context, profile domain.BiometricProfile, target, current domain.Intake) (string, error) {
	return s.advisor.Guidance(ctx, profile, target, current)
}

// Motivation returns a workout motivation message, cached per workout day and goal
func (s *PlannerService) Motivation(ctx context.Context, workoutDay, goal string) (string, error) {
	if strings.TrimSpace(workoutDay) == "" || strings.TrimSpace(goal) == "" {
		return "", domain.ErrInvalidRequest
	}

	cacheKey := fmt.Sprintf("motivation:%s:%s", strings.ToLower(workoutDay), strings.ToLower(goal))
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if message, ok := cached.(string); ok {
			return message, nil
		}
	}

	message, err := s.advisor.Motivation(ctx, workoutDay, goal)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, cacheKey, message, s.cacheTTL); err != nil {
		log.Printf("[PLANNER] Failed to cache motivation: %v", err)
	}
	return message, nil
}

// scanCacheKey identifies an upload by content so re-uploads skip the scanner
func scanCacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	return "scan:" + hex.EncodeToString(sum[:])
}
