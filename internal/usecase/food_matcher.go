package usecase

import (
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/messmeal/backend/internal/domain"
)

// Substring candidate orders
const (
	SubstringOrderInsertion = "insertion" // catalog order, first hit wins
	SubstringOrderLongest   = "longest"   // longest key first, catalog order breaks ties
)

// Nutrition assumed for a food the catalog does not know
const (
	defaultCalories = 100.0
	defaultProtein  = 3.0
	defaultCarbs    = 15.0
	defaultFats     = 3.0
	defaultPortion  = "1 serving"
)

// MatcherConfig holds configuration for the food matcher
type MatcherConfig struct {
	SubstringOrder      string
	CleanScannedText    bool
	EnableFuzzyMatching bool
	FuzzyEditDistance   int
	EnableDebugLogging  bool
}

// FoodMatcher resolves free-text food names against the catalog.
// Every call returns a record; unknown foods get DefaultRecord.
type FoodMatcher struct {
	catalog            domain.FoodCatalog
	candidates         []string
	cleaner            *MenuTextCleaner
	enableFuzzy        bool
	fuzzyEditDistance  int
	enableDebugLogging bool
}

// NewFoodMatcher creates a matcher over catalog. The substring candidate
// order is fixed here so results never depend on map iteration.
func NewFoodMatcher(catalog domain.FoodCatalog, config MatcherConfig) *FoodMatcher {
	candidates := catalog.Keys()
	if config.SubstringOrder == SubstringOrderLongest {
		sort.SliceStable(candidates, func(i, j int) bool {
			return utf8.RuneCountInString(candidates[i]) > utf8.RuneCountInString(candidates[j])
		})
	}

	fuzzyDist := config.FuzzyEditDistance
	if fuzzyDist <= 0 {
		fuzzyDist = 1 // Default edit distance of 1
	}

	m := &FoodMatcher{
		catalog:            catalog,
		candidates:         candidates,
		enableFuzzy:        config.EnableFuzzyMatching,
		fuzzyEditDistance:  fuzzyDist,
		enableDebugLogging: config.EnableDebugLogging,
	}
	if config.CleanScannedText {
		m.cleaner = NewMenuTextCleaner(config.EnableDebugLogging)
	}
	return m
}

// DefaultRecord is the stand-in nutrition for a food the catalog does not know
func DefaultRecord(name string) domain.FoodRecord {
	return domain.FoodRecord{
		Name:     name,
		Calories: defaultCalories,
		Protein:  defaultProtein,
		Carbs:    defaultCarbs,
		Fats:     defaultFats,
		Portion:  defaultPortion,
	}
}

// Resolve maps a food name to a catalog record: exact key, then substring in
// either direction, then the optional cleaned and fuzzy passes, then the default.
func (m *FoodMatcher) Resolve(query string) domain.FoodMatch {
	key := domain.NormalizeFoodKey(query)
	if key == "" {
		return defaultMatch(query)
	}

	if record, kind, ok := m.lookup(key); ok {
		return m.found(query, record, kind)
	}

	if m.cleaner != nil {
		if cleaned := m.cleaner.Clean(key); cleaned != "" && cleaned != key {
			if record, _, ok := m.lookup(cleaned); ok {
				return m.found(query, record, domain.MatchCleaned)
			}
			key = cleaned
		}
	}

	if m.enableFuzzy {
		if record, ok := m.fuzzyLookup(key); ok {
			return m.found(query, record, domain.MatchFuzzy)
		}
	}

	if m.enableDebugLogging {
		log.Printf("[MATCH] No catalog entry for %q, using default", query)
	}
	return defaultMatch(query)
}

// ResolveBatch resolves every non-empty name, keyed by the name as given.
// A repeated name keeps its first position.
func (m *FoodMatcher) ResolveBatch(names []string) domain.NamedFoods {
	result := domain.NewOrderedMap[domain.FoodMatch](len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		result.Set(name, m.Resolve(name))
	}
	return result
}

// ResolveKeys resolves a set of names. Keys are visited in sorted order.
func (m *FoodMatcher) ResolveKeys(names map[string]struct{}) domain.NamedFoods {
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)
	return m.ResolveBatch(ordered)
}

// lookup tries an exact key hit, then the first candidate that contains or is contained by key
func (m *FoodMatcher) lookup(key string) (domain.FoodRecord, domain.MatchKind, bool) {
	if record, ok := m.catalog.Get(key); ok {
		return record, domain.MatchExact, true
	}

	for _, candidate := range m.candidates {
		if strings.Contains(key, candidate) || strings.Contains(candidate, key) {
			record, _ := m.catalog.Get(candidate)
			return record, domain.MatchSubstring, true
		}
	}

	return domain.FoodRecord{}, "", false
}

// fuzzyLookup returns the first candidate whose every token has a close token in key
func (m *FoodMatcher) fuzzyLookup(key string) (domain.FoodRecord, bool) {
	queryTokens := strings.Fields(key)
	if len(queryTokens) == 0 {
		return domain.FoodRecord{}, false
	}

	for _, candidate := range m.candidates {
		if m.tokensCovered(strings.Fields(candidate), queryTokens) {
			record, _ := m.catalog.Get(candidate)
			return record, true
		}
	}
	return domain.FoodRecord{}, false
}

func (m *FoodMatcher) tokensCovered(candidateTokens, queryTokens []string) bool {
	for _, ct := range candidateTokens {
		covered := false
		for _, qt := range queryTokens {
			if fuzzyTokenMatch(ct, qt, m.fuzzyEditDistance) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return len(candidateTokens) > 0
}

func (m *FoodMatcher) found(query string, record domain.FoodRecord, kind domain.MatchKind) domain.FoodMatch {
	if m.enableDebugLogging {
		log.Printf("[MATCH] %q -> %q (%s)", query, record.Name, kind)
	}
	return domain.FoodMatch{FoodRecord: record, Matched: true, Match: kind}
}

func defaultMatch(query string) domain.FoodMatch {
	return domain.FoodMatch{FoodRecord: DefaultRecord(query), Matched: false, Match: domain.MatchDefault}
}

// fuzzyTokenMatch checks if two tokens are similar within the edit distance threshold
func fuzzyTokenMatch(token1, token2 string, threshold int) bool {
	if token1 == token2 {
		return true
	}

	// Only apply fuzzy matching to tokens of 4+ chars to avoid false positives
	if utf8.RuneCountInString(token1) < 4 || utf8.RuneCountInString(token2) < 4 {
		return false
	}

	// Quick length check - if lengths differ by more than threshold, can't match
	lenDiff := utf8.RuneCountInString(token1) - utf8.RuneCountInString(token2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > threshold {
		return false
	}

	return levenshteinDistance(token1, token2) <= threshold
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Use two rows instead of full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
