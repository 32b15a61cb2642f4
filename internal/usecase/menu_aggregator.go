package usecase

import (
	"github.com/messmeal/backend/internal/domain"
)

// MenuAggregator annotates scanned menus with nutrition from the food matcher
type MenuAggregator struct {
	matcher *FoodMatcher
}

// NewMenuAggregator creates a new aggregator
func NewMenuAggregator(matcher *FoodMatcher) *MenuAggregator {
	return &MenuAggregator{matcher: matcher}
}

// Aggregate resolves every food of every meal of every menu entry.
// Entries and meal types keep the scanner's order; nothing is filtered or merged.
// A missing date or day is replaced with a placeholder.
func (a *MenuAggregator) Aggregate(structure domain.MenuStructure) []domain.ResolvedMenuEntry {
	resolved := make([]domain.ResolvedMenuEntry, 0, len(structure.Menus))

	for _, entry := range structure.Menus {
		date := entry.Date
		if date == "" {
			date = domain.UnknownDate
		}
		day := entry.Day
		if day == "" {
			day = domain.UnknownDay
		}

		mealTypes := entry.Meals.Keys()
		meals := domain.NewOrderedMap[domain.NamedFoods](len(mealTypes))
		for _, mealType := range mealTypes {
			items, _ := entry.Meals.Get(mealType)
			meals.Set(mealType, a.matcher.ResolveBatch(items))
		}

		resolved = append(resolved, domain.ResolvedMenuEntry{
			Date:     date,
			Day:      day,
			Meals:    meals,
			RawItems: entry.Meals,
		})
	}

	return resolved
}
