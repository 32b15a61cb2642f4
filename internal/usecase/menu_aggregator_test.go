package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/messmeal/backend/internal/domain"
)

const scannedWeek = `{
	"menus": [
		{
			"date": "2025-11-03",
			"day": "Monday",
			"meals": {
				"Lunch": ["Rajma Rice", "Mystery Stew"],
				"Breakfast": ["Poha", ""]
			}
		},
		{
			"meals": {
				"Dinner": {"Dal": 1, "Roti": 2}
			}
		}
	]
}`

func decodeMenu(t *testing.T, raw string) domain.MenuStructure {
	t.Helper()
	var structure domain.MenuStructure
	if err := json.Unmarshal([]byte(raw), &structure); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	return structure
}

func TestAggregate(t *testing.T) {
	a := NewMenuAggregator(newMessMatcher(MatcherConfig{}))
	menus := a.Aggregate(decodeMenu(t, scannedWeek))

	if len(menus) != 2 {
		t.Fatalf("len(menus) = %d, want 2", len(menus))
	}

	t.Run("keeps date day and meal order", func(t *testing.T) {
		first := menus[0]
		if first.Date != "2025-11-03" || first.Day != "Monday" {
			t.Errorf("date/day = %q/%q, want 2025-11-03/Monday", first.Date, first.Day)
		}
		keys := first.Meals.Keys()
		if len(keys) != 2 || keys[0] != "Lunch" || keys[1] != "Breakfast" {
			t.Errorf("meal types = %v, want [Lunch Breakfast]", keys)
		}
	})

	t.Run("resolves every named food", func(t *testing.T) {
		lunch, ok := menus[0].Meals.Get("Lunch")
		if !ok {
			t.Fatal("missing Lunch")
		}
		rajma, _ := lunch.Get("Rajma Rice")
		if !rajma.Matched || rajma.Calories != 450 {
			t.Errorf("Rajma Rice = %+v, want matched 450 kcal", rajma)
		}
		stew, _ := lunch.Get("Mystery Stew")
		if stew.Matched || stew.Name != "Mystery Stew" || stew.Calories != 100 {
			t.Errorf("Mystery Stew = %+v, want default record", stew)
		}
	})

	t.Run("skips empty names but keeps raw items", func(t *testing.T) {
		breakfast, _ := menus[0].Meals.Get("Breakfast")
		if breakfast.Len() != 1 {
			t.Errorf("resolved breakfast Len() = %d, want 1", breakfast.Len())
		}
		raw, _ := menus[0].RawItems.Get("Breakfast")
		if len(raw) != 2 || raw[0] != "Poha" || raw[1] != "" {
			t.Errorf("raw breakfast = %q, want [Poha \"\"]", raw)
		}
	})

	t.Run("fills missing date and day", func(t *testing.T) {
		second := menus[1]
		if second.Date != domain.UnknownDate {
			t.Errorf("Date = %q, want %q", second.Date, domain.UnknownDate)
		}
		if second.Day != domain.UnknownDay {
			t.Errorf("Day = %q, want %q", second.Day, domain.UnknownDay)
		}
	})

	t.Run("object meals use keys as names", func(t *testing.T) {
		dinner, _ := menus[1].Meals.Get("Dinner")
		keys := dinner.Keys()
		if len(keys) != 2 || keys[0] != "Dal" || keys[1] != "Roti" {
			t.Errorf("dinner foods = %v, want [Dal Roti]", keys)
		}
	})
}

func TestAggregate_EmptyMenus(t *testing.T) {
	a := NewMenuAggregator(newMessMatcher(MatcherConfig{}))

	got := a.Aggregate(domain.MenuStructure{})
	if got == nil {
		t.Fatal("Aggregate() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len(Aggregate()) = %d, want 0", len(got))
	}

	body, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(body) != "[]" {
		t.Errorf("json = %s, want []", body)
	}
}

func TestAggregate_JSONKeepsScannedOrder(t *testing.T) {
	a := NewMenuAggregator(newMessMatcher(MatcherConfig{}))

	body, err := json.Marshal(a.Aggregate(decodeMenu(t, scannedWeek)))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	out := string(body)

	lunch := strings.Index(out, `"Lunch"`)
	breakfast := strings.Index(out, `"Breakfast"`)
	if lunch < 0 || breakfast < 0 || lunch > breakfast {
		t.Errorf("expected Lunch before Breakfast in %s", out)
	}
	if !strings.Contains(out, `"raw_items":{"Lunch":["Rajma Rice","Mystery Stew"]`) {
		t.Errorf("expected raw items verbatim in %s", out)
	}
	if !strings.Contains(out, `"Rajma Rice":{"name":"Rajma Rice","calories":450`) {
		t.Errorf("expected flattened food record in %s", out)
	}
}
