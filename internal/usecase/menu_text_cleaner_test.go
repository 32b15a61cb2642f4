package usecase

import (
	"testing"
)

func TestNewMenuTextCleaner(t *testing.T) {
	if c := NewMenuTextCleaner(true); !c.enableDebugLogging {
		t.Error("expected debug logging to be enabled")
	}
	if c := NewMenuTextCleaner(false); c.enableDebugLogging {
		t.Error("expected debug logging to be disabled")
	}
}

func TestClean(t *testing.T) {
	c := NewMenuTextCleaner(false)

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"removes piece count", "2 pcs Roti", "roti"},
		{"removes parenthetical note", "Paneer Curry (Jain)", "paneer curry"},
		{"removes bracketed note", "Kheer [limited]", "kheer"},
		{"removes noise words", "Fresh Hot Poha", "poha"},
		{"removes trailing portion", "Dal - 1 bowl", "dal"},
		{"removes gram weight", "Curd 200g", "curd"},
		{"removes leading multiplier", "3 x Idli", "idli"},
		{"removes punctuation", "Extra Butter!!", "butter"},
		{"removes bare numbers", "Rice 100", "rice"},
		{"keeps plain names", "Chole Bhature", "chole bhature"},
		{"noise only", "(limited)", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Clean(tc.input)
			if got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"100", true},
		{"0", true},
		{"", false},
		{"2pcs", false},
		{"roti", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := isNumeric(tc.input); got != tc.want {
				t.Errorf("isNumeric(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
