package usecase

import (
	"log"
	"regexp"
	"strings"
)

// MenuTextCleaner strips the noise a menu scan leaves around dish names:
// portion counts, parenthetical notes, punctuation and filler words.
type MenuTextCleaner struct {
	enableDebugLogging bool
}

// Compiled regex patterns for menu text cleaning
var (
	// Matches portion/quantity patterns like "2 pcs", "1 bowl", "100g", "250 ml", "1/2 plate"
	portionPattern = regexp.MustCompile(`\b\d+(?:[./]\d+)?\s*(?:pcs?|pieces?|nos?|plates?|bowls?|katoris?|cups?|glass(?:es)?|tbsp|tsp|gms?|grams?|g|ml|kg|servings?)\b`)

	// Matches leading counts like "2 x roti" or "2 roti"
	leadingCountPattern = regexp.MustCompile(`^\d+\s*[x*]?\s+`)

	// Matches parenthetical notes like "(jain)" or "[limited]"
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

	// Anything that is not a letter, digit or space
	menuPunctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// menuNoiseWords are menu descriptors that never distinguish one dish from another
var menuNoiseWords = map[string]bool{
	"fresh": true, "hot": true, "homemade": true, "seasonal": true,
	"tasty": true, "delicious": true, "served": true, "with": true,
	"and": true, "of": true, "extra": true, "full": true, "half": true,
	"small": true, "medium": true, "large": true, "mini": true,
	"limited": true, "unlimited": true, "optional": true, "only": true,
}

// NewMenuTextCleaner creates a new cleaner
func NewMenuTextCleaner(enableDebugLogging bool) *MenuTextCleaner {
	return &MenuTextCleaner{enableDebugLogging: enableDebugLogging}
}

// Clean returns a lower-cased dish name with noise removed.
// It may return "" when nothing but noise was present.
func (c *MenuTextCleaner) Clean(text string) string {
	original := text
	cleaned := strings.ToLower(text)

	cleaned = parentheticalPattern.ReplaceAllString(cleaned, " ")
	cleaned = portionPattern.ReplaceAllString(cleaned, " ")
	cleaned = menuPunctuationPattern.ReplaceAllString(cleaned, " ")
	cleaned = leadingCountPattern.ReplaceAllString(strings.TrimSpace(cleaned), "")

	words := strings.Fields(cleaned)
	kept := words[:0]
	for _, word := range words {
		if menuNoiseWords[word] || isNumeric(word) {
			continue
		}
		kept = append(kept, word)
	}
	cleaned = whitespacePattern.ReplaceAllString(strings.Join(kept, " "), " ")

	if c.enableDebugLogging {
		log.Printf("[CLEAN] Input: %q -> Output: %q", original, cleaned)
	}

	return strings.TrimSpace(cleaned)
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
