package gemini

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/messmeal/backend/internal/domain"
)

const menuFormat = `Return ONLY a valid JSON object in this exact format:
{
    "menus": [
        {
            "date": "2025-11-01",
            "day": "Friday",
            "meals": {
                "Breakfast": ["Poha", "Tea", "Banana"],
                "Lunch": ["Dal Rice", "Paneer Curry", "Roti", "Curd"],
                "Dinner": ["Rajma Rice", "Mixed Veg", "Salad"]
            }
        }
    ]
}`

const imageMenuPrompt = `You are a menu parser. Extract the complete menu structure from this image.

IMPORTANT: Extract dates, meal types (Breakfast/Lunch/Dinner/Snacks), and food items.

` + menuFormat + `

Rules:
1. Extract actual dates if present (format: YYYY-MM-DD)
2. Extract day names (Monday, Tuesday, etc.) if present
3. Group items by meal type: Breakfast, Lunch, Dinner, Snacks
4. Only include actual food items, not prices or descriptions
5. If no dates visible, use "date": "unknown"
6. Return ONLY the JSON object, no markdown formatting, no code blocks

Extract from this image:`

const pdfMenuPrompt = `You are a menu parser. Extract the complete menu structure from this PDF.

IMPORTANT: Extract dates, meal types (Breakfast/Lunch/Dinner/Snacks), and food items.

` + menuFormat + `

Rules:
1. Extract actual dates from the PDF (format: YYYY-MM-DD)
2. Extract day names (Monday, Tuesday, etc.)
3. Group items by meal type: Breakfast, Lunch, Dinner, Snacks
4. Only include actual food items, ignore prices/descriptions
5. If multiple dates present, create separate entries for each
6. Return ONLY the JSON object, no markdown formatting, no code blocks
7. Handle both English and Hindi text

Extract from this PDF:`

// MenuScanner extracts menu structures from menu photos and PDFs with Gemini vision
type MenuScanner struct {
	client *Client
}

// NewMenuScanner creates a scanner backed by client
func NewMenuScanner(client *Client) *MenuScanner {
	return &MenuScanner{client: client}
}

// ScanMenu sends the document to Gemini and decodes the menu JSON it answers with.
// Transport failures are returned; an answer that is not valid menu JSON yields no menus.
func (s *MenuScanner) ScanMenu(ctx context.Context, doc domain.MenuDocument) (*domain.MenuStructure, error) {
	var parts []part
	if doc.IsPDF() {
		parts = []part{blobPart(doc.MimeType, doc.Data), textPart(pdfMenuPrompt)}
	} else {
		parts = []part{textPart(imageMenuPrompt), blobPart(doc.MimeType, doc.Data)}
	}

	text, err := s.client.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, err
	}
	s.client.debugLog("scan response (first 200 chars): %s", truncate(text, 200))

	structure, err := parseMenuStructure(text)
	if err != nil {
		log.Printf("[SCANNER] Could not parse menu from %s: %v", doc.Filename, err)
		return &domain.MenuStructure{Menus: []domain.MenuEntry{}}, nil
	}

	log.Printf("[SCANNER] Extracted %d menu entries from %s", len(structure.Menus), doc.Filename)
	return structure, nil
}

func parseMenuStructure(text string) (*domain.MenuStructure, error) {
	var structure domain.MenuStructure
	if err := json.Unmarshal([]byte(cleanJSONResponse(text)), &structure); err != nil {
		return nil, err
	}
	if structure.Menus == nil {
		structure.Menus = []domain.MenuEntry{}
	}
	return &structure, nil
}

// cleanJSONResponse strips a surrounding markdown code fence
func cleanJSONResponse(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
