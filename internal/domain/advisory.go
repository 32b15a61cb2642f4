package domain

import "encoding/json"

// MenuDocument is an uploaded menu file
type MenuDocument struct {
	Filename string
	MimeType string
	Data     []byte
}

// IsPDF reports whether the document should be sent as a PDF
func (d MenuDocument) IsPDF() bool {
	return d.MimeType == "application/pdf"
}

// AdvisoryContext is everything the advisory service sees when recommending meals
type AdvisoryContext struct {
	Profile       BiometricProfile `json:"user_profile"`
	MenuItems     json.RawMessage  `json:"menu_items"`
	CurrentIntake Intake           `json:"current_intake"`
	DailyTarget   Intake           `json:"daily_target"`
}

// Recommendation is one suggested meal combination
type Recommendation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	TotalMacros Intake   `json:"total_macros"`
	Reasoning   string   `json:"reasoning"`
}

// Recommendations is the advisory answer. When the model output cannot be
// parsed, Error and Raw are set instead of the structured fields.
type Recommendations struct {
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Alternatives    []string         `json:"alternatives,omitempty"`
	Motivation      string           `json:"motivation,omitempty"`
	Error           string           `json:"error,omitempty"`
	Raw             string           `json:"raw,omitempty"`
}
