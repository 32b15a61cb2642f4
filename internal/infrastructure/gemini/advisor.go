package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/messmeal/backend/internal/domain"
)

// jsonObjectPattern grabs the outermost {...} span of a model answer
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// MealAdvisor turns targets, intake and menus into coaching text with Gemini
type MealAdvisor struct {
	client *Client
}

// NewMealAdvisor creates an advisor backed by client
func NewMealAdvisor(client *Client) *MealAdvisor {
	return &MealAdvisor{client: client}
}

// Recommend asks for three meal combinations from the available menu.
// When the answer holds no parseable JSON the raw text is returned with an error message.
func (a *MealAdvisor) Recommend(ctx context.Context, advisory domain.AdvisoryContext) (*domain.Recommendations, error) {
	text, err := a.client.GenerateContent(ctx, textPart(recommendationPrompt(advisory)))
	if err != nil {
		return nil, err
	}
	return parseRecommendations(text), nil
}

// Guidance asks for next-meal advice given what is left of the daily target
func (a *MealAdvisor) Guidance(ctx context.Context, profile domain.BiometricProfile, target, current domain.Intake) (string, error) {
	return a.client.GenerateContent(ctx, textPart(guidancePrompt(profile, target, current)))
}

// Motivation asks for a short workout pep talk
func (a *MealAdvisor) Motivation(ctx context.Context, workoutDay, goal string) (string, error) {
	prompt := fmt.Sprintf(`Give a SHORT, POWERFUL motivational message (2-3 sentences) for someone:
- Doing: %s day
- Goal: %s

Make it energetic and action-focused!`, strings.ToUpper(workoutDay), strings.ToUpper(goal))

	return a.client.GenerateContent(ctx, textPart(prompt))
}

func parseRecommendations(text string) *domain.Recommendations {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return &domain.Recommendations{Error: "Could not parse recommendations", Raw: text}
	}

	var recs domain.Recommendations
	if err := json.Unmarshal([]byte(match), &recs); err != nil {
		return &domain.Recommendations{Error: "Invalid JSON response", Raw: text}
	}
	return &recs
}

func recommendationPrompt(advisory domain.AdvisoryContext) string {
	p := advisory.Profile
	target := advisory.DailyTarget
	current := advisory.CurrentIntake

	var b strings.Builder
	b.WriteString("You are a professional fitness coach and nutritionist.\n\n")

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Age: %d\n", p.Age)
	fmt.Fprintf(&b, "- Height: %g cm\n", p.Height)
	fmt.Fprintf(&b, "- Weight: %g kg\n", p.Weight)
	fmt.Fprintf(&b, "- Goal: %s (bulk/cut)\n", p.Goal)
	fmt.Fprintf(&b, "- Workout: %s\n\n", p.WorkoutToday)

	b.WriteString("DAILY TARGETS:\n")
	writeIntake(&b, target)
	b.WriteString("\nCURRENT INTAKE (eaten so far):\n")
	writeIntake(&b, current)

	b.WriteString("\nTODAY'S AVAILABLE MENU:\n")
	b.WriteString(indentMenu(advisory.MenuItems))
	b.WriteString(`

TASK:
1. Analyze the available menu items
2. Create 3 meal recommendations that:
   - Fit within daily macro targets
   - Consider the user's goal (bulk = high calories/protein, cut = high protein, low carbs)
   - Account for what they've already eaten
   - Are appropriate for their workout today
3. For each recommendation, specify:
   - Which items to eat
   - Portion sizes
   - Total macros (calories, protein, carbs, fats)
   - Why this combination is optimal
4. Provide 2-3 alternative food swaps if they don't like something

Format response as JSON with this structure:
{
    "recommendations": [
        {
            "name": "Recommendation 1",
            "description": "Best for muscle gain",
            "items": ["item1 - quantity", "item2 - quantity"],
            "total_macros": {"calories": 950, "protein": 52, "carbs": 98, "fats": 31},
            "reasoning": "Why this is optimal"
        }
    ],
    "alternatives": ["Alternative 1", "Alternative 2"],
    "motivation": "Motivational message about today's workout"
}`)
	return b.String()
}

func guidancePrompt(profile domain.BiometricProfile, target, current domain.Intake) string {
	remainingProtein := target.Protein - current.Protein
	remainingCalories := target.Calories - current.Calories

	return fmt.Sprintf(`As a fitness coach, provide personalized nutrition guidance.

User: %s phase
Workout today: %s

Daily target: %gg protein, %g calories
Current intake: %gg protein, %g calories
Remaining: %gg protein, %g calories

Provide:
1. A motivational message about today's progress
2. Specific recommendations for the next meal
3. Tips to hit remaining targets
4. If targets already met: Congratulations message

Keep response concise and actionable.`,
		strings.ToUpper(string(profile.Goal)), profile.WorkoutToday,
		target.Protein, target.Calories,
		current.Protein, current.Calories,
		remainingProtein, remainingCalories)
}

func writeIntake(b *strings.Builder, in domain.Intake) {
	fmt.Fprintf(b, "- Calories: %g\n", in.Calories)
	fmt.Fprintf(b, "- Protein: %gg\n", in.Protein)
	fmt.Fprintf(b, "- Carbs: %gg\n", in.Carbs)
	fmt.Fprintf(b, "- Fats: %gg\n", in.Fats)
}

func indentMenu(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "[]"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
