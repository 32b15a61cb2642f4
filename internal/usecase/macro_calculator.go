package usecase

import (
	"math"

	"github.com/messmeal/backend/internal/domain"
)

// activityMultipliers maps activity levels to their TDEE multiplier
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// Goal adjustments: calorie offset from TDEE and protein grams per kg of body weight
const (
	bulkSurplus         = 300.0
	cutDeficit          = 500.0
	bulkProteinPerKg    = 2.0
	cutProteinPerKg     = 2.2
	defaultProteinPerKg = 1.8

	fatCalorieShare = 0.25
	kcalPerGramFat  = 9.0
	kcalPerGramPC   = 4.0 // protein and carbohydrate
)

// MacroCalculator turns body metrics into daily energy and macro targets.
// It holds no state.
type MacroCalculator struct{}

// NewMacroCalculator creates a new calculator
func NewMacroCalculator() *MacroCalculator {
	return &MacroCalculator{}
}

// EstimateDailyEnergyExpenditure returns TDEE in kcal: Mifflin-St Jeor BMR times
// the activity multiplier. Unknown activity levels use the moderate multiplier.
// Rounds half to even.
func (c *MacroCalculator) EstimateDailyEnergyExpenditure(age int, heightCM, weightKG float64, gender domain.Gender, activity domain.ActivityLevel) int {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == domain.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = activityMultipliers[domain.ActivityModerate]
	}

	return int(math.RoundToEven(bmr * multiplier))
}

// ComputeMacroTargets splits a TDEE into calories, protein, fats and carbs for a goal.
// Fats take 25% of calories and carbs the remainder; each field is rounded on its own.
// Negative calories or carbs are clamped to zero.
func (c *MacroCalculator) ComputeMacroTargets(tdee int, goal domain.Goal, weightKG float64) domain.MacroTargets {
	targets, _ := c.computeMacroTargets(tdee, goal, weightKG)
	return targets
}

func (c *MacroCalculator) computeMacroTargets(tdee int, goal domain.Goal, weightKG float64) (domain.MacroTargets, domain.TargetDiagnostics) {
	var diag domain.TargetDiagnostics

	var calories, protein float64
	switch goal {
	case domain.GoalBulk:
		calories = float64(tdee) + bulkSurplus
		protein = weightKG * bulkProteinPerKg
	case domain.GoalCut:
		calories = float64(tdee) - cutDeficit
		protein = weightKG * cutProteinPerKg
	default:
		calories = float64(tdee)
		protein = weightKG * defaultProteinPerKg
	}

	if calories < 0 {
		calories = 0
		diag.CaloriesClamped = true
	}

	fats := calories * fatCalorieShare / kcalPerGramFat
	carbs := (calories - protein*kcalPerGramPC - fats*kcalPerGramFat) / kcalPerGramPC
	if carbs < 0 {
		carbs = 0
		diag.CarbsClamped = true
	}

	return domain.MacroTargets{
		Calories: int(math.RoundToEven(calories)),
		Protein:  int(math.RoundToEven(protein)),
		Carbs:    int(math.RoundToEven(carbs)),
		Fats:     int(math.RoundToEven(fats)),
	}, diag
}

// Calculate runs a full profile through the calculator and reports which
// defaults were applied. An empty gender is treated as male.
func (c *MacroCalculator) Calculate(profile domain.BiometricProfile) domain.ProfileTargets {
	var diag domain.TargetDiagnostics

	gender := profile.Gender
	if gender == "" {
		gender = domain.GenderMale
		diag.GenderDefaulted = true
	}

	activity := profile.ActivityLevel
	if _, ok := activityMultipliers[activity]; !ok {
		activity = domain.ActivityModerate
		diag.ActivityDefaulted = true
	}

	goal := profile.Goal
	if goal != domain.GoalBulk && goal != domain.GoalCut && goal != domain.GoalMaintain {
		goal = domain.GoalMaintain
		diag.GoalDefaulted = true
	}

	tdee := c.EstimateDailyEnergyExpenditure(profile.Age, profile.Height, profile.Weight, gender, activity)
	targets, clamp := c.computeMacroTargets(tdee, goal, profile.Weight)
	diag.CaloriesClamped = clamp.CaloriesClamped
	diag.CarbsClamped = clamp.CarbsClamped

	return domain.ProfileTargets{
		TDEE:        tdee,
		Targets:     targets,
		Goal:        goal,
		Activity:    activity,
		Diagnostics: diag,
	}
}
