package domain

// Goal is the user's training phase
type Goal string

const (
	GoalBulk     Goal = "bulk"
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
)

// ActivityLevel selects the TDEE multiplier
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Gender selects the Mifflin-St Jeor constant
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// BiometricProfile holds the body metrics a user enters during onboarding.
// Range validation happens in the request layer.
type BiometricProfile struct {
	Age           int           `json:"age" binding:"required,gt=0"`
	Height        float64       `json:"height" binding:"required,gt=0"` // cm
	Weight        float64       `json:"weight" binding:"required,gt=0"` // kg
	Gender        Gender        `json:"gender,omitempty"`
	Goal          Goal          `json:"goal" binding:"required"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	WorkoutToday  string        `json:"workout_today"`
}

// MacroTargets are daily targets: kcal and grams of each macro
type MacroTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// TargetDiagnostics reports which defaults or corrections were applied while computing targets
type TargetDiagnostics struct {
	GoalDefaulted     bool `json:"goal_defaulted"`
	ActivityDefaulted bool `json:"activity_defaulted"`
	GenderDefaulted   bool `json:"gender_defaulted"`
	CaloriesClamped   bool `json:"calories_clamped"`
	CarbsClamped      bool `json:"carbs_clamped"`
}

// ProfileTargets is the full result of running a profile through the calculator
type ProfileTargets struct {
	TDEE        int               `json:"tdee"`
	Targets     MacroTargets      `json:"daily_targets"`
	Goal        Goal              `json:"goal"`
	Activity    ActivityLevel     `json:"activity_level"`
	Diagnostics TargetDiagnostics `json:"diagnostics"`
}

// Intake is what the user has eaten so far today. Values may be fractional.
type Intake struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
