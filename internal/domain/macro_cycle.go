// internal/domain/macro_cycle.go
package domain

import (
	"time"
)

// FatigueManagement is the recovery block attached to every training week.
type FatigueManagement struct {
	ExpectedFatigue    float64  `json:"expectedFatigue"`    // 1-10
	RecoveryStrategies []string `json:"recoveryStrategies"` // ordered, de-duplicated
	ReadinessThreshold float64  `json:"readinessThreshold"` // minimum readiness to proceed with the week
}

// MicroCycle is one training week inside a MesoCycle.
type MicroCycle struct {
	ID                 string              `json:"id"`
	WeekNumber         int                 `json:"weekNumber"` // 1-based within the mesocycle
	StartDate          time.Time           `json:"startDate"`
	EndDate            time.Time           `json:"endDate"` // exclusive
	IsDeload           bool                `json:"isDeload"`
	Volume             float64             `json:"volume"`    // 1-10
	Intensity          float64             `json:"intensity"` // 1-10
	TargetRIR          int                 `json:"targetRir"`
	TrainingDays       int                 `json:"trainingDays"`
	VolumeDistribution map[MuscleGroup]int `json:"volumeDistribution"` // percentages summing to 100
	FatigueManagement  FatigueManagement   `json:"fatigueManagement"`
}

// MesoCycle is a block of 1-6 weeks dedicated to one TrainingPhase.
type MesoCycle struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Phase                TrainingPhase    `json:"phase"`
	DurationWeeks        int              `json:"durationWeeks"`
	StartDate            time.Time        `json:"startDate"`
	EndDate              time.Time        `json:"endDate"` // exclusive
	MicroCycles          []MicroCycle     `json:"microCycles"`
	VolumeProgression    ProgressionShape `json:"volumeProgression"`
	IntensityProgression ProgressionShape `json:"intensityProgression"`
	IncludesDeload       bool             `json:"includesDeload"`
	DeloadStrategy       DeloadStrategy   `json:"deloadStrategy"`
	DeloadTiming         DeloadTiming     `json:"deloadTiming"`
	PrimaryFocus         []string         `json:"primaryFocus"`
	SecondaryFocus       []string         `json:"secondaryFocus"`
	SpecialTechniques    []string         `json:"specialTechniques"`
	ProgressionModel     string           `json:"progressionModel"`
	AdaptationMarkers    []string         `json:"adaptationMarkers"`
}

// DeloadSchedule is the macrocycle-wide deload policy.
type DeloadSchedule struct {
	FrequencyWeeks   int            `json:"frequencyWeeks"`
	Strategy         DeloadStrategy `json:"strategy"`
	Timing           DeloadTiming   `json:"timing"`
	AutoRegulation   bool           `json:"autoRegulation"`
	FatigueThreshold float64        `json:"fatigueThreshold"` // 0 when auto-regulation is off
}

// NutritionPhase is owned by the MacroCycle, independent of mesocycle boundaries.
type NutritionPhase struct {
	Name                 string        `json:"name"`
	CalorieStance        CalorieStance `json:"calorieStance"`
	ProteinGramsPerKg    float64       `json:"proteinGramsPerKg"`
	CarbohydrateStrategy string        `json:"carbohydrateStrategy"`
	FatStrategy          string        `json:"fatStrategy"`
	DurationWeeks        int           `json:"durationWeeks"`
}

// MacroCycle is the complete multi-month program produced for one generation request.
type MacroCycle struct {
	ID                     string            `json:"id"`
	UserID                 string            `json:"userId"`
	Name                   string            `json:"name"`
	Description            string            `json:"description,omitempty"`
	DurationMonths         int               `json:"durationMonths"`
	TotalWeeks             int               `json:"totalWeeks"`
	MesoCycles             []MesoCycle       `json:"mesoCycles"`
	PeriodizationType      PeriodizationType `json:"periodizationType"`
	PrimaryGoal            Goal              `json:"primaryGoal"`
	SecondaryGoals         []Goal            `json:"secondaryGoals,omitempty"`
	TrainingLevel          TrainingLevel     `json:"trainingLevel"`
	TrainingFrequency      int               `json:"trainingFrequency"`
	TargetMuscleGroups     []MuscleGroup     `json:"targetMuscleGroups,omitempty"`
	StartDate              time.Time         `json:"startDate"`
	EndDate                time.Time         `json:"endDate"` // exclusive
	IsActive               bool              `json:"isActive"`
	DeloadSchedule         DeloadSchedule    `json:"deloadSchedule"`
	NutritionPeriodization []NutritionPhase  `json:"nutritionPeriodization"`
	CreatedAt              time.Time         `json:"createdAt"`
}

// CurrentWeek locates the mesocycle and microcycle covering at.
// ok is false when at falls outside [StartDate, EndDate).
func (m *MacroCycle) CurrentWeek(at time.Time) (meso *MesoCycle, micro *MicroCycle, ok bool) {
	for i := range m.MesoCycles {
		mc := &m.MesoCycles[i]
		if at.Before(mc.StartDate) || !at.Before(mc.EndDate) {
			continue
		}
		for j := range mc.MicroCycles {
			w := &mc.MicroCycles[j]
			if !at.Before(w.StartDate) && at.Before(w.EndDate) {
				return mc, w, true
			}
		}
	}
	return nil, nil, false
}
