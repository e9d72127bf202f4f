package periodization

import (
	"math"

	"alcyxob/training-periodization/internal/domain"
)

// NutritionInput drives NutritionPeriodizer. TotalWeeks is the training week
// count of the macrocycle; when zero it is derived from DurationMonths.
type NutritionInput struct {
	Goal           domain.Goal
	Level          domain.TrainingLevel
	DurationMonths int
	TotalWeeks     int
}

type nutritionTemplate struct {
	name          string
	stance        domain.CalorieStance
	fraction      float64
	proteinOffset float64
	carbs         string
	fat           string
	deload        bool
}

const (
	carbsHigh     = "high carbohydrate, emphasised around training"
	carbsModerate = "moderate carbohydrate, timed around training"
	carbsCycled   = "carbohydrate cycling, higher on training days"
	carbsLow      = "low carbohydrate outside the training window"
	fatModerate   = "moderate fat, 25-30% of calories"
	fatLow        = "lower fat, 20-25% of calories"
)

var nutritionTemplates = map[domain.Goal][]nutritionTemplate{
	domain.GoalHypertrophy: {
		{name: "Accumulation Surplus", stance: domain.CalorieSurplus, fraction: 0.6, carbs: carbsHigh, fat: fatModerate},
		{name: "Intensification Surplus", stance: domain.CalorieSurplus, fraction: 0.3, proteinOffset: 0.1, carbs: carbsHigh, fat: fatModerate},
		{name: "Deload Maintenance", stance: domain.CalorieMaintenance, fraction: 0.1, carbs: carbsModerate, fat: fatModerate, deload: true},
	},
	domain.GoalStrength: {
		{name: "Base Building Surplus", stance: domain.CalorieSurplus, fraction: 0.5, carbs: carbsHigh, fat: fatModerate},
		{name: "Strength Maintenance", stance: domain.CalorieMaintenance, fraction: 0.4, proteinOffset: 0.1, carbs: carbsModerate, fat: fatModerate},
		{name: "Deload Maintenance", stance: domain.CalorieMaintenance, fraction: 0.1, carbs: carbsModerate, fat: fatModerate, deload: true},
	},
	domain.GoalPower: {
		{name: "Power Base Surplus", stance: domain.CalorieSurplus, fraction: 0.4, carbs: carbsHigh, fat: fatModerate},
		{name: "Power Maintenance", stance: domain.CalorieMaintenance, fraction: 0.5, proteinOffset: 0.1, carbs: carbsCycled, fat: fatModerate},
		{name: "Deload Maintenance", stance: domain.CalorieMaintenance, fraction: 0.1, carbs: carbsModerate, fat: fatModerate, deload: true},
	},
	domain.GoalFatLoss: {
		{name: "Initial Deficit", stance: domain.CalorieDeficit, fraction: 0.45, proteinOffset: 0.4, carbs: carbsLow, fat: fatModerate},
		{name: "Diet Break", stance: domain.CalorieMaintenance, fraction: 0.1, carbs: carbsModerate, fat: fatModerate},
		{name: "Final Deficit", stance: domain.CalorieDeficit, fraction: 0.35, proteinOffset: 0.5, carbs: carbsCycled, fat: fatLow},
		{name: "Deload Maintenance", stance: domain.CalorieMaintenance, fraction: 0.1, carbs: carbsModerate, fat: fatModerate, deload: true},
	},
	domain.GoalGeneralFitness: {
		{name: "Maintenance", stance: domain.CalorieMaintenance, fraction: 0.7, carbs: carbsModerate, fat: fatModerate},
		{name: "Recomposition Deficit", stance: domain.CalorieDeficit, fraction: 0.2, proteinOffset: 0.3, carbs: carbsCycled, fat: fatModerate},
		{name: "Deload Maintenance", stance: domain.CalorieMaintenance, fraction: 0.1, carbs: carbsModerate, fat: fatModerate, deload: true},
	},
}

// ProteinBaseline is grams of protein per kg of bodyweight by level.
func ProteinBaseline(level domain.TrainingLevel) float64 {
	switch level {
	case domain.LevelIntermediate:
		return 1.8
	case domain.LevelAdvanced, domain.LevelElite:
		return 2.0
	default:
		return 1.6
	}
}

// MonthsToWeeks converts a month count to whole weeks (52 weeks per 12 months).
func MonthsToWeeks(months int) int {
	return int(math.Round(float64(months) * 52 / 12))
}

// PlanNutrition derives the ordered nutrition phases for a program. Each
// template fraction is rounded to whole weeks; non-deload phases keep at
// least one week, empty deload phases are dropped, and rounding drift is
// absorbed by the longest phase so durations sum to the total.
func PlanNutrition(in NutritionInput) []domain.NutritionPhase {
	total := in.TotalWeeks
	if total <= 0 {
		total = MonthsToWeeks(in.DurationMonths)
	}
	if total <= 0 {
		return nil
	}
	template, ok := nutritionTemplates[in.Goal]
	if !ok {
		template = nutritionTemplates[domain.GoalGeneralFitness]
	}
	base := ProteinBaseline(in.Level)

	phases := make([]domain.NutritionPhase, 0, len(template))
	sum := 0
	longest := -1
	for _, t := range template {
		weeks := int(math.Round(t.fraction * float64(total)))
		if !t.deload {
			weeks = max(1, weeks)
		}
		if weeks == 0 {
			continue
		}
		phases = append(phases, domain.NutritionPhase{
			Name:                 t.name,
			CalorieStance:        t.stance,
			ProteinGramsPerKg:    math.Round((base+t.proteinOffset)*10) / 10,
			CarbohydrateStrategy: t.carbs,
			FatStrategy:          t.fat,
			DurationWeeks:        weeks,
		})
		sum += weeks
		if longest < 0 || weeks > phases[longest].DurationWeeks {
			longest = len(phases) - 1
		}
	}

	if drift := total - sum; drift != 0 && longest >= 0 {
		if adjusted := phases[longest].DurationWeeks + drift; adjusted >= 1 {
			phases[longest].DurationWeeks = adjusted
		}
	}
	return phases
}
