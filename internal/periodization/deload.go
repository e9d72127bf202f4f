package periodization

import "alcyxob/training-periodization/internal/domain"

// FatigueDeloadThreshold is the expected-fatigue score that triggers an
// unplanned deload for auto-regulated levels.
const FatigueDeloadThreshold = 7.5

// DeloadCadence is the number of weeks between planned deloads.
func DeloadCadence(level domain.TrainingLevel) int {
	switch level {
	case domain.LevelBeginner:
		return 6
	case domain.LevelIntermediate:
		return 5
	case domain.LevelAdvanced, domain.LevelElite:
		return 4
	default:
		return 6
	}
}

// DeloadStrategyFor picks how load is reduced on deload weeks. Beginners always
// cut volume only; more experienced trainees get a goal-specific strategy.
func DeloadStrategyFor(level domain.TrainingLevel, goal domain.Goal) domain.DeloadStrategy {
	if level == domain.LevelBeginner {
		return domain.DeloadVolumeReduction
	}
	switch goal {
	case domain.GoalStrength:
		return domain.DeloadVolumeIntensityReduction
	case domain.GoalHypertrophy:
		return domain.DeloadVolumeReduction
	case domain.GoalPower:
		return domain.DeloadFrequencyReduction
	case domain.GoalFatLoss:
		return domain.DeloadActiveRecovery
	default:
		return domain.DeloadVolumeReduction
	}
}

// DeloadTimingFor picks the scheduling mode for deloads.
func DeloadTimingFor(level domain.TrainingLevel) domain.DeloadTiming {
	switch level {
	case domain.LevelIntermediate:
		return domain.DeloadTimingHybrid
	case domain.LevelAdvanced, domain.LevelElite:
		return domain.DeloadTimingAutoregulated
	default:
		return domain.DeloadTimingFixed
	}
}

// BuildDeloadSchedule derives the macrocycle deload policy.
func BuildDeloadSchedule(level domain.TrainingLevel, goal domain.Goal) domain.DeloadSchedule {
	timing := DeloadTimingFor(level)
	auto := timing != domain.DeloadTimingFixed
	sched := domain.DeloadSchedule{
		FrequencyWeeks: DeloadCadence(level),
		Strategy:       DeloadStrategyFor(level, goal),
		Timing:         timing,
		AutoRegulation: auto,
	}
	if auto {
		sched.FatigueThreshold = FatigueDeloadThreshold
	}
	return sched
}
