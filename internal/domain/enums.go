package domain

// Goal is the primary adaptation a program is built around.
type Goal string

const (
	GoalHypertrophy    Goal = "hypertrophy"
	GoalStrength       Goal = "strength"
	GoalPower          Goal = "power"
	GoalFatLoss        Goal = "fat_loss"
	GoalGeneralFitness Goal = "general_fitness"
)

// Goals lists every supported goal in a stable order.
var Goals = []Goal{GoalHypertrophy, GoalStrength, GoalPower, GoalFatLoss, GoalGeneralFitness}

// IsValid reports whether g is one of the known goals.
func (g Goal) IsValid() bool {
	switch g {
	case GoalHypertrophy, GoalStrength, GoalPower, GoalFatLoss, GoalGeneralFitness:
		return true
	}
	return false
}

// TrainingLevel is the trainee's experience (training age).
type TrainingLevel string

const (
	LevelBeginner     TrainingLevel = "beginner"
	LevelIntermediate TrainingLevel = "intermediate"
	LevelAdvanced     TrainingLevel = "advanced"
	LevelElite        TrainingLevel = "elite"
)

// TrainingLevels lists every level from least to most experienced.
var TrainingLevels = []TrainingLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelElite}

func (l TrainingLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelElite:
		return true
	}
	return false
}

// Rank orders levels so callers can gate on "intermediate and above".
// Unknown levels rank below beginner.
func (l TrainingLevel) Rank() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	case LevelElite:
		return 4
	}
	return 0
}

// TrainingPhase is the emphasis of one mesocycle.
type TrainingPhase string

const (
	PhaseFoundation            TrainingPhase = "foundation"
	PhaseVolumeAccumulation    TrainingPhase = "volume_accumulation"
	PhaseIntensityAccumulation TrainingPhase = "intensity_accumulation"
	PhaseProgressiveOverload   TrainingPhase = "progressive_overload"
	PhaseStrength              TrainingPhase = "strength"
	PhasePower                 TrainingPhase = "power"
	PhasePeaking               TrainingPhase = "peaking"
	PhaseMetabolic             TrainingPhase = "metabolic"
	PhaseDeload                TrainingPhase = "deload"
)

// TrainingPhases lists every phase the sequencer can emit.
var TrainingPhases = []TrainingPhase{
	PhaseFoundation,
	PhaseVolumeAccumulation,
	PhaseIntensityAccumulation,
	PhaseProgressiveOverload,
	PhaseStrength,
	PhasePower,
	PhasePeaking,
	PhaseMetabolic,
	PhaseDeload,
}

func (p TrainingPhase) IsDeload() bool {
	return p == PhaseDeload
}

// ProgressionShape describes how a scalar moves across the weeks of a mesocycle.
type ProgressionShape string

const (
	ShapeAscending  ProgressionShape = "ascending"
	ShapeDescending ProgressionShape = "descending"
	ShapeWave       ProgressionShape = "wave"
	ShapeStep       ProgressionShape = "step"
	ShapeConstant   ProgressionShape = "constant"
)

// DeloadStrategy is how load is reduced during a deload week.
type DeloadStrategy string

const (
	DeloadVolumeReduction          DeloadStrategy = "volume_reduction"
	DeloadVolumeIntensityReduction DeloadStrategy = "volume_intensity_reduction"
	DeloadFrequencyReduction       DeloadStrategy = "frequency_reduction"
	DeloadActiveRecovery           DeloadStrategy = "active_recovery"
)

// DeloadTiming is how deload weeks are scheduled.
type DeloadTiming string

const (
	DeloadTimingFixed         DeloadTiming = "fixed"         // on the calendar cadence only
	DeloadTimingHybrid        DeloadTiming = "hybrid"        // cadence, or earlier on fatigue
	DeloadTimingAutoregulated DeloadTiming = "autoregulated" // driven by readiness and fatigue
)

// CalorieStance is the energy balance of a nutrition phase.
type CalorieStance string

const (
	CalorieSurplus     CalorieStance = "surplus"
	CalorieMaintenance CalorieStance = "maintenance"
	CalorieDeficit     CalorieStance = "deficit"
)

// PeriodizationType is the overall structuring strategy of a macrocycle.
type PeriodizationType string

const (
	PeriodizationBlock      PeriodizationType = "block"
	PeriodizationLinear     PeriodizationType = "linear"
	PeriodizationUndulating PeriodizationType = "undulating"
)

func (p PeriodizationType) IsValid() bool {
	switch p {
	case PeriodizationBlock, PeriodizationLinear, PeriodizationUndulating:
		return true
	}
	return false
}

// MuscleGroup keys the per-week volume distribution.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleLegs      MuscleGroup = "legs"
	MuscleCore      MuscleGroup = "core"
)

// MuscleGroups lists every group in distribution order.
var MuscleGroups = []MuscleGroup{MuscleChest, MuscleBack, MuscleShoulders, MuscleArms, MuscleLegs, MuscleCore}

func (m MuscleGroup) IsValid() bool {
	switch m {
	case MuscleChest, MuscleBack, MuscleShoulders, MuscleArms, MuscleLegs, MuscleCore:
		return true
	}
	return false
}
