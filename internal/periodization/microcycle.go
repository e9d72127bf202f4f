package periodization

import (
	"math"
	"time"

	"alcyxob/training-periodization/internal/domain"
)

const (
	scaleMin = 1.0
	scaleMax = 10.0
	scaleMid = 5.0

	deloadVolume    = 3.0
	deloadIntensity = 3.0
	deloadRIR       = 4
	deloadFatigue   = 3.0
	minTrainingDays = 2

	normalReadiness = 7.0
	deloadReadiness = 5.0
)

// MicrocycleInput describes one week to plan.
type MicrocycleInput struct {
	Phase              domain.TrainingPhase
	WeekIndex          int // zero-based within the mesocycle
	IsDeload           bool
	Frequency          int // training days per week
	Level              domain.TrainingLevel
	TargetMuscleGroups []domain.MuscleGroup
	StartDate          time.Time
}

// weekLoad is the phase-specific shape of one week before clamping.
type weekLoad struct {
	volume    float64
	intensity float64
	rir       int
	fixedRIR  bool // RIR does not taper across the mesocycle
}

func phaseLoad(phase domain.TrainingPhase, w int) weekLoad {
	fw := float64(w)
	switch phase {
	case domain.PhaseFoundation:
		return weekLoad{volume: scaleMid + 0.25*fw, intensity: scaleMid, rir: 3}
	case domain.PhaseVolumeAccumulation:
		return weekLoad{volume: scaleMid + 0.5*fw, intensity: scaleMid, rir: 2}
	case domain.PhaseProgressiveOverload:
		return weekLoad{volume: scaleMid + 0.25*fw, intensity: scaleMid + 0.25*fw, rir: 2}
	case domain.PhaseIntensityAccumulation:
		return weekLoad{volume: scaleMid, intensity: scaleMid + 0.5*fw, rir: 1}
	case domain.PhaseStrength:
		return weekLoad{volume: scaleMid - 0.25*fw, intensity: 6 + 0.5*fw, rir: 1}
	case domain.PhasePower:
		return weekLoad{volume: 4, intensity: 6 + 0.5*fw, rir: 1}
	case domain.PhasePeaking:
		return weekLoad{volume: 3, intensity: 9 + 0.5*fw, rir: 0, fixedRIR: true}
	case domain.PhaseMetabolic:
		// 6 ± 1, starting high
		vol := 7.0
		if w%2 == 1 {
			vol = 5.0
		}
		return weekLoad{volume: vol, intensity: 4, rir: 2}
	default:
		return weekLoad{volume: scaleMid, intensity: scaleMid, rir: 2}
	}
}

// PlanMicrocycle derives one training week. Deload weeks override the phase
// shape entirely.
func PlanMicrocycle(in MicrocycleInput) domain.MicroCycle {
	week := domain.MicroCycle{
		WeekNumber: in.WeekIndex + 1,
		StartDate:  in.StartDate,
		EndDate:    AddWeeks(in.StartDate, 1),
		IsDeload:   in.IsDeload,
	}

	if in.IsDeload {
		week.Volume = deloadVolume
		week.Intensity = deloadIntensity
		week.TargetRIR = deloadRIR
		week.TrainingDays = max(minTrainingDays, in.Frequency-1)
		week.VolumeDistribution = VolumeDistribution(domain.PhaseDeload)
		week.FatigueManagement = domain.FatigueManagement{
			ExpectedFatigue:    deloadFatigue,
			RecoveryStrategies: RecoveryStrategies(true, in.Level),
			ReadinessThreshold: deloadReadiness,
		}
		return week
	}

	load := phaseLoad(in.Phase, in.WeekIndex)
	rir := load.rir
	if !load.fixedRIR {
		rir -= in.WeekIndex / 2
	}

	week.Volume = clampScale(load.volume)
	week.Intensity = clampScale(load.intensity)
	week.TargetRIR = max(0, rir)
	week.TrainingDays = in.Frequency
	week.VolumeDistribution = WeightedVolumeDistribution(in.Phase, in.TargetMuscleGroups)
	week.FatigueManagement = domain.FatigueManagement{
		ExpectedFatigue:    math.Min(scaleMax, scaleMid+float64(in.WeekIndex)),
		RecoveryStrategies: RecoveryStrategies(false, in.Level),
		ReadinessThreshold: normalReadiness,
	}
	return week
}

func clampScale(v float64) float64 {
	return math.Max(scaleMin, math.Min(scaleMax, v))
}
