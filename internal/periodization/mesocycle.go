package periodization

import (
	"fmt"
	"time"

	"alcyxob/training-periodization/internal/domain"
)

// MesocycleInput carries one sequencer slot plus the context needed to plan it.
type MesocycleInput struct {
	Slot               PhaseSlot
	Index              int // position of the slot in the sequence, zero-based
	StartDate          time.Time
	Frequency          int
	Level              domain.TrainingLevel
	Goal               domain.Goal
	TargetMuscleGroups []domain.MuscleGroup
}

// ProgressionShapes returns the volume and intensity progression of a phase.
func ProgressionShapes(phase domain.TrainingPhase) (volume, intensity domain.ProgressionShape) {
	switch phase {
	case domain.PhaseDeload:
		return domain.ShapeDescending, domain.ShapeDescending
	case domain.PhaseFoundation, domain.PhaseVolumeAccumulation:
		return domain.ShapeAscending, domain.ShapeConstant
	case domain.PhaseProgressiveOverload:
		return domain.ShapeStep, domain.ShapeStep
	case domain.PhaseIntensityAccumulation:
		return domain.ShapeConstant, domain.ShapeAscending
	case domain.PhaseStrength, domain.PhasePower, domain.PhasePeaking:
		return domain.ShapeDescending, domain.ShapeAscending
	case domain.PhaseMetabolic:
		return domain.ShapeWave, domain.ShapeWave
	default:
		return domain.ShapeConstant, domain.ShapeConstant
	}
}

// includesDeload applies both deload triggers: the slot itself is a deload, or
// the slot index falls on the cadence. The cadence trigger is suppressed for
// single-week slots and for slots already followed by a deload so two deload
// weeks never sit next to each other.
func includesDeload(slot PhaseSlot, index, cadence int) bool {
	if slot.IsDeload {
		return true
	}
	if cadence <= 0 || (index+1)%cadence != 0 {
		return false
	}
	return slot.Weeks > 1 && !slot.FollowedByDeload
}

// PlanMesocycle expands one slot into a mesocycle with one microcycle per week.
func PlanMesocycle(in MesocycleInput) domain.MesoCycle {
	desc := DescribePhase(in.Slot.Phase)
	volShape, intShape := ProgressionShapes(in.Slot.Phase)
	deload := includesDeload(in.Slot, in.Index, DeloadCadence(in.Level))

	meso := domain.MesoCycle{
		Name:                 fmt.Sprintf("Block %d: %s", in.Index+1, desc.Title),
		Phase:                in.Slot.Phase,
		DurationWeeks:        in.Slot.Weeks,
		StartDate:            in.StartDate,
		EndDate:              AddWeeks(in.StartDate, in.Slot.Weeks),
		VolumeProgression:    volShape,
		IntensityProgression: intShape,
		IncludesDeload:       deload,
		DeloadStrategy:       DeloadStrategyFor(in.Level, in.Goal),
		DeloadTiming:         DeloadTimingFor(in.Level),
		PrimaryFocus:         append([]string(nil), desc.PrimaryFocus...),
		SecondaryFocus:       append([]string(nil), desc.SecondaryFocus...),
		SpecialTechniques:    append([]string(nil), desc.SpecialTechniques...),
		ProgressionModel:     desc.ProgressionModel,
		AdaptationMarkers:    append([]string(nil), desc.AdaptationMarkers...),
		MicroCycles:          make([]domain.MicroCycle, 0, in.Slot.Weeks),
	}

	cursor := in.StartDate
	for w := 0; w < in.Slot.Weeks; w++ {
		// a cadence-triggered deload lands on the final week of a training block
		isDeloadWeek := in.Slot.IsDeload || (deload && w == in.Slot.Weeks-1)
		week := PlanMicrocycle(MicrocycleInput{
			Phase:              in.Slot.Phase,
			WeekIndex:          w,
			IsDeload:           isDeloadWeek,
			Frequency:          in.Frequency,
			Level:              in.Level,
			TargetMuscleGroups: in.TargetMuscleGroups,
			StartDate:          cursor,
		})
		meso.MicroCycles = append(meso.MicroCycles, week)
		cursor = week.EndDate
	}
	return meso
}

// clampEnd caps the mesocycle and its last week at end.
func clampEnd(meso *domain.MesoCycle, end time.Time) {
	meso.EndDate = minTime(meso.EndDate, end)
	if n := len(meso.MicroCycles); n > 0 {
		last := &meso.MicroCycles[n-1]
		last.EndDate = minTime(last.EndDate, end)
	}
}
