package periodization

import "alcyxob/training-periodization/internal/domain"

// PhaseSlot is one mesocycle-sized chunk of the program.
type PhaseSlot struct {
	Phase            domain.TrainingPhase
	Weeks            int
	IsDeload         bool
	FollowedByDeload bool
}

var phaseTemplates = map[domain.Goal][]domain.TrainingPhase{
	domain.GoalHypertrophy: {
		domain.PhaseFoundation,
		domain.PhaseVolumeAccumulation,
		domain.PhaseIntensityAccumulation,
		domain.PhaseDeload,
		domain.PhaseVolumeAccumulation,
		domain.PhaseProgressiveOverload,
		domain.PhaseDeload,
	},
	domain.GoalStrength: {
		domain.PhaseFoundation,
		domain.PhaseIntensityAccumulation,
		domain.PhaseStrength,
		domain.PhaseDeload,
		domain.PhaseStrength,
		domain.PhasePeaking,
		domain.PhaseDeload,
	},
	domain.GoalPower: {
		domain.PhaseFoundation,
		domain.PhaseStrength,
		domain.PhasePower,
		domain.PhaseDeload,
		domain.PhasePower,
		domain.PhasePeaking,
		domain.PhaseDeload,
	},
	domain.GoalFatLoss: {
		domain.PhaseFoundation,
		domain.PhaseMetabolic,
		domain.PhaseVolumeAccumulation,
		domain.PhaseDeload,
		domain.PhaseMetabolic,
		domain.PhaseProgressiveOverload,
		domain.PhaseDeload,
	},
	domain.GoalGeneralFitness: {
		domain.PhaseFoundation,
		domain.PhaseVolumeAccumulation,
		domain.PhaseMetabolic,
		domain.PhaseDeload,
		domain.PhaseIntensityAccumulation,
		domain.PhaseProgressiveOverload,
		domain.PhaseDeload,
	},
}

// PhaseTemplate returns the repeating phase order for goal. Unknown goals use
// the general fitness template.
func PhaseTemplate(goal domain.Goal) []domain.TrainingPhase {
	if t, ok := phaseTemplates[goal]; ok {
		return t
	}
	return phaseTemplates[domain.GoalGeneralFitness]
}

// MesocycleLength is the training block length in weeks. Higher training ages
// accumulate fatigue faster and get shorter blocks.
func MesocycleLength(level domain.TrainingLevel) int {
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

// SequencePhases slices totalWeeks into phase slots by walking the goal
// template cyclically. Training slots last MesocycleLength(level) weeks and
// template deloads last one week. A template deload that would open the
// program or follow another deload is skipped. The last slot is truncated so
// the weeks sum to exactly totalWeeks. The level cadence is applied later by
// PlanMesocycle.
func SequencePhases(goal domain.Goal, level domain.TrainingLevel, totalWeeks int) []PhaseSlot {
	if totalWeeks <= 0 {
		return nil
	}
	template := PhaseTemplate(goal)
	blockLen := MesocycleLength(level)

	var slots []PhaseSlot
	remaining := totalWeeks
	for next := 0; remaining > 0; next++ {
		phase := template[next%len(template)]

		if phase.IsDeload() {
			if len(slots) == 0 || slots[len(slots)-1].IsDeload {
				continue
			}
			slots = append(slots, PhaseSlot{Phase: phase, Weeks: 1, IsDeload: true})
			remaining--
			continue
		}

		weeks := min(blockLen, remaining)
		slots = append(slots, PhaseSlot{Phase: phase, Weeks: weeks})
		remaining -= weeks
	}

	for i := 0; i+1 < len(slots); i++ {
		slots[i].FollowedByDeload = slots[i+1].IsDeload
	}
	return slots
}
