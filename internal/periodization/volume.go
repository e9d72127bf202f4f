package periodization

import (
	"sort"

	"alcyxob/training-periodization/internal/domain"
)

// volumeShare is one row of the distribution table, in domain.MuscleGroups order:
// chest, back, shoulders, arms, legs, core.
type volumeShare [6]int

// balancedVolume is returned for any phase without its own row.
var balancedVolume = volumeShare{16, 17, 17, 16, 17, 17}

// volumeByPhase percentages each sum to 100.
var volumeByPhase = map[domain.TrainingPhase]volumeShare{
	domain.PhaseFoundation:            {15, 20, 15, 10, 30, 10},
	domain.PhaseVolumeAccumulation:    {20, 20, 15, 15, 25, 5},
	domain.PhaseIntensityAccumulation: {18, 22, 15, 10, 30, 5},
	domain.PhaseProgressiveOverload:   {18, 20, 15, 12, 28, 7},
	domain.PhaseStrength:              {15, 20, 10, 5, 40, 10},
	domain.PhasePower:                 {10, 15, 10, 5, 45, 15},
	domain.PhasePeaking:               {12, 18, 10, 5, 45, 10},
	domain.PhaseMetabolic:             {15, 15, 15, 10, 25, 20},
	domain.PhaseDeload:                {17, 17, 16, 16, 17, 17},
}

// targetEmphasis scales the share of each targeted muscle group before renormalising.
const targetEmphasis = 1.25

func volumeRow(phase domain.TrainingPhase) (volumeShare, bool) {
	row, ok := volumeByPhase[phase]
	if !ok {
		return balancedVolume, false
	}
	return row, true
}

// VolumeDistribution returns the muscle-group volume share for phase. Phases
// without an entry fall back to the balanced distribution.
func VolumeDistribution(phase domain.TrainingPhase) map[domain.MuscleGroup]int {
	row, _ := volumeRow(phase)
	dist := make(map[domain.MuscleGroup]int, len(domain.MuscleGroups))
	for i, mg := range domain.MuscleGroups {
		dist[mg] = row[i]
	}
	return dist
}

// WeightedVolumeDistribution is VolumeDistribution with the targeted groups
// emphasised. The result still sums to exactly 100 (largest-remainder rounding).
// Deload weeks are never re-weighted.
func WeightedVolumeDistribution(phase domain.TrainingPhase, targets []domain.MuscleGroup) map[domain.MuscleGroup]int {
	if len(targets) == 0 || phase.IsDeload() {
		return VolumeDistribution(phase)
	}
	row, _ := volumeRow(phase)

	targeted := make(map[domain.MuscleGroup]bool, len(targets))
	for _, t := range targets {
		targeted[t] = true
	}

	weights := make([]float64, len(domain.MuscleGroups))
	var total float64
	for i, mg := range domain.MuscleGroups {
		w := float64(row[i])
		if targeted[mg] {
			w *= targetEmphasis
		}
		weights[i] = w
		total += w
	}

	type remainder struct {
		idx  int
		frac float64
	}
	shares := make([]int, len(weights))
	rems := make([]remainder, len(weights))
	assigned := 0
	for i, w := range weights {
		exact := w / total * 100
		shares[i] = int(exact)
		rems[i] = remainder{idx: i, frac: exact - float64(shares[i])}
		assigned += shares[i]
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; assigned < 100; i++ {
		shares[rems[i%len(rems)].idx]++
		assigned++
	}

	dist := make(map[domain.MuscleGroup]int, len(domain.MuscleGroups))
	for i, mg := range domain.MuscleGroups {
		dist[mg] = shares[i]
	}
	return dist
}
