package periodization

import (
	"fmt"
	"testing"
	"time"

	"alcyxob/training-periodization/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan1 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func fixedBuilder() *Builder {
	n := 0
	return &Builder{
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%03d", n)
		},
		Now: func() time.Time { return time.Date(2023, time.December, 15, 9, 30, 0, 0, time.UTC) },
	}
}

func baseRequest() Request {
	return Request{
		UserID:         "user-1",
		Name:           "Spring Block",
		PrimaryGoal:    domain.GoalHypertrophy,
		TrainingLevel:  domain.LevelBeginner,
		Frequency:      4,
		DurationMonths: 3,
		StartDate:      jan1,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestBuild_ScenarioHypertrophyBeginner(t *testing.T) {
	macro, err := fixedBuilder().Build(baseRequest())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), macro.EndDate)
	assert.Equal(t, 13, macro.TotalWeeks)
	assert.Equal(t, 6, macro.DeloadSchedule.FrequencyWeeks)
	assert.Equal(t, domain.DeloadTimingFixed, macro.DeloadSchedule.Timing)
	assert.False(t, macro.DeloadSchedule.AutoRegulation)

	require.NotEmpty(t, macro.MesoCycles)
	first := macro.MesoCycles[0]
	assert.Equal(t, domain.PhaseFoundation, first.Phase)
	assert.Equal(t, 6, first.DurationWeeks)

	phases := make([]domain.TrainingPhase, 0, len(macro.MesoCycles))
	for _, meso := range macro.MesoCycles {
		phases = append(phases, meso.Phase)
		assert.False(t, meso.IncludesDeload, "%s", meso.Name)
	}
	assert.Equal(t, []domain.TrainingPhase{
		domain.PhaseFoundation, domain.PhaseVolumeAccumulation, domain.PhaseIntensityAccumulation,
	}, phases)
	assert.Equal(t, 1, macro.MesoCycles[2].DurationWeeks)

	// the template deload arrives after the third block
	req := baseRequest()
	req.DurationMonths = 6
	macro, err = fixedBuilder().Build(req)
	require.NoError(t, err)
	require.Greater(t, len(macro.MesoCycles), 3)
	deload := macro.MesoCycles[3]
	assert.Equal(t, domain.PhaseDeload, deload.Phase)
	assert.Equal(t, 1, deload.DurationWeeks)
	assert.True(t, deload.IncludesDeload)
	assert.True(t, deload.StartDate.Equal(AddWeeks(jan1, 18)))
}

func TestBuild_ScenarioStrengthAdvanced(t *testing.T) {
	req := baseRequest()
	req.PrimaryGoal = domain.GoalStrength
	req.TrainingLevel = domain.LevelAdvanced
	req.Frequency = 5
	req.DurationMonths = 6

	macro, err := fixedBuilder().Build(req)
	require.NoError(t, err)

	assert.Equal(t, 4, macro.DeloadSchedule.FrequencyWeeks)
	assert.Equal(t, FatigueDeloadThreshold, macro.DeloadSchedule.FatigueThreshold)
	assert.Equal(t, domain.DeloadVolumeIntensityReduction, macro.DeloadSchedule.Strategy)

	found := false
	for _, meso := range macro.MesoCycles {
		if !meso.IncludesDeload && meso.DurationWeeks > 1 {
			assert.LessOrEqual(t, meso.DurationWeeks, 4)
		}
		if meso.IntensityProgression == domain.ShapeAscending &&
			(meso.VolumeProgression == domain.ShapeDescending || meso.VolumeProgression == domain.ShapeConstant) {
			found = true
		}
	}
	assert.Equal(t, 4, macro.MesoCycles[0].DurationWeeks)
	require.Len(t, macro.MesoCycles, 8)
	assert.Equal(t, domain.PhaseDeload, macro.MesoCycles[3].Phase)
	assert.Equal(t, domain.PhaseDeload, macro.MesoCycles[6].Phase)
	// block 8 lands on the 4-block cadence
	assert.True(t, macro.MesoCycles[7].IncludesDeload)
	assert.True(t, found, "expected an intensity-ascending block with flat or falling volume")
}

func TestBuild_ScenarioWithoutNutrition(t *testing.T) {
	req := baseRequest()
	req.IncludeNutrition = boolPtr(false)

	macro, err := fixedBuilder().Build(req)
	require.NoError(t, err)

	assert.NotNil(t, macro.NutritionPeriodization)
	assert.Empty(t, macro.NutritionPeriodization)
	assert.NotEmpty(t, macro.MesoCycles)
	assert.NotEmpty(t, macro.ID)
	assert.Equal(t, 13, macro.TotalWeeks)
	assert.True(t, macro.IsActive)
}

func TestBuild_Defaults(t *testing.T) {
	macro, err := fixedBuilder().Build(baseRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.PeriodizationBlock, macro.PeriodizationType)
	assert.Contains(t, macro.Description, "hypertrophy")
	assert.NotEmpty(t, macro.NutritionPeriodization)
	assert.Equal(t, "id-001", macro.ID)
}

func TestBuild_Idempotent(t *testing.T) {
	req := baseRequest()
	req.TargetMuscleGroups = []domain.MuscleGroup{domain.MuscleBack}

	a, err := fixedBuilder().Build(req)
	require.NoError(t, err)

	counter := 1000
	other := &Builder{
		NewID: func() string { counter++; return fmt.Sprintf("other-%d", counter) },
		Now:   fixedBuilder().Now,
	}
	b, err := other.Build(req)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	ignoreIDs := cmp.Options{
		cmpopts.IgnoreFields(domain.MacroCycle{}, "ID"),
		cmpopts.IgnoreFields(domain.MesoCycle{}, "ID"),
		cmpopts.IgnoreFields(domain.MicroCycle{}, "ID"),
	}
	if diff := cmp.Diff(a, b, ignoreIDs); diff != "" {
		t.Errorf("repeated build differs (-first +second):\n%s", diff)
	}
}

func TestBuild_UniqueIdentifiers(t *testing.T) {
	macro, err := NewBuilder().Build(baseRequest())
	require.NoError(t, err)

	seen := map[string]bool{macro.ID: true}
	for _, meso := range macro.MesoCycles {
		require.False(t, seen[meso.ID], "duplicate id %s", meso.ID)
		seen[meso.ID] = true
		for _, w := range meso.MicroCycles {
			require.False(t, seen[w.ID], "duplicate id %s", w.ID)
			seen[w.ID] = true
		}
	}
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing user", func(r *Request) { r.UserID = " " }},
		{"missing name", func(r *Request) { r.Name = "" }},
		{"unknown goal", func(r *Request) { r.PrimaryGoal = "bulk" }},
		{"unknown level", func(r *Request) { r.TrainingLevel = "pro" }},
		{"zero duration", func(r *Request) { r.DurationMonths = 0 }},
		{"negative duration", func(r *Request) { r.DurationMonths = -2 }},
		{"too long", func(r *Request) { r.DurationMonths = 36 }},
		{"frequency too low", func(r *Request) { r.Frequency = 1 }},
		{"frequency too high", func(r *Request) { r.Frequency = 8 }},
		{"no start date", func(r *Request) { r.StartDate = time.Time{} }},
		{"unknown periodization", func(r *Request) { r.PeriodizationType = "conjugate" }},
		{"unknown secondary goal", func(r *Request) { r.SecondaryGoals = []domain.Goal{"speed"} }},
		{"unknown muscle group", func(r *Request) { r.TargetMuscleGroups = []domain.MuscleGroup{"calves"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			macro, err := fixedBuilder().Build(req)
			assert.Nil(t, macro)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// TestBuild_Invariants walks every goal/level over a spread of durations and
// checks the structural properties of the generated plan.
func TestBuild_Invariants(t *testing.T) {
	starts := []time.Time{jan1, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)}
	for _, goal := range domain.Goals {
		for _, level := range domain.TrainingLevels {
			for _, months := range []int{1, 2, 3, 5, 6, 9, 12, 24} {
				for _, start := range starts {
					name := fmt.Sprintf("%s/%s/%dm/%s", goal, level, months, start.Format(DateLayout))
					t.Run(name, func(t *testing.T) {
						req := baseRequest()
						req.PrimaryGoal = goal
						req.TrainingLevel = level
						req.DurationMonths = months
						req.StartDate = start
						req.Frequency = 2 + months%6
						macro, err := fixedBuilder().Build(req)
						require.NoError(t, err)
						checkInvariants(t, macro)
					})
				}
			}
		}
	}
}

func checkInvariants(t *testing.T, macro *domain.MacroCycle) {
	t.Helper()

	assert.Equal(t, AddMonths(macro.StartDate, macro.DurationMonths), macro.EndDate)
	assert.Equal(t, WeeksBetween(macro.StartDate, macro.EndDate), macro.TotalWeeks)

	weeks := 0
	cursor := macro.StartDate
	prevDeload := false
	for _, meso := range macro.MesoCycles {
		weeks += meso.DurationWeeks
		require.Len(t, meso.MicroCycles, meso.DurationWeeks)
		require.True(t, meso.StartDate.Equal(cursor), "mesocycle %s starts %s, want %s", meso.Name, meso.StartDate, cursor)
		require.True(t, meso.EndDate.After(meso.StartDate))

		weekCursor := meso.StartDate
		hasDeloadWeek := false
		for _, w := range meso.MicroCycles {
			require.True(t, w.StartDate.Equal(weekCursor))
			weekCursor = w.EndDate

			assert.GreaterOrEqual(t, w.Volume, 1.0)
			assert.LessOrEqual(t, w.Volume, 10.0)
			assert.GreaterOrEqual(t, w.Intensity, 1.0)
			assert.LessOrEqual(t, w.Intensity, 10.0)
			assert.GreaterOrEqual(t, w.TargetRIR, 0)

			total := 0
			for _, pct := range w.VolumeDistribution {
				total += pct
			}
			assert.InDelta(t, 100, total, 1)

			if w.IsDeload {
				hasDeloadWeek = true
				assert.Equal(t, 3.0, w.Volume)
				assert.Equal(t, 3.0, w.Intensity)
				assert.Equal(t, 4, w.TargetRIR)
				assert.False(t, prevDeload, "back-to-back deload weeks in %s", meso.Name)
			}
			prevDeload = w.IsDeload
		}
		require.True(t, weekCursor.Equal(meso.EndDate))
		if meso.IncludesDeload {
			assert.True(t, hasDeloadWeek, "%s includes a deload but has no deload week", meso.Name)
		}
		cursor = meso.EndDate
	}

	assert.Equal(t, macro.TotalWeeks, weeks)
	assert.True(t, cursor.Equal(macro.EndDate), "mesocycles end %s, macrocycle ends %s", cursor, macro.EndDate)

	nutritionWeeks := 0
	for _, p := range macro.NutritionPeriodization {
		assert.GreaterOrEqual(t, p.DurationWeeks, 1)
		nutritionWeeks += p.DurationWeeks
	}
	assert.InDelta(t, macro.TotalWeeks, nutritionWeeks, float64(len(macro.NutritionPeriodization)))
}
