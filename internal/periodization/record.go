package periodization

import (
	"encoding/json"
	"fmt"
	"time"

	"alcyxob/training-periodization/internal/domain"
)

// ToRecord flattens a MacroCycle into its persisted shape.
func ToRecord(m *domain.MacroCycle) (*domain.MacroCycleRecord, error) {
	if m == nil {
		return nil, fmt.Errorf("nil macrocycle")
	}
	deload, err := json.Marshal(m.DeloadSchedule)
	if err != nil {
		return nil, fmt.Errorf("encode deload schedule: %w", err)
	}
	mesos, err := json.Marshal(m.MesoCycles)
	if err != nil {
		return nil, fmt.Errorf("encode mesocycles: %w", err)
	}
	nutrition := m.NutritionPeriodization
	if nutrition == nil {
		nutrition = []domain.NutritionPhase{}
	}
	nutr, err := json.Marshal(nutrition)
	if err != nil {
		return nil, fmt.Errorf("encode nutrition phases: %w", err)
	}

	rec := &domain.MacroCycleRecord{
		ID:                     m.ID,
		UserID:                 m.UserID,
		Name:                   m.Name,
		Description:            m.Description,
		DurationMonths:         m.DurationMonths,
		TotalWeeks:             m.TotalWeeks,
		PeriodizationType:      string(m.PeriodizationType),
		PrimaryGoal:            string(m.PrimaryGoal),
		TrainingLevel:          string(m.TrainingLevel),
		TrainingFrequency:      m.TrainingFrequency,
		StartDate:              m.StartDate.Format(DateLayout),
		EndDate:                m.EndDate.Format(DateLayout),
		IsActive:               m.IsActive,
		DeloadSchedule:         string(deload),
		MesoCycles:             string(mesos),
		NutritionPeriodization: string(nutr),
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.CreatedAt,
	}
	for _, g := range m.SecondaryGoals {
		rec.SecondaryGoals = append(rec.SecondaryGoals, string(g))
	}
	for _, mg := range m.TargetMuscleGroups {
		rec.TargetMuscleGroups = append(rec.TargetMuscleGroups, string(mg))
	}
	return rec, nil
}

// FromRecord rebuilds a MacroCycle from its persisted shape.
func FromRecord(rec *domain.MacroCycleRecord) (*domain.MacroCycle, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil macrocycle record")
	}
	start, err := time.Parse(DateLayout, rec.StartDate)
	if err != nil {
		return nil, fmt.Errorf("decode start date: %w", err)
	}
	end, err := time.Parse(DateLayout, rec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("decode end date: %w", err)
	}

	m := &domain.MacroCycle{
		ID:                rec.ID,
		UserID:            rec.UserID,
		Name:              rec.Name,
		Description:       rec.Description,
		DurationMonths:    rec.DurationMonths,
		TotalWeeks:        rec.TotalWeeks,
		PeriodizationType: domain.PeriodizationType(rec.PeriodizationType),
		PrimaryGoal:       domain.Goal(rec.PrimaryGoal),
		TrainingLevel:     domain.TrainingLevel(rec.TrainingLevel),
		TrainingFrequency: rec.TrainingFrequency,
		StartDate:         start,
		EndDate:           end,
		IsActive:          rec.IsActive,
		CreatedAt:         rec.CreatedAt,
	}
	for _, g := range rec.SecondaryGoals {
		m.SecondaryGoals = append(m.SecondaryGoals, domain.Goal(g))
	}
	for _, mg := range rec.TargetMuscleGroups {
		m.TargetMuscleGroups = append(m.TargetMuscleGroups, domain.MuscleGroup(mg))
	}
	if err := decodeBlob(rec.DeloadSchedule, &m.DeloadSchedule); err != nil {
		return nil, fmt.Errorf("decode deload schedule: %w", err)
	}
	if err := decodeBlob(rec.MesoCycles, &m.MesoCycles); err != nil {
		return nil, fmt.Errorf("decode mesocycles: %w", err)
	}
	if err := decodeBlob(rec.NutritionPeriodization, &m.NutritionPeriodization); err != nil {
		return nil, fmt.Errorf("decode nutrition phases: %w", err)
	}
	return m, nil
}

func decodeBlob(blob string, v any) error {
	if blob == "" {
		return nil
	}
	return json.Unmarshal([]byte(blob), v)
}
