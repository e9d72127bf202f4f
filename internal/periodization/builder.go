// Package periodization derives hierarchical training plans (macro, meso and
// micro cycles) with a coupled nutrition schedule. Every function here is pure;
// persistence happens in the service layer.
package periodization

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"alcyxob/training-periodization/internal/domain"

	"github.com/google/uuid"
)

const (
	MinDurationMonths = 1
	MaxDurationMonths = 24
	MinFrequency      = 2
	MaxFrequency      = 7
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid periodization input")

// Request is a macrocycle generation request.
type Request struct {
	UserID             string
	Name               string
	Description        string
	PrimaryGoal        domain.Goal
	TrainingLevel      domain.TrainingLevel
	Frequency          int
	DurationMonths     int
	StartDate          time.Time
	SecondaryGoals     []domain.Goal
	PeriodizationType  domain.PeriodizationType // empty means block
	TargetMuscleGroups []domain.MuscleGroup
	IncludeNutrition   *bool // nil means true
}

// Validate rejects requests before any planning work is done.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(r.UserID) == "":
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case !r.PrimaryGoal.IsValid():
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, r.PrimaryGoal)
	case !r.TrainingLevel.IsValid():
		return fmt.Errorf("%w: unknown training level %q", ErrInvalidInput, r.TrainingLevel)
	case r.Frequency < MinFrequency || r.Frequency > MaxFrequency:
		return fmt.Errorf("%w: frequency must be between %d and %d days per week, got %d", ErrInvalidInput, MinFrequency, MaxFrequency, r.Frequency)
	case r.DurationMonths < MinDurationMonths || r.DurationMonths > MaxDurationMonths:
		return fmt.Errorf("%w: duration must be between %d and %d months, got %d", ErrInvalidInput, MinDurationMonths, MaxDurationMonths, r.DurationMonths)
	case r.StartDate.IsZero():
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	case r.PeriodizationType != "" && !r.PeriodizationType.IsValid():
		return fmt.Errorf("%w: unknown periodization type %q", ErrInvalidInput, r.PeriodizationType)
	}
	for _, g := range r.SecondaryGoals {
		if !g.IsValid() {
			return fmt.Errorf("%w: unknown secondary goal %q", ErrInvalidInput, g)
		}
	}
	for _, mg := range r.TargetMuscleGroups {
		if !mg.IsValid() {
			return fmt.Errorf("%w: unknown muscle group %q", ErrInvalidInput, mg)
		}
	}
	return nil
}

// Builder assembles macrocycles. The zero value is ready to use; tests inject
// NewID and Now to get reproducible output.
type Builder struct {
	NewID func() string
	Now   func() time.Time
}

// NewBuilder returns a Builder using random UUIDs and the wall clock.
func NewBuilder() *Builder {
	return &Builder{NewID: uuid.NewString, Now: time.Now}
}

func (b *Builder) id() string {
	if b == nil || b.NewID == nil {
		return uuid.NewString()
	}
	return b.NewID()
}

func (b *Builder) now() time.Time {
	if b == nil || b.Now == nil {
		return time.Now().UTC()
	}
	return b.Now().UTC()
}

// Build validates req and derives the full MacroCycle.
func (b *Builder) Build(req Request) (*domain.MacroCycle, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := StartOfDay(req.StartDate)
	end := AddMonths(start, req.DurationMonths)
	totalWeeks := WeeksBetween(start, end)

	ptype := req.PeriodizationType
	if ptype == "" {
		ptype = domain.PeriodizationBlock
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("%d-month %s %s program for a %s trainee, %d days per week",
			req.DurationMonths, ptype, humanize(string(req.PrimaryGoal)), req.TrainingLevel, req.Frequency)
	}

	macro := &domain.MacroCycle{
		ID:                 b.id(),
		UserID:             req.UserID,
		Name:               req.Name,
		Description:        description,
		DurationMonths:     req.DurationMonths,
		TotalWeeks:         totalWeeks,
		PeriodizationType:  ptype,
		PrimaryGoal:        req.PrimaryGoal,
		SecondaryGoals:     append([]domain.Goal(nil), req.SecondaryGoals...),
		TrainingLevel:      req.TrainingLevel,
		TrainingFrequency:  req.Frequency,
		TargetMuscleGroups: append([]domain.MuscleGroup(nil), req.TargetMuscleGroups...),
		StartDate:          start,
		EndDate:            end,
		IsActive:           true,
		DeloadSchedule:     BuildDeloadSchedule(req.TrainingLevel, req.PrimaryGoal),
		CreatedAt:          b.now(),
	}

	slots := SequencePhases(req.PrimaryGoal, req.TrainingLevel, totalWeeks)
	macro.MesoCycles = make([]domain.MesoCycle, 0, len(slots))
	cursor := start
	for i, slot := range slots {
		meso := PlanMesocycle(MesocycleInput{
			Slot:               slot,
			Index:              i,
			StartDate:          cursor,
			Frequency:          req.Frequency,
			Level:              req.TrainingLevel,
			Goal:               req.PrimaryGoal,
			TargetMuscleGroups: req.TargetMuscleGroups,
		})
		if i == len(slots)-1 {
			clampEnd(&meso, end)
		}
		meso.ID = b.id()
		for w := range meso.MicroCycles {
			meso.MicroCycles[w].ID = b.id()
		}
		macro.MesoCycles = append(macro.MesoCycles, meso)
		cursor = meso.EndDate
	}

	if req.IncludeNutrition == nil || *req.IncludeNutrition {
		macro.NutritionPeriodization = PlanNutrition(NutritionInput{
			Goal:           req.PrimaryGoal,
			Level:          req.TrainingLevel,
			DurationMonths: req.DurationMonths,
			TotalWeeks:     totalWeeks,
		})
	} else {
		macro.NutritionPeriodization = []domain.NutritionPhase{}
	}
	return macro, nil
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
