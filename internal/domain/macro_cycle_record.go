package domain

import (
	"time"
)

// MacroCycleRecord is the flat, field-per-column shape handed to the persistence layer.
// Dates are ISO-8601 calendar dates; nested structures are stored as JSON blobs.
type MacroCycleRecord struct {
	ID                     string    `bson:"_id" json:"id"`
	UserID                 string    `bson:"userId" json:"userId"`
	Name                   string    `bson:"name" json:"name"`
	Description            string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMonths         int       `bson:"durationMonths" json:"durationMonths"`
	TotalWeeks             int       `bson:"totalWeeks" json:"totalWeeks"`
	PeriodizationType      string    `bson:"periodizationType" json:"periodizationType"`
	PrimaryGoal            string    `bson:"primaryGoal" json:"primaryGoal"`
	SecondaryGoals         []string  `bson:"secondaryGoals,omitempty" json:"secondaryGoals,omitempty"`
	TrainingLevel          string    `bson:"trainingLevel" json:"trainingLevel"`
	TrainingFrequency      int       `bson:"trainingFrequency" json:"trainingFrequency"`
	TargetMuscleGroups     []string  `bson:"targetMuscleGroups,omitempty" json:"targetMuscleGroups,omitempty"`
	StartDate              string    `bson:"startDate" json:"startDate"`
	EndDate                string    `bson:"endDate" json:"endDate"`
	IsActive               bool      `bson:"isActive" json:"isActive"`
	DeloadSchedule         string    `bson:"deloadSchedule" json:"deloadSchedule"`                 // JSON
	MesoCycles             string    `bson:"mesoCycles" json:"mesoCycles"`                         // JSON
	NutritionPeriodization string    `bson:"nutritionPeriodization" json:"nutritionPeriodization"` // JSON
	CreatedAt              time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time `bson:"updatedAt" json:"updatedAt"`
}
