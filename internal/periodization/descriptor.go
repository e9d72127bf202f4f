package periodization

import "alcyxob/training-periodization/internal/domain"

// PhaseDescription holds the narrative fields copied onto every mesocycle of a phase.
type PhaseDescription struct {
	Title             string
	PrimaryFocus      []string
	SecondaryFocus    []string
	AdaptationMarkers []string
	SpecialTechniques []string
	ProgressionModel  string
}

// balancedPhase is the documented fallback for phases missing from phaseDescriptions.
var balancedPhase = PhaseDescription{
	Title:             "Balanced Training",
	PrimaryFocus:      []string{"general conditioning"},
	SecondaryFocus:    []string{"movement quality"},
	AdaptationMarkers: []string{"consistent session completion"},
	SpecialTechniques: []string{},
	ProgressionModel:  "Hold volume and intensity steady and progress by feel.",
}

var phaseDescriptions = map[domain.TrainingPhase]PhaseDescription{
	domain.PhaseFoundation: {
		Title:             "Foundation",
		PrimaryFocus:      []string{"movement quality", "work capacity"},
		SecondaryFocus:    []string{"connective tissue preparation", "technique"},
		AdaptationMarkers: []string{"consistent technique under fatigue", "improved session recovery"},
		SpecialTechniques: []string{"tempo training", "paused repetitions"},
		ProgressionModel:  "Add a small amount of volume each week at moderate intensity.",
	},
	domain.PhaseVolumeAccumulation: {
		Title:             "Volume Accumulation",
		PrimaryFocus:      []string{"muscle hypertrophy", "training volume"},
		SecondaryFocus:    []string{"work capacity", "muscular endurance"},
		AdaptationMarkers: []string{"increased muscle pump", "rep gains at fixed loads"},
		SpecialTechniques: []string{"drop sets", "supersets", "myo-reps"},
		ProgressionModel:  "Add sets week over week while intensity stays constant.",
	},
	domain.PhaseIntensityAccumulation: {
		Title:             "Intensity Accumulation",
		PrimaryFocus:      []string{"relative intensity", "neural efficiency"},
		SecondaryFocus:    []string{"muscle retention", "technique at heavier loads"},
		AdaptationMarkers: []string{"heavier working sets at the same RIR", "bar speed maintenance"},
		SpecialTechniques: []string{"cluster sets", "top set with back-off sets"},
		ProgressionModel:  "Hold volume and add load each week, lowering reps in reserve.",
	},
	domain.PhaseProgressiveOverload: {
		Title:             "Progressive Overload",
		PrimaryFocus:      []string{"load progression", "hypertrophy"},
		SecondaryFocus:    []string{"strength", "work capacity"},
		AdaptationMarkers: []string{"weekly load or rep increases", "stable recovery"},
		SpecialTechniques: []string{"double progression", "rest-pause sets"},
		ProgressionModel:  "Step volume and intensity up together in small weekly increments.",
	},
	domain.PhaseStrength: {
		Title:             "Strength",
		PrimaryFocus:      []string{"maximal strength", "compound lifts"},
		SecondaryFocus:    []string{"muscle retention", "bracing and technique"},
		AdaptationMarkers: []string{"estimated one-rep max increases", "heavy singles at higher RIR"},
		SpecialTechniques: []string{"heavy singles", "paused lifts", "wave loading"},
		ProgressionModel:  "Reduce volume while intensity climbs toward heavy triples and doubles.",
	},
	domain.PhasePower: {
		Title:             "Power",
		PrimaryFocus:      []string{"rate of force development", "explosive strength"},
		SecondaryFocus:    []string{"maximal strength", "coordination"},
		AdaptationMarkers: []string{"jump height", "bar velocity at fixed loads"},
		SpecialTechniques: []string{"contrast training", "plyometrics", "velocity-based training"},
		ProgressionModel:  "Keep volume low and raise intensity while preserving bar speed.",
	},
	domain.PhasePeaking: {
		Title:             "Peaking",
		PrimaryFocus:      []string{"performance expression", "maximal strength"},
		SecondaryFocus:    []string{"fatigue dissipation"},
		AdaptationMarkers: []string{"personal records", "low perceived exertion on openers"},
		SpecialTechniques: []string{"opener practice", "max-effort singles"},
		ProgressionModel:  "Volume stays minimal; intensity rises to maximal efforts at zero RIR.",
	},
	domain.PhaseMetabolic: {
		Title:             "Metabolic Conditioning",
		PrimaryFocus:      []string{"energy expenditure", "conditioning"},
		SecondaryFocus:    []string{"muscle retention", "work capacity"},
		AdaptationMarkers: []string{"lower resting heart rate", "faster between-set recovery"},
		SpecialTechniques: []string{"circuits", "density blocks", "intervals"},
		ProgressionModel:  "Alternate higher and lower volume weeks at moderate intensity.",
	},
	domain.PhaseDeload: {
		Title:             "Deload",
		PrimaryFocus:      []string{"recovery", "fatigue dissipation"},
		SecondaryFocus:    []string{"technique maintenance"},
		AdaptationMarkers: []string{"restored readiness", "improved sleep quality"},
		SpecialTechniques: []string{"reduced load technique work"},
		ProgressionModel:  "Cut volume and intensity to let accumulated fatigue dissipate.",
	},
}

// DescribePhase looks up the narrative fields for phase, returning the balanced
// default for anything not in the table.
func DescribePhase(phase domain.TrainingPhase) PhaseDescription {
	if d, ok := phaseDescriptions[phase]; ok {
		return d
	}
	return balancedPhase
}
