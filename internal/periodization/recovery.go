package periodization

import "alcyxob/training-periodization/internal/domain"

var (
	baselineRecovery = []string{
		"7-9 hours of sleep",
		"adequate daily protein intake",
		"hydration targets",
		"light mobility work",
	}
	intermediateRecovery = []string{
		"foam rolling",
		"contrast showers",
		"heart rate variability monitoring",
	}
	advancedRecovery = []string{
		"sports massage",
		"cold water immersion",
		"structured nap protocol",
		"sleep quality tracking",
	}
	deloadRecovery = []string{
		"reduced volume and intensity",
		"extra sleep",
		"mental recovery and stress management",
		"light mobility work",
	}
)

// RecoveryStrategies assembles the ordered recovery tactics for a week.
// Baseline tactics apply to every level; intermediate and above add a richer
// set, advanced and above add the elite set. Deload weeks append deload
// tactics regardless of level. Duplicates are dropped, first occurrence wins.
func RecoveryStrategies(deload bool, level domain.TrainingLevel) []string {
	out := make([]string, 0, len(baselineRecovery)+len(intermediateRecovery)+len(advancedRecovery)+len(deloadRecovery))
	seen := make(map[string]bool)
	add := func(tactics []string) {
		for _, t := range tactics {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}

	add(baselineRecovery)
	if level.Rank() >= domain.LevelIntermediate.Rank() {
		add(intermediateRecovery)
	}
	if level.Rank() >= domain.LevelAdvanced.Rank() {
		add(advancedRecovery)
	}
	if deload {
		add(deloadRecovery)
	}
	return out
}
