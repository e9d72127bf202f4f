package periodization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"quarter", date(2024, time.January, 1), 3, date(2024, time.April, 1)},
		{"clamps to leap day", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps to short month", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"crosses year", date(2024, time.November, 15), 3, date(2025, time.February, 15)},
		{"two years", date(2024, time.February, 29), 24, date(2026, time.February, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.n))
		})
	}
}

func TestAddMonths_DoesNotMutate(t *testing.T) {
	start := date(2024, time.January, 31)
	_ = AddMonths(start, 1)
	assert.Equal(t, date(2024, time.January, 31), start)
}

func TestAddWeeks(t *testing.T) {
	assert.Equal(t, date(2024, time.January, 15), AddWeeks(date(2024, time.January, 1), 2))
	assert.Equal(t, date(2024, time.March, 4), AddWeeks(date(2024, time.February, 26), 1))
}

func TestWeeksBetween(t *testing.T) {
	assert.Equal(t, 13, WeeksBetween(date(2024, time.January, 1), date(2024, time.April, 1)))
	assert.Equal(t, 5, WeeksBetween(date(2024, time.January, 1), date(2024, time.February, 1)))
	assert.Equal(t, 1, WeeksBetween(date(2024, time.January, 1), date(2024, time.January, 2)))
	assert.Equal(t, 0, WeeksBetween(date(2024, time.January, 2), date(2024, time.January, 1)))
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, time.May, 3, 17, 45, 12, 99, time.UTC)
	assert.Equal(t, date(2024, time.May, 3), StartOfDay(in))
}
