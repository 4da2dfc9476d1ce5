package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveTimePhrase(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name      string
		phrase    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "empty phrase defaults to five pm for two hours",
			phrase:    "",
			wantStart: time.Date(2025, 6, 10, 17, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			name:      "tomorrow shifts the day",
			phrase:    "tomorrow",
			wantStart: time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 11, 19, 0, 0, 0, time.UTC),
		},
		{
			name:      "clock time with minutes",
			phrase:    "at 3:30 pm",
			wantStart: time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 10, 17, 30, 0, 0, time.UTC),
		},
		{
			name:      "twelve am maps to midnight",
			phrase:    "12 am",
			wantStart: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC),
		},
		{
			name:      "twelve pm stays noon",
			phrase:    "12 pm",
			wantStart: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "duration overrides the default two hours",
			phrase:    "5 pm for 3 hours",
			wantStart: time.Date(2025, 6, 10, 17, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC),
		},
		{
			name:      "tomorrow morning with duration",
			phrase:    "tomorrow 10am for 4 hrs",
			wantStart: time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveTimePhrase(tt.phrase, now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestRoundToHour(t *testing.T) {
	base := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, base, roundToHour(base.Add(12*time.Minute)))
	assert.Equal(t, base.Add(time.Hour), roundToHour(base.Add(30*time.Minute)))
	assert.Equal(t, base.Add(time.Hour), roundToHour(base.Add(59*time.Minute)))
	assert.Equal(t, base, roundToHour(base))
}
