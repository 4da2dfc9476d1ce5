package chat

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	clockRe    = regexp.MustCompile(`(\d+)(?::(\d+))?\s*(am|pm)`)
	durationRe = regexp.MustCompile(`(\d+)\s*(?:hour|hr|hrs?)`)
)

// ResolveTimePhrase turns a captured natural-language phrase into a concrete
// interval relative to now. With no recognizable parts it falls back to today
// at 17:00 for 2 hours. "tomorrow" shifts the day; a clock time like "3:30 pm"
// sets the hour and minute; a duration like "3 hrs" sets the length.
func ResolveTimePhrase(phrase string, now time.Time) (start, end time.Time) {
	lower := strings.ToLower(phrase)

	day := now
	if strings.Contains(lower, "tomorrow") {
		day = now.AddDate(0, 0, 1)
	}

	hour, minute := 17, 0
	if m := clockRe.FindStringSubmatch(lower); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch m[3] {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
	}

	durationHours := 2
	if m := durationRe.FindStringSubmatch(lower); m != nil {
		durationHours, _ = strconv.Atoi(m[1])
	}

	start = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	end = start.Add(time.Duration(durationHours) * time.Hour)
	return start, end
}

// roundToHour rounds t down to the hour, or up when past the half hour.
func roundToHour(t time.Time) time.Time {
	rounded := t.Truncate(time.Hour)
	if t.Minute() >= 30 {
		rounded = rounded.Add(time.Hour)
	}
	return rounded
}
