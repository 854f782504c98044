// Package streak computes streak statistics over sparse sets of
// calendar-day completion dates.
package streak

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// Normalize parses, deduplicates, and midnight-truncates a set of completion
// date strings. Unparseable entries are dropped: a date that cannot be placed
// on the calendar cannot contribute to a streak. The result is sorted
// ascending.
func Normalize(dates []string) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			// Tolerate timestamps that carry a time-of-day component.
			t, err = time.Parse(time.RFC3339, s)
			if err != nil {
				continue
			}
		}
		day := truncateToDay(t)
		if seen[day] {
			continue
		}
		seen[day] = true
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Current returns the number of consecutive days ending at today (inclusive)
// on which a completion exists. If today itself has no completion the streak
// is 0, regardless of any earlier run.
func Current(dates []string, today time.Time) int {
	days := Normalize(dates)
	if len(days) == 0 {
		return 0
	}
	present := make(map[time.Time]bool, len(days))
	for _, d := range days {
		present[d] = true
	}

	n := 0
	for day := truncateToDay(today); present[day]; day = day.AddDate(0, 0, -1) {
		n++
	}
	return n
}

// Longest returns the length of the longest run of consecutive completion
// days anywhere in the set: 0 for an empty set, 1 for a single date.
func Longest(dates []string) int {
	days := Normalize(dates)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// truncateToDay drops any time-of-day component in UTC. Comparing truncated
// UTC days avoids off-by-one errors from DST and sub-day timestamps.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
