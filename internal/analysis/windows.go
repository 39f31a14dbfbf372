package analysis

import (
	"strings"

	"github.com/kamilaomar/moodtracker/backend/internal/models"
)

const (
	rangeSeparator = " - "
	midnight       = "00:00"
)

func formatRange(task models.Task) string {
	return valueOr(task.StartTime, midnight) + rangeSeparator + valueOr(task.FinishTime, midnight)
}

// parseRange splits a formatted range back into start and end.
// Anything without exactly one separator is rejected.
func parseRange(s string) (models.TimeRange, bool) {
	parts := strings.Split(s, rangeSeparator)
	if len(parts) != 2 {
		return models.TimeRange{}, false
	}
	return models.TimeRange{Start: parts[0], End: parts[1]}, true
}

func pleasantTimeRanges(ranges map[string][]string) map[string][]models.TimeRange {
	out := make(map[string][]models.TimeRange, len(ranges))
	for mood, formatted := range ranges {
		parsed := make([]models.TimeRange, 0, len(formatted))
		for _, s := range formatted {
			if r, ok := parseRange(s); ok {
				parsed = append(parsed, r)
			}
		}
		out[mood] = parsed
	}
	return out
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
