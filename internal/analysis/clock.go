package analysis

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedTime is returned when a task time is not in HH:MM format
var ErrMalformedTime = errors.New("malformed time")

// TimeParseError describes which task carried an unparseable time
type TimeParseError struct {
	TaskID string
	Field  string
	Value  string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("task %q: %s %q is not a valid HH:MM time", e.TaskID, e.Field, e.Value)
}

func (e *TimeParseError) Unwrap() error {
	return ErrMalformedTime
}

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ValidClock reports whether s is a 24-hour HH:MM time
func ValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// MinutesSinceMidnight converts an HH:MM string into hour*60+minute
func MinutesSinceMidnight(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrMalformedTime
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour*60 + minute, nil
}

// taskMinutes parses one optional task time, attributing failures to the task
func taskMinutes(taskID, field string, value *string) (int, bool, error) {
	if value == nil {
		return 0, false, nil
	}
	minutes, err := MinutesSinceMidnight(*value)
	if err != nil {
		return 0, false, &TimeParseError{TaskID: taskID, Field: field, Value: *value}
	}
	return minutes, true, nil
}
