package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	for _, mood := range []string{"Energetic", "Focused", "Determined", "Creative", "Relaxed", "Satisfied"} {
		assert.True(t, c.IsPositive(mood), mood)
	}
	assert.False(t, c.IsPositive("focused"))

	for _, mood := range []string{"Stressed", "Tired", "Overwhelmed", "Unmotivated", "Angry"} {
		assert.True(t, c.IsAvoidMood(mood), mood)
		assert.False(t, c.IsAvoidMood(mood+" "), mood)
	}

	assert.True(t, c.IsExerciseMood("angry"))
	assert.False(t, c.IsExerciseMood("Angry"))

	assert.True(t, c.InAvoidWindow(0))
	assert.True(t, c.InAvoidWindow(720))
	assert.False(t, c.InAvoidWindow(721))

	assert.Len(t, c.exercises, 10)
	exercise, ok := c.Exercise("event planning")
	assert.True(t, ok)
	assert.Contains(t, exercise, "Task Checklist")
	_, ok = c.Exercise("Event Planning")
	assert.False(t, ok)
}

func TestLoadCatalog_Custom(t *testing.T) {
	c, err := LoadCatalog([]byte(`
positive_moods: [Happy]
avoid_moods: [Sad]
avoid_window: {from: 60, to: 120}
exercise_moods: [sad]
exercises:
  - title: laundry
    exercise: "Laundry - Podcast"
motivation: ["one", "two"]
`))
	require.NoError(t, err)

	assert.True(t, c.IsPositive("Happy"))
	assert.False(t, c.InAvoidWindow(30))
	assert.Equal(t, "one\ntwo", c.Motivation())

	report, err := NewEngine(c).Analyze(nil)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", report.Motivation)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "positive_moods: [",
		"inverted window": "avoid_window: {from: 10, to: 5}",
		"uppercase title": "exercises: [{title: Laundry, exercise: x}]",
		"empty exercise":  "exercises: [{title: laundry}]",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}
