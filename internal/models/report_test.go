package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisReport_MarshalJSONFieldNames(t *testing.T) {
	report := AnalysisReport{
		ProductiveMinutesPerMood: map[string]int{"Focused": 90},
		PleasantTimeRanges: map[string][]TimeRange{
			"Focused": {{Start: "08:00", End: "09:30"}},
		},
		AvoidTasks:              []string{"Budgeting"},
		ExerciseRecommendations: "Budgeting - Financial Goals",
		Motivation:              "Every small step counts.",
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, map[string]any{"Focused": float64(90)}, got["Productive Minutes per Mood"])
	assert.Equal(t, map[string]any{
		"Focused": []any{map[string]any{"start": "08:00", "end": "09:30"}},
	}, got["Pleasant Time Ranges for Tasks Completions"])
	assert.Equal(t, map[string]any{"Recommended Tasks": []any{}}, got["Recommended Tasks"])
	assert.Equal(t, map[string]any{"Avoid Tasks": []any{"Budgeting"}}, got["Avoid Tasks"])
	assert.Equal(t, map[string]any{"message": "Budgeting - Financial Goals"}, got["Exercise Recommendations"])
	assert.Equal(t, map[string]any{"message": "Every small step counts."}, got["Motivation"])
}

func TestAnalysisReport_MarshalJSONEmptyReport(t *testing.T) {
	data, err := json.Marshal(AnalysisReport{})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"Productive Minutes per Mood": {},
		"Pleasant Time Ranges for Tasks Completions": {},
		"Recommended Tasks": {"Recommended Tasks": []},
		"Avoid Tasks": {"Avoid Tasks": []},
		"Exercise Recommendations": {"message": ""},
		"Motivation": {"message": ""}
	}`, string(data))
}
