package models

import "encoding/json"

// TimeRange is one task's span under a positive mood
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AnalysisReport is the result of analysing a user's task log.
// Its JSON form (see MarshalJSON) is the external contract of the analysis endpoint.
type AnalysisReport struct {
	ProductiveMinutesPerMood map[string]int
	PleasantTimeRanges       map[string][]TimeRange
	// RecommendedTasks is always empty; nothing populates it yet.
	RecommendedTasks        []string
	AvoidTasks              []string
	ExerciseRecommendations string
	Motivation              string
}

type recommendedTasksBody struct {
	Tasks []string `json:"Recommended Tasks"`
}

type avoidTasksBody struct {
	Tasks []string `json:"Avoid Tasks"`
}

type messageBody struct {
	Message string `json:"message"`
}

type analysisReportBody struct {
	ProductiveMinutesPerMood map[string]int         `json:"Productive Minutes per Mood"`
	PleasantTimeRanges       map[string][]TimeRange `json:"Pleasant Time Ranges for Tasks Completions"`
	RecommendedTasks         recommendedTasksBody   `json:"Recommended Tasks"`
	AvoidTasks               avoidTasksBody         `json:"Avoid Tasks"`
	ExerciseRecommendations  messageBody            `json:"Exercise Recommendations"`
	Motivation               messageBody            `json:"Motivation"`
}

// MarshalJSON renders the report with its stable field names.
// Nil maps and slices are rendered as {} and [] rather than null.
func (r AnalysisReport) MarshalJSON() ([]byte, error) {
	body := analysisReportBody{
		ProductiveMinutesPerMood: r.ProductiveMinutesPerMood,
		PleasantTimeRanges:       make(map[string][]TimeRange, len(r.PleasantTimeRanges)),
		RecommendedTasks:         recommendedTasksBody{Tasks: nonNil(r.RecommendedTasks)},
		AvoidTasks:               avoidTasksBody{Tasks: nonNil(r.AvoidTasks)},
		ExerciseRecommendations:  messageBody{Message: r.ExerciseRecommendations},
		Motivation:               messageBody{Message: r.Motivation},
	}
	if body.ProductiveMinutesPerMood == nil {
		body.ProductiveMinutesPerMood = map[string]int{}
	}
	for mood, ranges := range r.PleasantTimeRanges {
		if ranges == nil {
			ranges = []TimeRange{}
		}
		body.PleasantTimeRanges[mood] = ranges
	}
	return json.Marshal(body)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
