// Package analysis turns a user's task log into an AnalysisReport: minutes
// per mood, time ranges of positive moods, tasks to avoid and coping
// exercises.
//
// The engine is pure. It holds no mutable state, never modifies the tasks it
// is given, and is safe for concurrent use.
package analysis

import "github.com/kamilaomar/moodtracker/backend/internal/models"

// Engine analyses task logs against a Catalog
type Engine struct {
	catalog *Catalog
}

// NewEngine creates an engine. A nil catalog selects the built-in one.
func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

// Analyze builds the report for one task log. It fails with a
// *TimeParseError (matching ErrMalformedTime) if any task carries a time
// that is not HH:MM; no partial report is returned in that case.
func (e *Engine) Analyze(tasks []models.Task) (*models.AnalysisReport, error) {
	ledger, err := e.buildLedger(tasks)
	if err != nil {
		return nil, err
	}

	avoid, err := e.avoidTasks(tasks)
	if err != nil {
		return nil, err
	}

	return &models.AnalysisReport{
		ProductiveMinutesPerMood: ledger.minutes,
		PleasantTimeRanges:       pleasantTimeRanges(ledger.ranges),
		RecommendedTasks:         []string{},
		AvoidTasks:               avoid,
		ExerciseRecommendations:  e.exerciseMessage(tasks),
		Motivation:               e.catalog.Motivation(),
	}, nil
}
