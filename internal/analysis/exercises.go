package analysis

import (
	"strings"

	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// exerciseMessage collects the coping exercises matching tasks done under a
// negative mood. Mood and title are compared lowercased. Each exercise appears
// once; the order of lines is not part of the contract.
func (e *Engine) exerciseMessage(tasks []models.Task) string {
	// Casers are stateful, so each call gets its own.
	lower := cases.Lower(language.Und)

	seen := make(map[string]struct{})
	var lines []string
	for _, task := range tasks {
		if task.Mood == nil || task.Title == nil {
			continue
		}
		if !e.catalog.IsExerciseMood(lower.String(*task.Mood)) {
			continue
		}

		exercise, ok := e.catalog.Exercise(lower.String(*task.Title))
		if !ok {
			continue
		}
		if _, dup := seen[exercise]; dup {
			continue
		}
		seen[exercise] = struct{}{}
		lines = append(lines, exercise)
	}

	return strings.Join(lines, "\n")
}
