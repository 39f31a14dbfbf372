package analysis

import "github.com/kamilaomar/moodtracker/backend/internal/models"

// UntitledTask is reported for tasks without a title
const UntitledTask = "Untitled Task"

// avoidTasks lists, in input order, the titles of tasks carrying an avoid
// mood that start inside the avoid window. Only the start time is looked at,
// and a missing start counts as minute 0.
func (e *Engine) avoidTasks(tasks []models.Task) ([]string, error) {
	avoid := []string{}
	for _, task := range tasks {
		if task.Mood == nil || !e.catalog.IsAvoidMood(*task.Mood) {
			continue
		}

		start, _, err := taskMinutes(task.ID, "start_time", task.StartTime)
		if err != nil {
			return nil, err
		}
		if e.catalog.InAvoidWindow(start) {
			avoid = append(avoid, valueOr(task.Title, UntitledTask))
		}
	}
	return avoid, nil
}
