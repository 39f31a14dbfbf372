package analysis

import "github.com/kamilaomar/moodtracker/backend/internal/models"

// moodLedger holds per-mood totals together with the raw ranges of
// positive moods. Both are filled in the same pass over the tasks.
type moodLedger struct {
	minutes map[string]int
	ranges  map[string][]string
}

// buildLedger groups tasks by mood, sums elapsed minutes and collects the
// time ranges of positive moods. Tasks without a mood are walked (their times
// are still validated) but never become a key. Moods whose total is not
// strictly positive are dropped from both maps.
func (e *Engine) buildLedger(tasks []models.Task) (*moodLedger, error) {
	ledger := &moodLedger{
		minutes: make(map[string]int),
		ranges:  make(map[string][]string),
	}

	for _, task := range tasks {
		elapsed, err := elapsedMinutes(task)
		if err != nil {
			return nil, err
		}
		if task.Mood == nil {
			continue
		}

		mood := *task.Mood
		ledger.minutes[mood] += elapsed
		if e.catalog.IsPositive(mood) {
			ledger.ranges[mood] = append(ledger.ranges[mood], formatRange(task))
		}
	}

	for mood, total := range ledger.minutes {
		if total <= 0 {
			delete(ledger.minutes, mood)
			delete(ledger.ranges, mood)
		}
	}

	return ledger, nil
}

// elapsedMinutes returns finish minus start. A task missing either time
// contributes nothing; finish before start yields a negative value.
func elapsedMinutes(task models.Task) (int, error) {
	start, hasStart, err := taskMinutes(task.ID, "start_time", task.StartTime)
	if err != nil {
		return 0, err
	}
	finish, hasFinish, err := taskMinutes(task.ID, "finish_time", task.FinishTime)
	if err != nil {
		return 0, err
	}
	if !hasStart || !hasFinish {
		return 0, nil
	}
	return finish - start, nil
}
