package sync

import (
	"sort"
	"time"

	"tasksync/internal/domain"
)

// Group is one presentation bucket of the canonical view: either a single
// calendar day, or the collapsed bucket of all days before today.
type Group struct {
	Day   time.Time // zero when Past is true
	Past  bool
	Tasks []domain.Task
}

// GroupByDay sorts the canonical task set for presentation: one bucket per
// calendar day of the due date, with every day before today collapsed into a
// single leading past bucket. Tasks within a bucket ascend by due date.
func GroupByDay(tasks []domain.Task, today time.Time) []Group {
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	var past []domain.Task
	byDay := make(map[time.Time][]domain.Task)
	for _, task := range tasks {
		date := task.Date.In(today.Location())
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location())
		if day.Before(startOfToday) {
			past = append(past, task)
			continue
		}
		byDay[day] = append(byDay[day], task)
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	groups := make([]Group, 0, len(days)+1)
	if len(past) > 0 {
		sortByDate(past)
		groups = append(groups, Group{Past: true, Tasks: past})
	}
	for _, day := range days {
		dayTasks := byDay[day]
		sortByDate(dayTasks)
		groups = append(groups, Group{Day: day, Tasks: dayTasks})
	}
	return groups
}

func sortByDate(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Date.Before(tasks[j].Date)
	})
}
