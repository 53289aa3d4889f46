package views

import (
	"strings"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/types"
)

type KanbanColumn struct {
	Status string            `json:"status"`
	Title  string            `json:"title"`
	Tasks  []repository.Task `json:"tasks"`
}

var kanbanColumns = []KanbanColumn{
	{Status: types.StatusTodo, Title: "To Do"},
	{Status: types.StatusInProgress, Title: "In Progress"},
	{Status: types.StatusReview, Title: "Review"},
	{Status: types.StatusCompleted, Title: "Completed"},
}

// Kanban partitions tasks into the four status columns, preserving
// collection order inside each column.
func Kanban(tasks []repository.Task) []KanbanColumn {
	columns := make([]KanbanColumn, len(kanbanColumns))
	index := make(map[string]int, len(kanbanColumns))
	for i, c := range kanbanColumns {
		columns[i] = KanbanColumn{Status: c.Status, Title: c.Title, Tasks: []repository.Task{}}
		index[c.Status] = i
	}

	for _, t := range tasks {
		if i, ok := index[t.Status]; ok {
			columns[i].Tasks = append(columns[i].Tasks, t)
		}
	}
	return columns
}

// FilterTasks keeps tasks whose title or description contains search
// (case-insensitive) and whose priority matches. "" and "all" match any
// priority.
func FilterTasks(tasks []repository.Task, search, priority string) []repository.Task {
	q := strings.ToLower(search)
	out := make([]repository.Task, 0, len(tasks))
	for _, t := range tasks {
		if !containsFold(q, t.Title, t.Description) {
			continue
		}
		if priority != "" && priority != types.FilterAll && t.Priority != priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

// OverdueTasks returns unfinished tasks whose due date is before the start
// of now's day in loc.
func OverdueTasks(tasks []repository.Task, now time.Time, loc *time.Location) []repository.Task {
	n := now.In(loc)
	startOfDay := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)

	out := make([]repository.Task, 0)
	for _, t := range tasks {
		if t.DueDate == nil || t.Status == types.StatusCompleted {
			continue
		}
		if t.DueDate.Before(startOfDay) {
			out = append(out, t)
		}
	}
	return out
}

// TasksDueOn returns unfinished tasks due on day's calendar date.
func TasksDueOn(tasks []repository.Task, day time.Time, loc *time.Location) []repository.Task {
	out := make([]repository.Task, 0)
	for _, t := range tasks {
		if t.DueDate != nil && t.Status != types.StatusCompleted && SameDay(*t.DueDate, day, loc) {
			out = append(out, t)
		}
	}
	return out
}

// containsFold reports whether any field contains the already lowered q.
func containsFold(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
