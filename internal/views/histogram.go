// Package views derives read-only summaries from the stored collections.
// Every function is pure and rescans its input on each call.
package views

import (
	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/types"
	"github.com/shopspring/decimal"
)

// Bucket is one bar of a histogram.
type Bucket struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

var projectStatusBuckets = []Bucket{
	{Key: types.ProjectActive, Label: "Active", Color: "#10b981"},
	{Key: types.ProjectPlanning, Label: "Planning", Color: "#3b82f6"},
	{Key: types.ProjectOnHold, Label: "On Hold", Color: "#f59e0b"},
	{Key: types.ProjectCompleted, Label: "Completed", Color: "#8b5cf6"},
}

var taskPriorityBuckets = []Bucket{
	{Key: types.PriorityUrgent, Label: "Urgent", Color: "#ef4444"},
	{Key: types.PriorityHigh, Label: "High", Color: "#f59e0b"},
	{Key: types.PriorityMedium, Label: "Medium", Color: "#3b82f6"},
	{Key: types.PriorityLow, Label: "Low", Color: "#10b981"},
}

// ProjectStatusHistogram counts projects per status in display order.
// Percent is relative to the largest bucket.
func ProjectStatusHistogram(projects []repository.Project) []Bucket {
	counts := make(map[string]int, len(projectStatusBuckets))
	for _, p := range projects {
		counts[p.Status]++
	}
	return fill(projectStatusBuckets, counts)
}

// TaskPriorityHistogram counts tasks per priority, urgent first.
func TaskPriorityHistogram(tasks []repository.Task) []Bucket {
	counts := make(map[string]int, len(taskPriorityBuckets))
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return fill(taskPriorityBuckets, counts)
}

func fill(template []Bucket, counts map[string]int) []Bucket {
	buckets := make([]Bucket, len(template))
	copy(buckets, template)
	for i := range buckets {
		buckets[i].Count = counts[buckets[i].Key]
	}
	BarPercentages(buckets)
	return buckets
}

// BarPercentages sets each Percent to count/max*100, or 0 when every
// bucket is empty.
func BarPercentages(buckets []Bucket) {
	largest := 0
	for _, b := range buckets {
		if b.Count > largest {
			largest = b.Count
		}
	}
	for i := range buckets {
		if largest == 0 {
			buckets[i].Percent = 0
			continue
		}
		buckets[i].Percent = percent(buckets[i].Count, largest, 2)
	}
}

// CompletionRate is round(completed/total*100), 0 for an empty list.
func CompletionRate(tasks []repository.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == types.StatusCompleted {
			completed++
		}
	}
	return int(decimal.NewFromInt(int64(completed)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(tasks)))).
		Round(0).
		IntPart())
}

func percent(part, whole int, places int32) float64 {
	f, _ := decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(whole))).
		Round(places).
		Float64()
	return f
}
