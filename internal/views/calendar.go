package views

import (
	"time"

	"github.com/Marga-Ghale/projectflow/internal/repository"
)

// DayCell is one square of the calendar. Padding cells have Date == nil.
type DayCell struct {
	Date    *time.Time                 `json:"date"`
	Day     int                        `json:"day,omitempty"`
	IsToday bool                       `json:"isToday,omitempty"`
	Events  []repository.CalendarEvent `json:"events"`
}

type MonthGrid struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	MonthName string    `json:"monthName"`
	Weekdays  []string  `json:"weekdays"`
	Cells     []DayCell `json:"cells"`
}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// BuildMonthGrid lays out month as Sunday-first weeks: one empty cell per
// weekday before the 1st, a cell per day, then empty cells to finish the
// last week. Events land on the cell whose calendar day matches in loc.
func BuildMonthGrid(year int, month time.Month, events []repository.CalendarEvent, now time.Time, loc *time.Location) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	leading := int(first.Weekday())

	grid := MonthGrid{
		Year:      first.Year(),
		Month:     int(first.Month()),
		MonthName: first.Month().String(),
		Weekdays:  weekdayNames,
		Cells:     make([]DayCell, 0, 42),
	}

	for i := 0; i < leading; i++ {
		grid.Cells = append(grid.Cells, DayCell{Events: []repository.CalendarEvent{}})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		grid.Cells = append(grid.Cells, dayCell(date, events, now, loc))
	}
	for len(grid.Cells)%7 != 0 {
		grid.Cells = append(grid.Cells, DayCell{Events: []repository.CalendarEvent{}})
	}

	return grid
}

// BuildWeek returns the Sunday..Saturday strip containing anchor.
func BuildWeek(anchor time.Time, events []repository.CalendarEvent, now time.Time, loc *time.Location) []DayCell {
	a := anchor.In(loc)
	start := time.Date(a.Year(), a.Month(), a.Day()-int(a.Weekday()), 0, 0, 0, 0, loc)

	cells := make([]DayCell, 7)
	for i := range cells {
		cells[i] = dayCell(start.AddDate(0, 0, i), events, now, loc)
	}
	return cells
}

func dayCell(date time.Time, events []repository.CalendarEvent, now time.Time, loc *time.Location) DayCell {
	d := date
	return DayCell{
		Date:    &d,
		Day:     date.Day(),
		IsToday: SameDay(date, now, loc),
		Events:  EventsOn(events, date, loc),
	}
}

// EventsOn keeps the events falling on day's calendar date in loc,
// in collection order.
func EventsOn(events []repository.CalendarEvent, day time.Time, loc *time.Location) []repository.CalendarEvent {
	out := make([]repository.CalendarEvent, 0)
	for _, e := range events {
		if SameDay(e.Date, day, loc) {
			out = append(out, e)
		}
	}
	return out
}

// SameDay compares year, month and day after converting both to loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// UpcomingEvents returns the first limit events in collection order.
func UpcomingEvents(events []repository.CalendarEvent, limit int) []repository.CalendarEvent {
	if limit < 0 || len(events) <= limit {
		return append([]repository.CalendarEvent{}, events...)
	}
	return append([]repository.CalendarEvent{}, events[:limit]...)
}

// ShiftMonth moves a (year, month) cursor by delta months.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
