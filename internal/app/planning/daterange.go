// Package planning computes the visible date range of the planning grid and
// groups a technician's work orders into its days.
package planning

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"werkbon/internal/app/ds"
)

type Mode string

const (
	ModeDay      Mode = "day"
	ModeWorkWeek Mode = "workweek"
	ModeFullWeek Mode = "fullweek"
)

// View is a mode plus an offset: days for ModeDay, weeks otherwise.
type View struct {
	Mode   Mode
	Offset int
}

func Day(offset int) View      { return View{Mode: ModeDay, Offset: offset} }
func WorkWeek(offset int) View { return View{Mode: ModeWorkWeek, Offset: offset} }
func FullWeek(offset int) View { return View{Mode: ModeFullWeek, Offset: offset} }

var ErrUnknownMode = errors.New("unknown planning view")

// ParseView accepts the English mode names and their Dutch aliases. An empty
// mode is the work week.
func ParseView(mode string, offset int) (View, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "workweek", "werkweek":
		return WorkWeek(offset), nil
	case "day", "dag", "vandaag":
		return Day(offset), nil
	case "fullweek", "heleweek":
		return FullWeek(offset), nil
	}
	return View{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

var weekdayLabels = []string{"Maandag", "Dinsdag", "Woensdag", "Donderdag", "Vrijdag", "Zaterdag", "Zondag"}

const dayLabel = "Dag"

type DayEntry struct {
	Label string
	Date  string // YYYY-MM-DD
}

// Range is the inclusive date range of a view with its days in calendar order.
type Range struct {
	Start string
	End   string
	Days  []DayEntry
}

// Compute evaluates view against now, in now's location.
func Compute(view View, now time.Time) Range {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if view.Mode == ModeDay {
		d := today.AddDate(0, 0, view.Offset).Format(ds.DateLayout)
		return Range{Start: d, End: d, Days: []DayEntry{{Label: dayLabel, Date: d}}}
	}

	labels := weekdayLabels[:5]
	if view.Mode == ModeFullWeek {
		labels = weekdayLabels
	}

	ref := today.AddDate(0, 0, view.Offset*7)
	monday := ref.AddDate(0, 0, -((int(ref.Weekday()) + 6) % 7))

	days := make([]DayEntry, len(labels))
	for i, label := range labels {
		days[i] = DayEntry{Label: label, Date: monday.AddDate(0, 0, i).Format(ds.DateLayout)}
	}
	return Range{Start: days[0].Date, End: days[len(days)-1].Date, Days: days}
}
