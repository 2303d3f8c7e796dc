package planning

import (
	"context"
	"fmt"
	"sort"
	"time"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/repository"
)

type Store interface {
	FindWorkOrders(ctx context.Context, f repository.WorkOrderFilter, orderBy ...repository.OrderBy) ([]ds.WorkOrder, error)
}

// Bucket holds the work orders planned on one day.
type Bucket struct {
	Day        DayEntry
	WorkOrders []ds.WorkOrder
}

type Planning struct {
	View    View
	Range   Range
	Buckets []Bucket
}

// Aggregator loads the planning grid. It keeps no state between calls, so
// every read reflects the latest saved work orders.
type Aggregator struct {
	store Store
	loc   *time.Location
	now   func() time.Time
}

func NewAggregator(store Store, loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{store: store, loc: loc, now: time.Now}
}

// WithClock replaces the time source.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

var planningOrder = []repository.OrderBy{
	{Column: repository.ColumnPlanDate},
	{Column: repository.ColumnPlanSlot, NullsFirst: true},
	{Column: repository.ColumnCreatedAt},
}

// Planning loads the technician's grid for view. Without a technician the
// grid has only empty days.
func (a *Aggregator) Planning(ctx context.Context, technicianID string, view View) (*Planning, error) {
	rng := Compute(view, a.now().In(a.loc))
	if technicianID == "" {
		return &Planning{View: view, Range: rng, Buckets: Group(rng.Days, nil)}, nil
	}

	orders, err := a.store.FindWorkOrders(ctx, repository.WorkOrderFilter{
		TechnicianID: technicianID,
		Statuses:     []ds.WorkOrderStatus{ds.StatusScheduled, ds.StatusCompleted},
		PlanDateFrom: rng.Start,
		PlanDateTo:   rng.End,
	}, planningOrder...)
	if err != nil {
		return nil, fmt.Errorf("failed to load planning: %w", err)
	}

	return &Planning{View: view, Range: rng, Buckets: Group(rng.Days, orders)}, nil
}

// Group puts orders into one bucket per day, keeping their order. Every day
// gets a bucket, empty or not. Orders on dates outside days get extra
// buckets after them, sorted by date.
func Group(days []DayEntry, orders []ds.WorkOrder) []Bucket {
	buckets := make([]Bucket, len(days))
	index := make(map[string]int, len(days))
	for i, d := range days {
		buckets[i] = Bucket{Day: d, WorkOrders: []ds.WorkOrder{}}
		index[d.Date] = i
	}

	var stray []Bucket
	for _, w := range orders {
		day := w.PlanDay()
		i, ok := index[day]
		if !ok {
			stray = append(stray, Bucket{Day: DayEntry{Label: day, Date: day}, WorkOrders: []ds.WorkOrder{}})
			i = len(days) + len(stray) - 1
			index[day] = i
		}
		if i < len(days) {
			buckets[i].WorkOrders = append(buckets[i].WorkOrders, w)
		} else {
			stray[i-len(days)].WorkOrders = append(stray[i-len(days)].WorkOrders, w)
		}
	}

	sort.SliceStable(stray, func(i, j int) bool { return stray[i].Day.Date < stray[j].Day.Date })
	return append(buckets, stray...)
}
