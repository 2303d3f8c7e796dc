package planning

import (
	"context"
	"errors"
	"testing"
	"time"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/testutil"
)

func TestPlanningBucketsEveryDay(t *testing.T) {
	early := testutil.WorkOrder("wo-1", "W226/0001", "2025-03-12")
	early.PlanSlot = testutil.StringPtr("08:00-10:00")
	noSlot := testutil.WorkOrder("wo-2", "W226/0002", "2025-03-12")
	late := testutil.WorkOrder("wo-3", "W226/0003", "2025-03-12")
	late.PlanSlot = testutil.StringPtr("13:00-15:00")
	friday := testutil.WorkOrder("wo-4", "W226/0004", "2025-03-14")
	friday.Status = ds.StatusCompleted
	other := testutil.WorkOrder("wo-5", "W226/0005", "2025-03-12")
	other.TechnicianID = testutil.OtherTechnicianID
	nextWeek := testutil.WorkOrder("wo-6", "W226/0006", "2025-03-17")

	store := testutil.NewStore(late, friday, other, noSlot, early, nextWeek)
	agg := NewAggregator(store, time.UTC).WithClock(func() time.Time { return wednesday })

	p, err := agg.Planning(context.Background(), testutil.TechnicianID, WorkWeek(0))
	if err != nil {
		t.Fatalf("Planning: %v", err)
	}
	if len(p.Buckets) != 5 {
		t.Fatalf("want 5 buckets, got %d", len(p.Buckets))
	}

	for i, b := range p.Buckets {
		if b.WorkOrders == nil {
			t.Errorf("bucket %d is nil", i)
		}
	}
	wed := p.Buckets[2]
	if wed.Day.Date != "2025-03-12" || len(wed.WorkOrders) != 3 {
		t.Fatalf("wednesday bucket: %+v", wed)
	}
	got := []string{wed.WorkOrders[0].ID, wed.WorkOrders[1].ID, wed.WorkOrders[2].ID}
	if got[0] != "wo-2" || got[1] != "wo-1" || got[2] != "wo-3" {
		t.Errorf("order = %v, want [wo-2 wo-1 wo-3]", got)
	}
	if len(p.Buckets[4].WorkOrders) != 1 || len(p.Buckets[0].WorkOrders) != 0 {
		t.Errorf("friday/monday buckets wrong: %+v", p.Buckets)
	}
}

func TestPlanningReflectsSaves(t *testing.T) {
	store := testutil.NewStore(testutil.WorkOrder("wo-1", "W226/0001", "2025-03-12"))
	agg := NewAggregator(store, time.UTC).WithClock(func() time.Time { return wednesday })
	ctx := context.Background()

	if _, err := agg.Planning(ctx, testutil.TechnicianID, Day(0)); err != nil {
		t.Fatal(err)
	}
	w, _ := store.Get("wo-1")
	w.Status = ds.StatusCompleted
	store.Put(w)

	p, err := agg.Planning(ctx, testutil.TechnicianID, Day(0))
	if err != nil {
		t.Fatal(err)
	}
	if p.Buckets[0].WorkOrders[0].Status != ds.StatusCompleted {
		t.Errorf("planning served stale data")
	}
}

func TestPlanningBackendError(t *testing.T) {
	store := testutil.NewStore()
	store.Err = errors.New("timeout")
	agg := NewAggregator(store, time.UTC)
	if _, err := agg.Planning(context.Background(), testutil.TechnicianID, Day(0)); !errors.Is(err, store.Err) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestGroupStrayDates(t *testing.T) {
	days := []DayEntry{{Label: "Dag", Date: "2025-03-12"}}
	orders := []ds.WorkOrder{
		testutil.WorkOrder("a", "W1", "2025-03-20"),
		testutil.WorkOrder("b", "W2", "2025-03-12"),
		testutil.WorkOrder("c", "W3", "2025-03-15"),
		testutil.WorkOrder("d", "W4", "2025-03-20"),
	}
	buckets := Group(days, orders)
	if len(buckets) != 3 {
		t.Fatalf("want 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Day.Date != "2025-03-12" || buckets[1].Day.Date != "2025-03-15" || buckets[2].Day.Date != "2025-03-20" {
		t.Errorf("bucket dates: %v %v %v", buckets[0].Day, buckets[1].Day, buckets[2].Day)
	}
	if len(buckets[2].WorkOrders) != 2 || buckets[2].WorkOrders[0].ID != "a" {
		t.Errorf("stray bucket: %+v", buckets[2])
	}
}

func TestGroupEmpty(t *testing.T) {
	r := Compute(FullWeek(0), wednesday)
	buckets := Group(r.Days, nil)
	if len(buckets) != 7 {
		t.Fatalf("want 7 buckets, got %d", len(buckets))
	}
	for _, b := range buckets {
		if b.WorkOrders == nil || len(b.WorkOrders) != 0 {
			t.Errorf("%s: want empty list", b.Day.Date)
		}
	}
}

func TestPlanningWithoutTechnician(t *testing.T) {
	store := testutil.NewStore(testutil.WorkOrder("wo-1", "W226/0001", "2025-03-12"))
	store.Err = errors.New("must not be queried")
	agg := NewAggregator(store, time.UTC).WithClock(func() time.Time { return wednesday })

	p, err := agg.Planning(context.Background(), "", FullWeek(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Buckets) != 7 {
		t.Errorf("want 7 empty buckets, got %d", len(p.Buckets))
	}
}
