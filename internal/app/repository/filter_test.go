package repository

import (
	"testing"
	"time"

	"werkbon/internal/app/ds"
)

func testOrder() *ds.WorkOrder {
	return &ds.WorkOrder{
		ID:           "wo-1",
		Number:       "W226/0001",
		ShareToken:   "tok",
		PlanDate:     time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
		Status:       ds.StatusScheduled,
		TechnicianID: "tech-1",
		PostalCode:   "1234AB",
		HouseNumber:  "12",
	}
}

func TestWorkOrderFilterMatches(t *testing.T) {
	w := testOrder()

	tests := []struct {
		name   string
		filter WorkOrderFilter
		want   bool
	}{
		{"empty filter", WorkOrderFilter{}, true},
		{"id", WorkOrderFilter{ID: "wo-1"}, true},
		{"other id", WorkOrderFilter{ID: "wo-2"}, false},
		{"excluded", WorkOrderFilter{ExcludeID: "wo-1"}, false},
		{"token", WorkOrderFilter{ShareToken: "tok"}, true},
		{"wrong token", WorkOrderFilter{ShareToken: "nope"}, false},
		{"technician", WorkOrderFilter{TechnicianID: "tech-2"}, false},
		{"status in", WorkOrderFilter{Statuses: []ds.WorkOrderStatus{ds.StatusScheduled, ds.StatusCompleted}}, true},
		{"status not in", WorkOrderFilter{Statuses: []ds.WorkOrderStatus{ds.StatusCompleted}}, false},
		{"range inclusive", WorkOrderFilter{PlanDateFrom: "2026-10-21", PlanDateTo: "2026-10-21"}, true},
		{"before range", WorkOrderFilter{PlanDateFrom: "2026-10-22"}, false},
		{"after range", WorkOrderFilter{PlanDateTo: "2026-10-20"}, false},
		{"address", WorkOrderFilter{PostalCode: "1234AB", HouseNumber: "12"}, true},
		{"other house", WorkOrderFilter{PostalCode: "1234AB", HouseNumber: "14"}, false},
		{"number in", WorkOrderFilter{Numbers: []string{"W126/0001", "W226/0001"}}, true},
		{"empty number set", WorkOrderFilter{Numbers: []string{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(w); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkOrderUpdateColumns(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	upd := WorkOrderUpdate{
		JobDone:              true,
		HandlingStatus:       ds.HandlingToProcess,
		FilledByTechnicianID: "tech-1",
		FilledAt:             now,
	}

	cols := upd.Columns()
	if _, ok := cols["status"]; ok {
		t.Errorf("save must not write status")
	}
	if _, ok := cols["completed_at"]; ok {
		t.Errorf("save must not write completed_at")
	}
	if cols["handling_status"] != "to_process" {
		t.Errorf("expected handling_status to_process, got %v", cols["handling_status"])
	}
	if m, ok := cols["materials"].(ds.MaterialList); !ok || m == nil {
		t.Errorf("expected non-nil materials list, got %#v", cols["materials"])
	}

	upd.Status = ds.StatusCompleted
	upd.CompletedAt = &now
	cols = upd.Columns()
	if cols["status"] != "completed" {
		t.Errorf("expected status completed, got %v", cols["status"])
	}
	if cols["completed_at"] != now {
		t.Errorf("expected completed_at %v, got %v", now, cols["completed_at"])
	}
}

func TestWorkOrderUpdateApply(t *testing.T) {
	w := testOrder()
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	advice := "vervangen"
	upd := WorkOrderUpdate{
		Advice:               &advice,
		FollowUpNeeded:       true,
		PhotoURLs:            ds.PhotoList{"u1"},
		HandlingStatus:       ds.HandlingFollowUpRequired,
		FilledByTechnicianID: "tech-1",
		FilledAt:             now,
	}
	upd.Apply(w)

	if w.Status != ds.StatusScheduled {
		t.Errorf("status changed by save: %s", w.Status)
	}
	if w.HandlingStatus == nil || *w.HandlingStatus != ds.HandlingFollowUpRequired {
		t.Errorf("unexpected handling status %v", w.HandlingStatus)
	}
	if w.FilledAt == nil || !w.FilledAt.Equal(now) {
		t.Errorf("filled_at not applied")
	}
	if w.Materials == nil || len(w.PhotoURLs) != 1 {
		t.Errorf("lists not applied: %v %v", w.Materials, w.PhotoURLs)
	}
	if w.CompletedAt != nil {
		t.Errorf("completed_at set by save")
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		in   OrderBy
		want string
	}{
		{OrderBy{Column: ColumnPlanDate}, "plan_date ASC"},
		{OrderBy{Column: ColumnPlanDate, Desc: true}, "plan_date DESC"},
		{OrderBy{Column: ColumnPlanSlot, NullsFirst: true}, "plan_slot ASC NULLS FIRST"},
	}
	for _, tt := range tests {
		got, err := orderClause(tt.in)
		if err != nil {
			t.Fatalf("orderClause(%+v): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("orderClause(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := orderClause(OrderBy{Column: "id; drop table work_orders"}); err == nil {
		t.Errorf("expected error for unknown column")
	}
}
