package workorder

import (
	"reflect"
	"testing"

	"werkbon/internal/app/ds"
)

func TestDeriveHandlingStatus(t *testing.T) {
	tests := []struct {
		jobDone, followUp bool
		want              ds.HandlingStatus
	}{
		{true, false, ds.HandlingToProcess},
		{true, true, ds.HandlingFollowUpRequired},
		{false, false, ds.HandlingFollowUpRequired},
		{false, true, ds.HandlingFollowUpRequired},
	}
	for _, tt := range tests {
		if got := DeriveHandlingStatus(tt.jobDone, tt.followUp); got != tt.want {
			t.Errorf("DeriveHandlingStatus(%v, %v) = %s, want %s", tt.jobDone, tt.followUp, got, tt.want)
		}
	}
}

func TestCanEdit(t *testing.T) {
	owner := &ds.Technician{ID: "tech-a"}
	other := &ds.Technician{ID: "tech-b"}
	scheduled := &ds.WorkOrder{ID: "wo", Status: ds.StatusScheduled, TechnicianID: "tech-a"}
	completed := &ds.WorkOrder{ID: "wo", Status: ds.StatusCompleted, TechnicianID: "tech-a"}

	tests := []struct {
		name string
		w    *ds.WorkOrder
		tech *ds.Technician
		want bool
	}{
		{"owner on scheduled", scheduled, owner, true},
		{"other technician", scheduled, other, false},
		{"completed", completed, owner, false},
		{"no technician", scheduled, nil, false},
		{"no work order", nil, owner, false},
		{"unknown status", &ds.WorkOrder{Status: "archived", TechnicianID: "tech-a"}, owner, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEdit(tt.w, tt.tech); got != tt.want {
				t.Errorf("CanEdit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredecessorNumbers(t *testing.T) {
	tests := []struct {
		number string
		want   []string
	}{
		{"W226/0001", []string{"W126/0001", "W026/0001"}},
		{"W050/0002", []string{}},
		{"W100/0002", []string{"W000/0002"}},
		{"W105/0003", []string{"W005/0003"}},
		{"w999", []string{"w899", "w799", "w699", "w599", "w499", "w399", "w299", "w199", "w099"}},
		{"  W226/0001  ", []string{"W126/0001", "W026/0001"}},
		{"abc", []string{}},
		{"W22/0001", []string{}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			got := PredecessorNumbers(tt.number)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PredecessorNumbers(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	n, ok := ParseNumber("W226/0001")
	if !ok {
		t.Fatal("expected W226/0001 to parse")
	}
	if n.Prefix != "W" || n.Series != 226 || n.Suffix != "/0001" {
		t.Errorf("unexpected parse: %+v", n)
	}
	if n.String() != "W226/0001" {
		t.Errorf("round trip: %s", n.String())
	}

	n, ok = ParseNumber("A007")
	if !ok || n.Series != 7 || n.Suffix != "" || n.String() != "A007" {
		t.Errorf("unexpected parse of A007: %+v %v", n, ok)
	}
}
