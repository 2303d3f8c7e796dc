package repository

import (
	"time"

	"werkbon/internal/app/ds"
)

const (
	ColumnPlanDate  = "plan_date"
	ColumnPlanSlot  = "plan_slot"
	ColumnCreatedAt = "created_at"
)

// WorkOrderFilter narrows work-order queries. Zero-valued fields are ignored;
// all set fields must match.
type WorkOrderFilter struct {
	ID           string
	ExcludeID    string
	ShareToken   string
	TechnicianID string
	Statuses     []ds.WorkOrderStatus
	PlanDateFrom string // inclusive, YYYY-MM-DD
	PlanDateTo   string // inclusive, YYYY-MM-DD
	PostalCode   string
	HouseNumber  string
	Numbers      []string
}

type OrderBy struct {
	Column     string
	Desc       bool
	NullsFirst bool
}

// Matches reports whether w satisfies the filter. It mirrors the SQL built by
// FindWorkOrders and is used by in-memory stores.
func (f WorkOrderFilter) Matches(w *ds.WorkOrder) bool {
	if f.ID != "" && w.ID != f.ID {
		return false
	}
	if f.ExcludeID != "" && w.ID == f.ExcludeID {
		return false
	}
	if f.ShareToken != "" && w.ShareToken != f.ShareToken {
		return false
	}
	if f.TechnicianID != "" && w.TechnicianID != f.TechnicianID {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, w.Status) {
		return false
	}
	day := w.PlanDay()
	if f.PlanDateFrom != "" && day < f.PlanDateFrom {
		return false
	}
	if f.PlanDateTo != "" && day > f.PlanDateTo {
		return false
	}
	if f.PostalCode != "" && w.PostalCode != f.PostalCode {
		return false
	}
	if f.HouseNumber != "" && w.HouseNumber != f.HouseNumber {
		return false
	}
	if f.Numbers != nil && !containsString(f.Numbers, w.Number) {
		return false
	}
	return true
}

func containsStatus(list []ds.WorkOrderStatus, s ds.WorkOrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// WorkOrderUpdate is the partial record written by save and complete.
type WorkOrderUpdate struct {
	Findings             *string
	Advice               *string
	JobDone              bool
	FollowUpNeeded       bool
	Materials            ds.MaterialList
	PhotoURLs            ds.PhotoList
	HandlingStatus       ds.HandlingStatus
	FilledByTechnicianID string
	FilledAt             time.Time

	// Set only when completing.
	Status      ds.WorkOrderStatus
	CompletedAt *time.Time
}

func (u WorkOrderUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{
		"findings":                u.Findings,
		"advice":                  u.Advice,
		"job_done":                u.JobDone,
		"follow_up_needed":        u.FollowUpNeeded,
		"materials":               normalizedMaterials(u.Materials),
		"photo_urls":              normalizedPhotos(u.PhotoURLs),
		"handling_status":         string(u.HandlingStatus),
		"filled_by_technician_id": u.FilledByTechnicianID,
		"filled_at":               u.FilledAt,
	}
	if u.Status != "" {
		cols["status"] = string(u.Status)
	}
	if u.CompletedAt != nil {
		cols["completed_at"] = *u.CompletedAt
	}
	return cols
}

// Apply merges the update into an in-memory record.
func (u WorkOrderUpdate) Apply(w *ds.WorkOrder) {
	w.Findings = u.Findings
	w.Advice = u.Advice
	w.JobDone = u.JobDone
	w.FollowUpNeeded = u.FollowUpNeeded
	w.Materials = normalizedMaterials(u.Materials)
	w.PhotoURLs = normalizedPhotos(u.PhotoURLs)
	hs := u.HandlingStatus
	w.HandlingStatus = &hs
	filledBy := u.FilledByTechnicianID
	w.FilledByTechnicianID = &filledBy
	filledAt := u.FilledAt
	w.FilledAt = &filledAt
	if u.Status != "" {
		w.Status = u.Status
	}
	if u.CompletedAt != nil {
		completedAt := *u.CompletedAt
		w.CompletedAt = &completedAt
	}
}

func normalizedMaterials(l ds.MaterialList) ds.MaterialList {
	if l == nil {
		return ds.MaterialList{}
	}
	return append(ds.MaterialList{}, l...)
}

func normalizedPhotos(l ds.PhotoList) ds.PhotoList {
	if l == nil {
		return ds.PhotoList{}
	}
	return append(ds.PhotoList{}, l...)
}
