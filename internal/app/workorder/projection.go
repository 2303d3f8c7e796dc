package workorder

import (
	"werkbon/internal/app/ds"
	"werkbon/internal/app/dto"
)

// DetailPath opens the work order in the app.
func DetailPath(id string) string {
	return "/app?werkbon=" + id
}

// SharePath is the anonymous read-only link of a work order.
func SharePath(token string) string {
	return "/bon/" + token
}

func address(w *ds.WorkOrder) dto.Address {
	return dto.Address{
		Street:         w.Street,
		HouseNumber:    w.HouseNumber,
		HouseNumberExt: w.HouseNumberExt,
		PostalCode:     w.PostalCode,
		City:           w.City,
	}
}

func Summarize(w *ds.WorkOrder) dto.WorkOrderSummary {
	return dto.WorkOrderSummary{
		ID:             w.ID,
		Number:         w.Number,
		PlanDate:       w.PlanDay(),
		PlanSlot:       w.PlanSlot,
		Status:         w.Status,
		HandlingStatus: w.HandlingStatus,
		Address:        address(w),
		DetailURL:      DetailPath(w.ID),
	}
}

func SummarizeAll(orders []ds.WorkOrder) []dto.WorkOrderSummary {
	out := make([]dto.WorkOrderSummary, 0, len(orders))
	for i := range orders {
		out = append(out, Summarize(&orders[i]))
	}
	return out
}

// Detail renders a session. The form is included only while the
// technician can edit.
func Detail(s *Session) dto.WorkOrderDetail {
	w := s.WorkOrder
	detail := dto.WorkOrderDetail{
		ID:             w.ID,
		Number:         w.Number,
		PlanDate:       w.PlanDay(),
		PlanSlot:       w.PlanSlot,
		Status:         w.Status,
		HandlingStatus: w.HandlingStatus,
		Description:    w.Description,
		Address:        address(w),
		Findings:       w.Findings,
		Advice:         w.Advice,
		JobDone:        w.JobDone,
		FollowUpNeeded: w.FollowUpNeeded,
		Materials:      w.Materials,
		PhotoURLs:      w.PhotoURLs,
		FilledAt:       w.FilledAt,
		CompletedAt:    w.CompletedAt,
		ShareURL:       SharePath(w.ShareToken),
		CanEdit:        s.CanEdit,
	}
	if s.CanEdit && s.Draft != nil {
		detail.Form = &dto.FormState{
			SessionID:      s.Draft.SessionID,
			Findings:       s.Draft.Findings,
			Advice:         s.Draft.Advice,
			JobDone:        s.Draft.JobDone,
			FollowUpNeeded: s.Draft.FollowUpNeeded,
			Materials:      s.Draft.Materials,
			PhotoURLs:      s.Draft.PhotoURLs,
		}
	}
	return detail
}

// Public projects the fields an anonymous reader may see.
func Public(w *ds.WorkOrder) dto.PublicWorkOrder {
	return dto.PublicWorkOrder{
		Number:         w.Number,
		PlanDate:       w.PlanDay(),
		PlanSlot:       w.PlanSlot,
		Description:    w.Description,
		Findings:       w.Findings,
		Advice:         w.Advice,
		JobDone:        w.JobDone,
		FollowUpNeeded: w.FollowUpNeeded,
		Status:         w.Status,
		HandlingStatus: w.HandlingStatus,
	}
}
