package workorder

import (
	"context"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/repository"
)

// FormPatch changes the form fields that are set; nil fields stay as they are.
type FormPatch struct {
	Findings       *string
	Advice         *string
	JobDone        *bool
	FollowUpNeeded *bool
}

// UpdateForm changes the draft only. Nothing is persisted until Save or Complete.
func (s *Service) UpdateForm(ctx context.Context, tech *ds.Technician, id string, patch FormPatch) (*Session, error) {
	return s.edit(ctx, tech, id, func(_ *ds.WorkOrder, d *ds.Draft) (draftAction, error) {
		if patch.Findings != nil {
			d.Findings = *patch.Findings
		}
		if patch.Advice != nil {
			d.Advice = *patch.Advice
		}
		if patch.JobDone != nil {
			d.JobDone = *patch.JobDone
		}
		if patch.FollowUpNeeded != nil {
			d.FollowUpNeeded = *patch.FollowUpNeeded
		}
		return draftSave, nil
	})
}

// Save persists the draft into the work order. The status is not changed.
func (s *Service) Save(ctx context.Context, tech *ds.Technician, id string) (*Session, error) {
	return s.edit(ctx, tech, id, func(w *ds.WorkOrder, d *ds.Draft) (draftAction, error) {
		upd := s.payload(tech, d)
		if err := s.store.UpdateWorkOrder(ctx, w.ID, upd); err != nil {
			return draftKeep, backend("save work order", err)
		}
		upd.Apply(w)
		return draftKeep, nil
	})
}

// Complete persists the draft and marks the work order completed. The draft
// is dropped, which closes the session.
func (s *Service) Complete(ctx context.Context, tech *ds.Technician, id string) (*Session, error) {
	return s.edit(ctx, tech, id, func(w *ds.WorkOrder, d *ds.Draft) (draftAction, error) {
		upd := s.payload(tech, d)
		completedAt := upd.FilledAt
		upd.Status = ds.StatusCompleted
		upd.CompletedAt = &completedAt
		if err := s.store.UpdateWorkOrder(ctx, w.ID, upd); err != nil {
			return draftKeep, backend("complete work order", err)
		}
		upd.Apply(w)
		return draftDrop, nil
	})
}

func (s *Service) payload(tech *ds.Technician, d *ds.Draft) repository.WorkOrderUpdate {
	return repository.WorkOrderUpdate{
		Findings:             nullIfEmpty(d.Findings),
		Advice:               nullIfEmpty(d.Advice),
		JobDone:              d.JobDone,
		FollowUpNeeded:       d.FollowUpNeeded,
		Materials:            d.Materials,
		PhotoURLs:            d.PhotoURLs,
		HandlingStatus:       DeriveHandlingStatus(d.JobDone, d.FollowUpNeeded),
		FilledByTechnicianID: tech.ID,
		FilledAt:             s.now(),
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
