package workorder

import (
	"context"
	"time"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/repository"

	"github.com/google/uuid"
)

// Store is the record store for work orders.
type Store interface {
	FindWorkOrder(ctx context.Context, f repository.WorkOrderFilter) (*ds.WorkOrder, error)
	FindWorkOrders(ctx context.Context, f repository.WorkOrderFilter, orderBy ...repository.OrderBy) ([]ds.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, id string, upd repository.WorkOrderUpdate) error
}

// Catalog resolves selectable (active) catalog items; nil means not selectable.
type Catalog interface {
	FindActiveCatalogItem(ctx context.Context, id string) (*ds.CatalogItem, error)
}

type ObjectStorage interface {
	Put(ctx context.Context, objectPath string, data []byte) error
	PublicURL(objectPath string) string
}

// DraftStore keeps the form state of open work orders and the per-work-order
// lock that serializes mutating requests.
type DraftStore interface {
	LoadDraft(ctx context.Context, technicianID, workOrderID string) (*ds.Draft, error)
	SaveDraft(ctx context.Context, technicianID string, draft *ds.Draft) error
	DeleteDraft(ctx context.Context, technicianID, workOrderID string) error
	TryLock(ctx context.Context, workOrderID string) (unlock func(), ok bool, err error)
}

type Service struct {
	store   Store
	catalog Catalog
	objects ObjectStorage
	drafts  DraftStore
	now     func() time.Time
	newID   func() string
}

func NewService(store Store, catalog Catalog, objects ObjectStorage, drafts DraftStore) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		objects: objects,
		drafts:  drafts,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Session is an opened work order as seen by one technician. Draft is nil
// when the technician may not edit the work order.
type Session struct {
	WorkOrder *ds.WorkOrder
	Draft     *ds.Draft
	CanEdit   bool
}

func (s *Service) load(ctx context.Context, id string) (*ds.WorkOrder, error) {
	w, err := s.store.FindWorkOrder(ctx, repository.WorkOrderFilter{ID: id})
	if err != nil {
		return nil, backend("load work order", err)
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return w, nil
}

// Open loads a work order for viewing. For its owning technician a fresh
// draft is seeded from the stored record, replacing any earlier one.
func (s *Service) Open(ctx context.Context, tech *ds.Technician, id string) (*Session, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session := &Session{WorkOrder: w, CanEdit: CanEdit(w, tech)}
	if !session.CanEdit {
		return session, nil
	}

	draft := ds.NewDraft(s.newID(), w)
	if err := s.drafts.SaveDraft(ctx, tech.ID, draft); err != nil {
		return nil, backend("save draft", err)
	}
	session.Draft = draft
	return session, nil
}

// Get returns the current session without resetting the draft.
func (s *Service) Get(ctx context.Context, tech *ds.Technician, id string) (*Session, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	session := &Session{WorkOrder: w, CanEdit: CanEdit(w, tech)}
	if !session.CanEdit {
		return session, nil
	}
	draft, err := s.currentDraft(ctx, tech, w)
	if err != nil {
		return nil, err
	}
	session.Draft = draft
	return session, nil
}

// Close drops the draft. Results of requests still running for the closed
// session are discarded.
func (s *Service) Close(ctx context.Context, tech *ds.Technician, id string) error {
	if tech == nil {
		return nil
	}
	if err := s.drafts.DeleteDraft(ctx, tech.ID, id); err != nil {
		return backend("delete draft", err)
	}
	return nil
}

func (s *Service) currentDraft(ctx context.Context, tech *ds.Technician, w *ds.WorkOrder) (*ds.Draft, error) {
	draft, err := s.drafts.LoadDraft(ctx, tech.ID, w.ID)
	if err != nil {
		return nil, backend("load draft", err)
	}
	if draft != nil {
		return draft, nil
	}
	draft = ds.NewDraft(s.newID(), w)
	if err := s.drafts.SaveDraft(ctx, tech.ID, draft); err != nil {
		return nil, backend("save draft", err)
	}
	return draft, nil
}

type draftAction int

const (
	draftKeep draftAction = iota
	draftSave
	draftDrop
)

// edit runs fn on the draft of an editable work order while holding the
// work order's lock. fn tells what to do with the draft afterwards. A changed
// draft is written back even when fn fails. If the session was closed while
// fn ran, the result is discarded and ErrSessionClosed returned.
func (s *Service) edit(ctx context.Context, tech *ds.Technician, id string, fn func(w *ds.WorkOrder, d *ds.Draft) (draftAction, error)) (*Session, error) {
	unlock, ok, err := s.drafts.TryLock(ctx, id)
	if err != nil {
		return nil, backend("lock work order", err)
	}
	if !ok {
		return nil, ErrBusy
	}
	defer unlock()

	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanEdit(w, tech) {
		return nil, ErrForbidden
	}

	draft, err := s.currentDraft(ctx, tech, w)
	if err != nil {
		return nil, err
	}

	action, fnErr := fn(w, draft)

	current, err := s.drafts.LoadDraft(ctx, tech.ID, id)
	if err != nil {
		return nil, backend("load draft", err)
	}
	if current == nil || current.SessionID != draft.SessionID {
		return nil, ErrSessionClosed
	}

	session := &Session{WorkOrder: w, Draft: draft, CanEdit: CanEdit(w, tech)}
	switch action {
	case draftSave:
		if err := s.drafts.SaveDraft(ctx, tech.ID, draft); err != nil {
			return nil, backend("save draft", err)
		}
	case draftDrop:
		if err := s.drafts.DeleteDraft(ctx, tech.ID, id); err != nil {
			return nil, backend("delete draft", err)
		}
		session.Draft = nil
	}
	return session, fnErr
}
