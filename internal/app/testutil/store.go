package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/repository"
)

// Store is an in-memory work-order store.
type Store struct {
	mu      sync.Mutex
	orders  map[string]*ds.WorkOrder
	Err     error // returned by every call when set
	Updates []repository.WorkOrderUpdate
}

func NewStore(orders ...ds.WorkOrder) *Store {
	s := &Store{orders: map[string]*ds.WorkOrder{}}
	for _, w := range orders {
		s.Put(w)
	}
	return s
}

// Put adds or replaces a work order.
func (s *Store) Put(w ds.WorkOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := w
	s.orders[w.ID] = &cp
}

// Get returns a copy of the stored work order.
func (s *Store) Get(id string) (ds.WorkOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.orders[id]
	if !ok {
		return ds.WorkOrder{}, false
	}
	return *w, true
}

func (s *Store) FindWorkOrder(_ context.Context, f repository.WorkOrderFilter) (*ds.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, w := range s.sorted() {
		if f.Matches(w) {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) FindWorkOrders(_ context.Context, f repository.WorkOrderFilter, orderBy ...repository.OrderBy) ([]ds.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []ds.WorkOrder{}
	for _, w := range s.sorted() {
		if f.Matches(w) {
			out = append(out, *w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		for _, o := range orderBy {
			c := compare(&out[i], &out[j], o)
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out, nil
}

func (s *Store) UpdateWorkOrder(_ context.Context, id string, upd repository.WorkOrderUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	w, ok := s.orders[id]
	if !ok {
		return errors.New("work order not found")
	}
	upd.Apply(w)
	s.Updates = append(s.Updates, upd)
	return nil
}

// sorted returns the records in id order so lookups are deterministic.
func (s *Store) sorted() []*ds.WorkOrder {
	out := make([]*ds.WorkOrder, 0, len(s.orders))
	for _, w := range s.orders {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func compare(a, b *ds.WorkOrder, o repository.OrderBy) int {
	var c int
	switch o.Column {
	case repository.ColumnPlanDate:
		c = compareStrings(a.PlanDay(), b.PlanDay())
	case repository.ColumnCreatedAt:
		c = a.CreatedAt.Compare(b.CreatedAt)
	case repository.ColumnPlanSlot:
		switch {
		case a.PlanSlot == nil && b.PlanSlot == nil:
			return 0
		case a.PlanSlot == nil:
			if o.NullsFirst {
				return -1
			}
			return 1
		case b.PlanSlot == nil:
			if o.NullsFirst {
				return 1
			}
			return -1
		}
		c = compareStrings(*a.PlanSlot, *b.PlanSlot)
	}
	if o.Desc {
		return -c
	}
	return c
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Catalog is an in-memory catalog.
type Catalog struct {
	Items []ds.CatalogItem
	Err   error
}

func (c *Catalog) FindActiveCatalogItem(_ context.Context, id string) (*ds.CatalogItem, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	for i := range c.Items {
		if c.Items[i].ID == id && c.Items[i].Active {
			item := c.Items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (c *Catalog) ListActiveCatalogItems(_ context.Context, query string) ([]ds.CatalogItem, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	out := []ds.CatalogItem{}
	for _, item := range c.Items {
		if item.Active && repository.CatalogItemMatches(item, query) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var ErrNotFound = errors.New("record not found")
