package workorder

import (
	"context"
	"strings"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/repository"
)

// LookupContext names a historical lookup.
type LookupContext string

const (
	LookupAddressHistory LookupContext = "address_history"
	LookupPredecessors   LookupContext = "predecessors"
)

const NoticeNoPredecessorCandidates = "Geen eerdere bonnen gevonden op basis van nummer."

// History is the result of a lookup. Notice is informational and set when
// no query was made at all.
type History struct {
	Context    LookupContext
	Notice     string
	WorkOrders []ds.WorkOrder
}

var newestFirst = repository.OrderBy{Column: repository.ColumnPlanDate, Desc: true}

// Related resolves the lookup named by lookup for the work order id.
func (s *Service) Related(ctx context.Context, id string, lookup LookupContext) (*History, error) {
	switch lookup {
	case LookupAddressHistory:
		w, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.AddressHistory(ctx, w)
	case LookupPredecessors:
		w, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.Predecessors(ctx, w)
	default:
		return nil, ErrUnknownLookup
	}
}

// AddressHistory lists other work orders at the same postal code and house
// number, newest first.
func (s *Service) AddressHistory(ctx context.Context, w *ds.WorkOrder) (*History, error) {
	postalCode := strings.TrimSpace(w.PostalCode)
	houseNumber := strings.TrimSpace(w.HouseNumber)
	if postalCode == "" || houseNumber == "" {
		return nil, ErrMissingAddress
	}

	orders, err := s.store.FindWorkOrders(ctx, repository.WorkOrderFilter{
		PostalCode:  postalCode,
		HouseNumber: houseNumber,
		ExcludeID:   w.ID,
	}, newestFirst)
	if err != nil {
		return nil, backend("load address history", err)
	}
	return &History{Context: LookupAddressHistory, WorkOrders: nonNil(orders)}, nil
}

// Predecessors lists the work orders whose numbers precede w's number in
// steps of 100, newest first.
func (s *Service) Predecessors(ctx context.Context, w *ds.WorkOrder) (*History, error) {
	numbers := PredecessorNumbers(w.Number)
	if len(numbers) == 0 {
		return &History{
			Context:    LookupPredecessors,
			Notice:     NoticeNoPredecessorCandidates,
			WorkOrders: []ds.WorkOrder{},
		}, nil
	}

	orders, err := s.store.FindWorkOrders(ctx, repository.WorkOrderFilter{Numbers: numbers}, newestFirst)
	if err != nil {
		return nil, backend("load predecessors", err)
	}
	return &History{Context: LookupPredecessors, WorkOrders: nonNil(orders)}, nil
}

func nonNil(orders []ds.WorkOrder) []ds.WorkOrder {
	if orders == nil {
		return []ds.WorkOrder{}
	}
	return orders
}
