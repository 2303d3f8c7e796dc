package workorder

import (
	"context"
	"strings"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/repository"
)

// PublicView finds the work order behind a share link.
func (s *Service) PublicView(ctx context.Context, token string) (*ds.WorkOrder, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrLinkInvalid
	}
	w, err := s.store.FindWorkOrder(ctx, repository.WorkOrderFilter{ShareToken: token})
	if err != nil {
		return nil, backend("load shared work order", err)
	}
	if w == nil {
		return nil, ErrLinkInvalid
	}
	return w, nil
}
