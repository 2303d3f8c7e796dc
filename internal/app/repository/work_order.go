package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"werkbon/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var orderableColumns = map[string]bool{
	ColumnPlanDate:  true,
	ColumnPlanSlot:  true,
	ColumnCreatedAt: true,
}

func (r *Repository) workOrderQuery(ctx context.Context, f WorkOrderFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&ds.WorkOrder{})

	if f.ID != "" {
		q = q.Where("id = ?", f.ID)
	}
	if f.ExcludeID != "" {
		q = q.Where("id <> ?", f.ExcludeID)
	}
	if f.ShareToken != "" {
		q = q.Where("share_token = ?", f.ShareToken)
	}
	if f.TechnicianID != "" {
		q = q.Where("technician_id = ?", f.TechnicianID)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where("status IN ?", statuses)
	}
	if f.PlanDateFrom != "" {
		q = q.Where("plan_date >= ?", f.PlanDateFrom)
	}
	if f.PlanDateTo != "" {
		q = q.Where("plan_date <= ?", f.PlanDateTo)
	}
	if f.PostalCode != "" {
		q = q.Where("postal_code = ?", f.PostalCode)
	}
	if f.HouseNumber != "" {
		q = q.Where("house_number = ?", f.HouseNumber)
	}
	if f.Numbers != nil {
		if len(f.Numbers) == 0 {
			q = q.Where("1 = 0")
		} else {
			q = q.Where("number IN ?", f.Numbers)
		}
	}
	return q
}

// FindWorkOrder returns the single matching work order, or nil when none matches.
func (r *Repository) FindWorkOrder(ctx context.Context, f WorkOrderFilter) (*ds.WorkOrder, error) {
	if f.ID != "" && !isUUID(f.ID) {
		return nil, nil
	}
	var order ds.WorkOrder
	err := r.workOrderQuery(ctx, f).Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindWorkOrders(ctx context.Context, f WorkOrderFilter, orderBy ...OrderBy) ([]ds.WorkOrder, error) {
	q := r.workOrderQuery(ctx, f)
	for _, o := range orderBy {
		clause, err := orderClause(o)
		if err != nil {
			return nil, err
		}
		q = q.Order(clause)
	}

	var orders []ds.WorkOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// isUUID guards uuid columns; postgres rejects malformed ids with an error
// instead of matching nothing.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func orderClause(o OrderBy) (string, error) {
	if !orderableColumns[o.Column] {
		return "", fmt.Errorf("cannot order work orders by %q", o.Column)
	}
	var b strings.Builder
	b.WriteString(o.Column)
	if o.Desc {
		b.WriteString(" DESC")
	} else {
		b.WriteString(" ASC")
	}
	if o.NullsFirst {
		b.WriteString(" NULLS FIRST")
	}
	return b.String(), nil
}

func (r *Repository) UpdateWorkOrder(ctx context.Context, id string, upd WorkOrderUpdate) error {
	result := r.db.WithContext(ctx).
		Model(&ds.WorkOrder{}).
		Where("id = ?", id).
		Updates(upd.Columns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("work order %s was not updated", id)
	}
	return nil
}
