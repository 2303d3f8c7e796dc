package repository

import (
	"context"
	"errors"
	"strings"

	"werkbon/internal/app/ds"

	"gorm.io/gorm"
)

// ListActiveCatalogItems returns active items ordered by name. A non-empty query
// filters on name or catalog number, case-insensitively.
func (r *Repository) ListActiveCatalogItems(ctx context.Context, query string) ([]ds.CatalogItem, error) {
	q := r.db.WithContext(ctx).Where("active = ?", true)

	query = strings.TrimSpace(query)
	if query != "" {
		like := containsPattern(query)
		q = q.Where("name ILIKE ? OR catalog_number ILIKE ?", like, like)
	}

	var items []ds.CatalogItem
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern matches query literally anywhere in the column. Backslash is
// the default LIKE escape character in postgres.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// FindActiveCatalogItem returns nil when the item does not exist or is inactive.
func (r *Repository) FindActiveCatalogItem(ctx context.Context, id string) (*ds.CatalogItem, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var item ds.CatalogItem
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CatalogItemMatches is the in-memory form of the catalog search filter.
func CatalogItemMatches(item ds.CatalogItem, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Name), query) {
		return true
	}
	return item.CatalogNumber != nil && strings.Contains(strings.ToLower(*item.CatalogNumber), query)
}

func (r *Repository) CreateCatalogItem(ctx context.Context, item *ds.CatalogItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
