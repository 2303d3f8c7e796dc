package ds

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogItem is reference data for materials. Only active items are offered for selection.
type CatalogItem struct {
	ID            string   `gorm:"type:uuid;primaryKey"`
	Name          string   `gorm:"type:varchar(200);not null"`
	CatalogNumber *string  `gorm:"type:varchar(50)"`
	Unit          *string  `gorm:"type:varchar(20)"`
	Price         *float64 `gorm:"type:decimal(10,2)"`
	Active        bool     `gorm:"not null;default:true;index"`
}

func (c *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Snapshot captures the item as a material line with the given quantity.
func (c *CatalogItem) Snapshot(quantity int) MaterialLine {
	return MaterialLine{
		CatalogItemID: c.ID,
		Name:          c.Name,
		CatalogNumber: c.CatalogNumber,
		Unit:          c.Unit,
		UnitPrice:     c.Price,
		Quantity:      quantity,
	}
}
