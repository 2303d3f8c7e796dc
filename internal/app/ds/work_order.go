package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkOrderStatus string

const (
	StatusScheduled WorkOrderStatus = "scheduled"
	StatusCompleted WorkOrderStatus = "completed"
)

type HandlingStatus string

const (
	HandlingToProcess        HandlingStatus = "to_process"
	HandlingFollowUpRequired HandlingStatus = "followup_required"
)

// DateLayout is the calendar-date format used for plan dates on the wire and in queries.
const DateLayout = "2006-01-02"

// WorkOrder is a scheduled field-service task (werkbon) assigned to one technician.
type WorkOrder struct {
	ID           string          `gorm:"type:uuid;primaryKey"`
	Number       string          `gorm:"type:varchar(32);not null;index"` // W226/0001
	ShareToken   string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	PlanDate     time.Time       `gorm:"type:date;not null;index"`
	PlanSlot     *string         `gorm:"type:varchar(50)"` // free-form time block
	Status       WorkOrderStatus `gorm:"type:varchar(20);not null;default:'scheduled';index"`
	TechnicianID string          `gorm:"type:uuid;not null;index"`
	Description  string          `gorm:"type:text"`

	// Service address
	Street         string `gorm:"type:varchar(100)"`
	HouseNumber    string `gorm:"type:varchar(20);index:idx_work_orders_address"`
	HouseNumberExt string `gorm:"type:varchar(20)"`
	PostalCode     string `gorm:"type:varchar(10);index:idx_work_orders_address"`
	City           string `gorm:"type:varchar(100)"`

	// Filled in on site
	Findings       *string         `gorm:"type:text"`
	Advice         *string         `gorm:"type:text"`
	JobDone        bool            `gorm:"not null;default:false"`
	FollowUpNeeded bool            `gorm:"not null;default:false"`
	Materials      MaterialList    `gorm:"type:jsonb;not null;default:'[]'"`
	PhotoURLs      PhotoList       `gorm:"column:photo_urls;type:jsonb;not null;default:'[]'"`
	HandlingStatus *HandlingStatus `gorm:"type:varchar(30)"`

	FilledByTechnicianID *string    `gorm:"type:uuid"`
	FilledAt             *time.Time `gorm:"default:null"`
	CompletedAt          *time.Time `gorm:"default:null"`
	CreatedAt            time.Time  `gorm:"not null"`

	Technician *Technician `gorm:"foreignKey:TechnicianID"`
}

func (w *WorkOrder) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.ShareToken == "" {
		w.ShareToken = uuid.NewString()
	}
	return nil
}

// PlanDay returns the plan date as YYYY-MM-DD.
func (w *WorkOrder) PlanDay() string {
	return w.PlanDate.Format(DateLayout)
}
