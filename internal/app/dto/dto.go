package dto

import (
	"fmt"
	"strconv"
	"time"

	"werkbon/internal/app/ds"
)

// ============ Common ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Auth ============

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	TechnicianID   string `json:"technician_id,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ============ Planning ============

type PlanningDay struct {
	Label      string             `json:"label"`
	Date       string             `json:"date"` // YYYY-MM-DD
	WorkOrders []WorkOrderSummary `json:"work_orders"`
}

type PlanningResponse struct {
	View   string        `json:"view"`
	Offset int           `json:"offset"`
	Start  string        `json:"start"`
	End    string        `json:"end"`
	Days   []PlanningDay `json:"days"`
}

// ============ Work orders ============

type Address struct {
	Street         string `json:"street"`
	HouseNumber    string `json:"house_number"`
	HouseNumberExt string `json:"house_number_ext"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
}

type WorkOrderSummary struct {
	ID             string             `json:"id"`
	Number         string             `json:"number"`
	PlanDate       string             `json:"plan_date"`
	PlanSlot       *string            `json:"plan_slot"`
	Status         ds.WorkOrderStatus `json:"status"`
	HandlingStatus *ds.HandlingStatus `json:"handling_status"`
	Address        Address            `json:"address"`
	DetailURL      string             `json:"detail_url"`
}

// FormState is the form as the technician is filling it in.
type FormState struct {
	SessionID      string          `json:"session_id"`
	Findings       string          `json:"findings"`
	Advice         string          `json:"advice"`
	JobDone        bool            `json:"job_done"`
	FollowUpNeeded bool            `json:"follow_up_needed"`
	Materials      ds.MaterialList `json:"materials"`
	PhotoURLs      ds.PhotoList    `json:"photo_urls"`
}

type WorkOrderDetail struct {
	ID             string             `json:"id"`
	Number         string             `json:"number"`
	PlanDate       string             `json:"plan_date"`
	PlanSlot       *string            `json:"plan_slot"`
	Status         ds.WorkOrderStatus `json:"status"`
	HandlingStatus *ds.HandlingStatus `json:"handling_status"`
	Description    string             `json:"description"`
	Address        Address            `json:"address"`
	Findings       *string            `json:"findings"`
	Advice         *string            `json:"advice"`
	JobDone        bool               `json:"job_done"`
	FollowUpNeeded bool               `json:"follow_up_needed"`
	Materials      ds.MaterialList    `json:"materials"`
	PhotoURLs      ds.PhotoList       `json:"photo_urls"`
	FilledAt       *time.Time         `json:"filled_at"`
	CompletedAt    *time.Time         `json:"completed_at"`
	ShareURL       string             `json:"share_url"`
	CanEdit        bool               `json:"can_edit"`
	Form           *FormState         `json:"form,omitempty"`
}

// PublicWorkOrder is what an anonymous holder of the share link may see.
type PublicWorkOrder struct {
	Number         string             `json:"number"`
	PlanDate       string             `json:"plan_date"`
	PlanSlot       *string            `json:"plan_slot"`
	Description    string             `json:"description"`
	Findings       *string            `json:"findings"`
	Advice         *string            `json:"advice"`
	JobDone        bool               `json:"job_done"`
	FollowUpNeeded bool               `json:"follow_up_needed"`
	Status         ds.WorkOrderStatus `json:"status"`
	HandlingStatus *ds.HandlingStatus `json:"handling_status"`
}

type UpdateFormRequest struct {
	Findings       *string `json:"findings"`
	Advice         *string `json:"advice"`
	JobDone        *bool   `json:"job_done"`
	FollowUpNeeded *bool   `json:"follow_up_needed"`
}

type AddMaterialRequest struct {
	CatalogItemID string      `json:"catalog_item_id"`
	Quantity      interface{} `json:"quantity"` // number or free text, coerced to a positive whole number
}

// QuantityText renders the quantity as typed.
func (r AddMaterialRequest) QuantityText() string {
	switch v := r.Quantity.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// ============ History ============

type HistoryResponse struct {
	Context    string             `json:"context"`
	Notice     string             `json:"notice,omitempty"`
	WorkOrders []WorkOrderSummary `json:"work_orders"`
}

// ============ Catalog ============

type CatalogItemResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CatalogNumber *string  `json:"catalog_number"`
	Unit          *string  `json:"unit"`
	Price         *float64 `json:"price"`
}

type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Total int                   `json:"total"`
}
