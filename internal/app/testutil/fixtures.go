package testutil

import (
	"time"

	"werkbon/internal/app/ds"
)

const (
	TechnicianID      = "7d3f2b9e-1c4a-4f0e-9a51-2b6c8d0e4f11"
	OtherTechnicianID = "0a9b8c7d-6e5f-4a3b-8c2d-1e0f9a8b7c6d"
	UserID            = "c2f1e0d9-8b7a-4c6d-9e5f-4a3b2c1d0e9f"
)

func Technician() *ds.Technician {
	return &ds.Technician{ID: TechnicianID, UserID: UserID, Name: "Jan de Vries"}
}

func OtherTechnician() *ds.Technician {
	return &ds.Technician{ID: OtherTechnicianID, Name: "Piet Bakker"}
}

// Date parses YYYY-MM-DD and panics on bad input.
func Date(day string) time.Time {
	t, err := time.Parse(ds.DateLayout, day)
	if err != nil {
		panic(err)
	}
	return t
}

// WorkOrder returns a scheduled work order of the default technician.
func WorkOrder(id, number, planDate string) ds.WorkOrder {
	return ds.WorkOrder{
		ID:           id,
		Number:       number,
		ShareToken:   "token-" + id,
		PlanDate:     Date(planDate),
		Status:       ds.StatusScheduled,
		TechnicianID: TechnicianID,
		Description:  "CV-ketel onderhoud",
		Street:       "Kerkstraat",
		HouseNumber:  "12",
		PostalCode:   "1234AB",
		City:         "Utrecht",
		Materials:    ds.MaterialList{},
		PhotoURLs:    ds.PhotoList{},
		CreatedAt:    Date(planDate).Add(-24 * time.Hour),
	}
}

func StringPtr(s string) *string { return &s }

func FloatPtr(f float64) *float64 { return &f }
