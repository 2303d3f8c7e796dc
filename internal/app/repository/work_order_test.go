package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"werkbon/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRepo connects to TEST_DATABASE_DSN and migrates into a clean schema.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	repo := NewWithDB(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Exec("DELETE FROM work_orders")
	db.Exec("DELETE FROM catalog_items")
	db.Exec("DELETE FROM technicians")
	db.Exec("DELETE FROM users")

	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func seedWorkOrder(t *testing.T, repo *Repository, w *ds.WorkOrder) {
	t.Helper()
	if err := repo.db.Create(w).Error; err != nil {
		t.Fatalf("seed work order: %v", err)
	}
}

func seedTechnician(t *testing.T, repo *Repository, email string) *ds.Technician {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), email, "x")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	tech := &ds.Technician{UserID: user.ID, Name: "Monteur"}
	if err := repo.db.Create(tech).Error; err != nil {
		t.Fatalf("create technician: %v", err)
	}
	return tech
}

func TestRepositoryPlanningQuery(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	tech := seedTechnician(t, repo, "monteur@example.com")

	slotB := "13:00-17:00"
	slotA := "08:00-12:00"
	day := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	seedWorkOrder(t, repo, &ds.WorkOrder{Number: "W226/0003", PlanDate: day, PlanSlot: &slotB, TechnicianID: tech.ID, Status: ds.StatusScheduled})
	seedWorkOrder(t, repo, &ds.WorkOrder{Number: "W226/0002", PlanDate: day, PlanSlot: &slotA, TechnicianID: tech.ID, Status: ds.StatusCompleted})
	seedWorkOrder(t, repo, &ds.WorkOrder{Number: "W226/0001", PlanDate: day, TechnicianID: tech.ID, Status: ds.StatusScheduled})
	seedWorkOrder(t, repo, &ds.WorkOrder{Number: "W226/0004", PlanDate: day.AddDate(0, 0, 10), TechnicianID: tech.ID, Status: ds.StatusScheduled})

	orders, err := repo.FindWorkOrders(ctx, WorkOrderFilter{
		TechnicianID: tech.ID,
		Statuses:     []ds.WorkOrderStatus{ds.StatusScheduled, ds.StatusCompleted},
		PlanDateFrom: "2026-10-19",
		PlanDateTo:   "2026-10-23",
	},
		OrderBy{Column: ColumnPlanDate},
		OrderBy{Column: ColumnPlanSlot, NullsFirst: true},
		OrderBy{Column: ColumnCreatedAt},
	)
	if err != nil {
		t.Fatalf("FindWorkOrders: %v", err)
	}

	want := []string{"W226/0001", "W226/0002", "W226/0003"}
	if len(orders) != len(want) {
		t.Fatalf("expected %d orders, got %d", len(want), len(orders))
	}
	for i, w := range want {
		if orders[i].Number != w {
			t.Errorf("position %d: expected %s, got %s", i, w, orders[i].Number)
		}
		if orders[i].Materials == nil || orders[i].PhotoURLs == nil {
			t.Errorf("lists must be normalized on read")
		}
	}
}

func TestRepositoryUpdateAndToken(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	tech := seedTechnician(t, repo, "monteur@example.com")

	w := &ds.WorkOrder{Number: "W226/0001", PlanDate: time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), TechnicianID: tech.ID, Status: ds.StatusScheduled}
	seedWorkOrder(t, repo, w)

	now := time.Now().UTC()
	err := repo.UpdateWorkOrder(ctx, w.ID, WorkOrderUpdate{
		JobDone:              true,
		Materials:            ds.MaterialList{{CatalogItemID: "c1", Name: "Kraan", Quantity: 2}},
		PhotoURLs:            ds.PhotoList{"http://x/1.jpg"},
		HandlingStatus:       ds.HandlingToProcess,
		FilledByTechnicianID: w.TechnicianID,
		FilledAt:             now,
	})
	if err != nil {
		t.Fatalf("UpdateWorkOrder: %v", err)
	}

	got, err := repo.FindWorkOrder(ctx, WorkOrderFilter{ShareToken: w.ShareToken})
	if err != nil || got == nil {
		t.Fatalf("FindWorkOrder by token: %v %v", got, err)
	}
	if !got.JobDone || len(got.Materials) != 1 || got.Materials[0].Quantity != 2 {
		t.Errorf("update not persisted: %+v", got)
	}

	missing, err := repo.FindWorkOrder(ctx, WorkOrderFilter{ShareToken: "does-not-exist"})
	if err != nil || missing != nil {
		t.Errorf("expected nil, nil for unknown token, got %v %v", missing, err)
	}
}
