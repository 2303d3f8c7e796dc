package redis

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"werkbon/internal/app/config"
	"werkbon/internal/app/ds"
)

// newTestClient connects to TEST_REDIS_HOST:TEST_REDIS_PORT or skips.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	host, port := os.Getenv("TEST_REDIS_HOST"), os.Getenv("TEST_REDIS_PORT")
	if host == "" || port == "" {
		t.Skip("TEST_REDIS_HOST/TEST_REDIS_PORT not set")
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		t.Fatalf("bad TEST_REDIS_PORT: %v", err)
	}
	c, err := New(context.Background(),
		config.RedisConfig{Host: host, Port: p, DialTimeout: time.Second, ReadTimeout: time.Second},
		config.DraftsConfig{TTL: time.Minute, LockTTL: 10 * time.Second},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestKeys(t *testing.T) {
	if got := draftKey("t1", "w1"); got != "werkbon.draft.t1.w1" {
		t.Errorf("draftKey = %q", got)
	}
	if got := lockKey("w1"); got != "werkbon.lock.w1" {
		t.Errorf("lockKey = %q", got)
	}
	if got := getJWTKey("abc"); got != "werkbon.jwt.abc" {
		t.Errorf("getJWTKey = %q", got)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	workOrderID := "wo-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	if d, err := c.LoadDraft(ctx, "tech", workOrderID); err != nil || d != nil {
		t.Fatalf("missing draft: %v %v", d, err)
	}

	draft := &ds.Draft{SessionID: "s1", WorkOrderID: workOrderID, Findings: "lek", Materials: ds.MaterialList{{Name: "Pomp", Quantity: 2}}}
	if err := c.SaveDraft(ctx, "tech", draft); err != nil {
		t.Fatal(err)
	}
	got, err := c.LoadDraft(ctx, "tech", workOrderID)
	if err != nil || got == nil || got.Findings != "lek" || got.Materials[0].Quantity != 2 {
		t.Fatalf("LoadDraft = %+v, %v", got, err)
	}

	if err := c.DeleteDraft(ctx, "tech", workOrderID); err != nil {
		t.Fatal(err)
	}
	if d, _ := c.LoadDraft(ctx, "tech", workOrderID); d != nil {
		t.Errorf("draft not deleted")
	}
}

func TestTryLock(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	workOrderID := "wo-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	unlock, ok, err := c.TryLock(ctx, workOrderID)
	if err != nil || !ok {
		t.Fatalf("first lock: %v %v", ok, err)
	}
	if _, ok, _ := c.TryLock(ctx, workOrderID); ok {
		t.Errorf("second lock must fail while held")
	}
	unlock()
	unlock2, ok, err := c.TryLock(ctx, workOrderID)
	if err != nil || !ok {
		t.Fatalf("lock after unlock: %v %v", ok, err)
	}
	unlock2()
}
