package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"werkbon/internal/app/ds"
)

// Drafts is an in-memory draft store with a per-work-order lock.
type Drafts struct {
	mu     sync.Mutex
	drafts map[string][]byte
	locks  map[string]bool
	Err    error
}

func NewDrafts() *Drafts {
	return &Drafts{drafts: map[string][]byte{}, locks: map[string]bool{}}
}

func draftKey(technicianID, workOrderID string) string {
	return technicianID + ":" + workOrderID
}

// Drafts are stored encoded so callers never share memory with the store.
func (d *Drafts) LoadDraft(_ context.Context, technicianID, workOrderID string) (*ds.Draft, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return nil, d.Err
	}
	raw, ok := d.drafts[draftKey(technicianID, workOrderID)]
	if !ok {
		return nil, nil
	}
	var draft ds.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (d *Drafts) SaveDraft(_ context.Context, technicianID string, draft *ds.Draft) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	d.drafts[draftKey(technicianID, draft.WorkOrderID)] = raw
	return nil
}

func (d *Drafts) DeleteDraft(_ context.Context, technicianID, workOrderID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	delete(d.drafts, draftKey(technicianID, workOrderID))
	return nil
}

func (d *Drafts) TryLock(_ context.Context, workOrderID string) (func(), bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return nil, false, d.Err
	}
	if d.locks[workOrderID] {
		return nil, false, nil
	}
	d.locks[workOrderID] = true
	return func() {
		d.mu.Lock()
		delete(d.locks, workOrderID)
		d.mu.Unlock()
	}, true, nil
}

// Locked reports whether the work order lock is held.
func (d *Drafts) Locked(workOrderID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locks[workOrderID]
}

// Objects is an in-memory object storage.
type Objects struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Paths   []string

	// FailOn makes the n-th Put (1-based) fail.
	FailOn int
	// OnPut runs before every Put.
	OnPut func(objectPath string)
	puts  int
}

func NewObjects() *Objects {
	return &Objects{Objects: map[string][]byte{}}
}

var ErrUploadFailed = errors.New("upload failed")

func (o *Objects) Put(_ context.Context, objectPath string, data []byte) error {
	if o.OnPut != nil {
		o.OnPut(objectPath)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.puts++
	if o.FailOn > 0 && o.puts == o.FailOn {
		return ErrUploadFailed
	}
	o.Objects[objectPath] = append([]byte(nil), data...)
	o.Paths = append(o.Paths, objectPath)
	return nil
}

func (o *Objects) PublicURL(objectPath string) string {
	return fmt.Sprintf("http://objects.test/photos/%s", objectPath)
}
