package workorder

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"werkbon/internal/app/ds"
)

// MaxQuantity caps a material line's quantity.
const MaxQuantity = math.MaxInt32

// CoerceQuantity turns free input into a positive whole quantity. Anything
// that is not a finite number above zero becomes 1; fractions are truncated
// and values above MaxQuantity are capped.
func CoerceQuantity(raw string) int {
	q, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return 1
	}
	if q >= MaxQuantity {
		return MaxQuantity
	}
	n := int(math.Trunc(q))
	if n < 1 {
		return 1
	}
	return n
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func SanitizeFilename(name string) string {
	if name == "" {
		return "foto"
	}
	return unsafeFilename.ReplaceAllString(name, "_")
}

// AddMaterial appends a snapshot of an active catalog item to the draft.
func (s *Service) AddMaterial(ctx context.Context, tech *ds.Technician, id, catalogItemID, quantity string) (*Session, error) {
	catalogItemID = strings.TrimSpace(catalogItemID)
	if catalogItemID == "" {
		return nil, ErrNoCatalogItem
	}
	return s.edit(ctx, tech, id, func(_ *ds.WorkOrder, d *ds.Draft) (draftAction, error) {
		item, err := s.catalog.FindActiveCatalogItem(ctx, catalogItemID)
		if err != nil {
			return draftKeep, backend("load catalog item", err)
		}
		if item == nil {
			return draftKeep, ErrUnknownCatalogItem
		}
		d.Materials = append(d.Materials, item.Snapshot(CoerceQuantity(quantity)))
		return draftSave, nil
	})
}

// RemoveMaterial drops the material line at index; an index out of range is ignored.
func (s *Service) RemoveMaterial(ctx context.Context, tech *ds.Technician, id string, index int) (*Session, error) {
	return s.edit(ctx, tech, id, func(_ *ds.WorkOrder, d *ds.Draft) (draftAction, error) {
		if index < 0 || index >= len(d.Materials) {
			return draftKeep, nil
		}
		d.Materials = append(append(ds.MaterialList{}, d.Materials[:index]...), d.Materials[index+1:]...)
		return draftSave, nil
	})
}

// RemovePhoto drops the photo URL at index; an index out of range is ignored.
// The stored object is left in place.
func (s *Service) RemovePhoto(ctx context.Context, tech *ds.Technician, id string, index int) (*Session, error) {
	return s.edit(ctx, tech, id, func(_ *ds.WorkOrder, d *ds.Draft) (draftAction, error) {
		if index < 0 || index >= len(d.PhotoURLs) {
			return draftKeep, nil
		}
		d.PhotoURLs = append(append(ds.PhotoList{}, d.PhotoURLs[:index]...), d.PhotoURLs[index+1:]...)
		return draftSave, nil
	})
}

type PhotoUpload struct {
	Filename string
	Data     []byte
}

// ObjectPath is where a photo of a work order is stored.
func ObjectPath(workOrderID string, unixNano int64, filename string) string {
	return fmt.Sprintf("%s/%d_%s", workOrderID, unixNano, SanitizeFilename(filename))
}

// AddPhotos uploads the batch one file at a time. The first failing upload
// stops the batch; URLs of files uploaded before it stay in the draft.
func (s *Service) AddPhotos(ctx context.Context, tech *ds.Technician, id string, uploads []PhotoUpload) (*Session, error) {
	return s.edit(ctx, tech, id, func(w *ds.WorkOrder, d *ds.Draft) (draftAction, error) {
		action := draftKeep
		for _, u := range uploads {
			path := ObjectPath(w.ID, s.now().UnixNano(), u.Filename)
			if err := s.objects.Put(ctx, path, u.Data); err != nil {
				return action, backend("upload photo", err)
			}
			d.PhotoURLs = append(d.PhotoURLs, s.objects.PublicURL(path))
			action = draftSave
		}
		return action, nil
	})
}
