package ds

import (
	"database/sql/driver"
	"encoding/json"
)

// MaterialLine is a snapshot of a catalog item taken when it was added to a work order.
// Later catalog edits do not change it.
type MaterialLine struct {
	CatalogItemID string   `json:"catalog_item_id"`
	Name          string   `json:"name"`
	CatalogNumber *string  `json:"catalog_number"`
	Unit          *string  `json:"unit"`
	UnitPrice     *float64 `json:"unit_price"`
	Quantity      int      `json:"quantity"`
}

// MaterialList is stored as a jsonb array. Anything else read from the
// database is treated as an empty list.
type MaterialList []MaterialLine

func (l *MaterialList) Scan(src interface{}) error {
	*l = DecodeMaterialList(src)
	return nil
}

func (l MaterialList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]MaterialLine(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l MaterialList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]MaterialLine(l))
}

// PhotoList is an ordered list of retrievable photo URLs, stored as a jsonb array.
type PhotoList []string

func (l *PhotoList) Scan(src interface{}) error {
	*l = DecodePhotoList(src)
	return nil
}

func (l PhotoList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l PhotoList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func DecodeMaterialList(src interface{}) MaterialList {
	return MaterialList(decodeList[MaterialLine](src))
}

func DecodePhotoList(src interface{}) PhotoList {
	return PhotoList(decodeList[string](src))
}

// decodeList accepts a JSON array, or a JSON string holding a serialized array.
// Every other shape yields an empty, non-nil list.
func decodeList[T any](src interface{}) []T {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return []T{}
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err == nil {
		if out == nil {
			return []T{}
		}
		return out
	}

	var serialized string
	if err := json.Unmarshal(raw, &serialized); err != nil {
		return []T{}
	}
	out = nil
	if err := json.Unmarshal([]byte(serialized), &out); err != nil || out == nil {
		return []T{}
	}
	return out
}
