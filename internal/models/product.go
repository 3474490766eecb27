// Package models holds the client-side representations of the records owned
// by the store API. The API is the source of truth; these types are transient
// copies decoded from response payloads and are never cached between views.
package models

import (
	"bytes"
	"encoding/json"
)

// CategoryRef is a product's category reference. Depending on the endpoint the
// API returns either the bare category id or the joined category object, so
// decoding accepts both shapes.
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = CategoryRef{ID: id}
		return nil
	}
	type ref CategoryRef
	var v ref
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = CategoryRef(v)
	return nil
}

// DisplayName returns the joined category name, or "-" when the endpoint
// returned a bare id.
func (r CategoryRef) DisplayName() string {
	if r.Name == "" {
		return "-"
	}
	return r.Name
}

type Product struct {
	ID           string      `json:"_id"`
	Name         string      `json:"name"`
	Price        float64     `json:"price"`
	CountInStock int         `json:"countInStock"`
	Category     CategoryRef `json:"category"`
	Description  string      `json:"description"`
	Images       []string    `json:"images"`
	IsFeatured   bool        `json:"isFeatured"`
	IsActive     bool        `json:"isActive"`
}

// FirstImage returns the first persisted image name, or "" when the product
// has none.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
