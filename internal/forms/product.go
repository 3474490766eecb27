package forms

import (
	"strconv"

	"github.com/dmperov/shopadmin/internal/models"
)

// ProductDraft stages a product for create or edit. Field values are kept as
// entered; parsing happens during validation. For edit flows the draft is
// seeded once from the loaded record and never re-synced afterwards.
type ProductDraft struct {
	lifecycle

	Name         string
	Price        string
	CountInStock string
	Category     string // category id
	Description  string
	IsFeatured   bool
	IsActive     bool

	Images *ImageSet

	errs FieldErrors
}

// NewProductDraft returns an empty draft for a create flow.
func NewProductDraft() *ProductDraft {
	return &ProductDraft{
		IsActive: true,
		Images:   NewImageSet(),
		errs:     FieldErrors{},
	}
}

// ProductDraftFrom seeds a draft from a loaded record for an edit flow.
func ProductDraftFrom(p models.Product) *ProductDraft {
	d := &ProductDraft{
		lifecycle:    lifecycle{state: StateEditing},
		Name:         p.Name,
		Price:        strconv.FormatFloat(p.Price, 'f', -1, 64),
		CountInStock: strconv.Itoa(p.CountInStock),
		Category:     p.Category.ID,
		Description:  p.Description,
		IsFeatured:   p.IsFeatured,
		IsActive:     p.IsActive,
		Images:       NewImageSet(p.Images...),
		errs:         FieldErrors{},
	}
	return d
}

// Setters clear the field's pending error the instant the field is edited.

func (d *ProductDraft) SetName(v string)         { d.Name = v; d.errs.Clear("name"); d.edit() }
func (d *ProductDraft) SetPrice(v string)        { d.Price = v; d.errs.Clear("price"); d.edit() }
func (d *ProductDraft) SetCountInStock(v string) { d.CountInStock = v; d.errs.Clear("countInStock"); d.edit() }
func (d *ProductDraft) SetCategory(v string)     { d.Category = v; d.errs.Clear("category"); d.edit() }
func (d *ProductDraft) SetDescription(v string)  { d.Description = v; d.errs.Clear("description"); d.edit() }
func (d *ProductDraft) SetFeatured(v bool)       { d.IsFeatured = v; d.edit() }
func (d *ProductDraft) SetActive(v bool)         { d.IsActive = v; d.edit() }

// Errors returns the current validation error set.
func (d *ProductDraft) Errors() FieldErrors { return d.errs }

// Validate recomputes the full validation error set: one independent rule per
// field. It is pure and synchronous.
func (d *ProductDraft) Validate() FieldErrors {
	errs := FieldErrors{}

	if trimmed(d.Name) == "" {
		errs["name"] = "Product name is required"
	}
	if price, err := strconv.ParseFloat(d.Price, 64); err != nil || price <= 0 {
		errs["price"] = "Valid price required"
	}
	if d.CountInStock == "" {
		errs["countInStock"] = "Stock is required"
	} else if _, err := strconv.Atoi(d.CountInStock); err != nil {
		errs["countInStock"] = "Stock is required"
	}
	if d.Category == "" {
		errs["category"] = "Category is required"
	}
	if trimmed(d.Description) == "" {
		errs["description"] = "Description is required"
	}
	if d.Images.Total() == 0 {
		errs["images"] = "At least 1 image required"
	}

	d.errs = errs
	return errs
}

// BeginSubmit validates the draft and locks the form. When the error set is
// non-empty it returns ErrInvalid and no request must be issued.
func (d *ProductDraft) BeginSubmit() error {
	if err := d.beginSubmit(); err != nil {
		return err
	}
	if !d.Validate().Empty() {
		d.endSubmit()
		return ErrInvalid
	}
	return nil
}

// EndSubmit unlocks the form after the request resolves.
func (d *ProductDraft) EndSubmit() { d.endSubmit() }

// Reset returns the draft to the create-form defaults, discarding field
// edits, pending errors, and any staged images.
func (d *ProductDraft) Reset() {
	*d = *NewProductDraft()
}

// Payload flattens the draft into the multipart field set the product
// endpoints accept.
type ProductPayload struct {
	Fields       map[string]string
	NewImages    []PendingImage
	DeleteImages []string
}

func (d *ProductDraft) Payload() ProductPayload {
	return ProductPayload{
		Fields: map[string]string{
			"name":         d.Name,
			"price":        d.Price,
			"countInStock": d.CountInStock,
			"category":     d.Category,
			"description":  d.Description,
			"isFeatured":   strconv.FormatBool(d.IsFeatured),
			"isActive":     strconv.FormatBool(d.IsActive),
		},
		NewImages:    d.Images.Pending(),
		DeleteImages: d.Images.Deleted(),
	}
}
