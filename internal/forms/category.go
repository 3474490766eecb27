package forms

import (
	"strings"

	"github.com/dmperov/shopadmin/internal/models"
)

func trimmed(s string) string { return strings.TrimSpace(s) }

// CategoryDraft stages a category for the inline create/edit modal flow.
type CategoryDraft struct {
	lifecycle

	Name        string
	Description string

	errs FieldErrors
}

func NewCategoryDraft() *CategoryDraft {
	return &CategoryDraft{errs: FieldErrors{}}
}

func CategoryDraftFrom(c models.Category) *CategoryDraft {
	return &CategoryDraft{
		lifecycle:   lifecycle{state: StateEditing},
		Name:        c.Name,
		Description: c.Description,
		errs:        FieldErrors{},
	}
}

func (d *CategoryDraft) SetName(v string)        { d.Name = v; d.errs.Clear("name"); d.edit() }
func (d *CategoryDraft) SetDescription(v string) { d.Description = v; d.errs.Clear("description"); d.edit() }

func (d *CategoryDraft) Errors() FieldErrors { return d.errs }

func (d *CategoryDraft) Validate() FieldErrors {
	errs := FieldErrors{}

	if trimmed(d.Name) == "" {
		errs["name"] = "Category name is required"
	} else if len(d.Name) < 2 {
		errs["name"] = "Minimum 2 characters required"
	}
	if trimmed(d.Description) == "" {
		errs["description"] = "Description is required"
	}

	d.errs = errs
	return errs
}

func (d *CategoryDraft) BeginSubmit() error {
	if err := d.beginSubmit(); err != nil {
		return err
	}
	if !d.Validate().Empty() {
		d.endSubmit()
		return ErrInvalid
	}
	return nil
}

func (d *CategoryDraft) EndSubmit() { d.endSubmit() }

// Payload is the JSON body for the category endpoints.
func (d *CategoryDraft) Payload() map[string]string {
	return map[string]string{
		"name":        d.Name,
		"description": d.Description,
	}
}
