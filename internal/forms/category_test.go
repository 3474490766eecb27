package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmperov/shopadmin/internal/models"
)

func TestCategoryDraft_NameRules(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "empty name", value: "", wantErr: "Category name is required"},
		{name: "single character", value: "A", wantErr: "Minimum 2 characters required"},
		{name: "valid", value: "Pens", wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewCategoryDraft()
			d.SetName(tt.value)
			d.SetDescription("writing tools")

			errs := d.Validate()
			if tt.wantErr == "" {
				assert.True(t, errs.Empty())
			} else {
				assert.Equal(t, tt.wantErr, errs["name"])
			}
		})
	}
}

func TestCategoryDraft_DescriptionRequired(t *testing.T) {
	d := NewCategoryDraft()
	d.SetName("Pens")

	errs := d.Validate()
	assert.Equal(t, "Description is required", errs["description"])
}

func TestCategoryDraft_EditClearsError(t *testing.T) {
	d := NewCategoryDraft()
	d.Validate()
	require.True(t, d.Errors().Has("name"))

	d.SetName("Pens")
	assert.False(t, d.Errors().Has("name"))
	// Untouched fields keep their errors until the next full validation.
	assert.True(t, d.Errors().Has("description"))
}

func TestCategoryDraft_SeedAndPayload(t *testing.T) {
	d := CategoryDraftFrom(models.Category{ID: "c1", Name: "Pens", Description: "writing tools"})
	assert.Equal(t, StateEditing, d.State())

	require.NoError(t, d.BeginSubmit())
	assert.Equal(t, map[string]string{"name": "Pens", "description": "writing tools"}, d.Payload())
	d.EndSubmit()
}

func TestCategoryDraft_InvalidSubmitUnlocks(t *testing.T) {
	d := NewCategoryDraft()
	assert.ErrorIs(t, d.BeginSubmit(), ErrInvalid)
	assert.NotEqual(t, StateSubmitting, d.State())
}
