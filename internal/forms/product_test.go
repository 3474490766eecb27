package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmperov/shopadmin/internal/models"
)

func validProductDraft(t *testing.T) *ProductDraft {
	t.Helper()
	d := NewProductDraft()
	d.SetName("Pen")
	d.SetPrice("10")
	d.SetCountInStock("5")
	d.SetCategory("cat1")
	d.SetDescription("blue pen")
	require.NoError(t, d.Images.AddFiles(PendingImage{Name: "pen.jpg", Data: []byte("x")}))
	return d
}

func TestProductDraft_ValidateFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductDraft)
		field   string
		message string
	}{
		{name: "empty name", mutate: func(d *ProductDraft) { d.SetName("  ") }, field: "name", message: "Product name is required"},
		{name: "zero price", mutate: func(d *ProductDraft) { d.SetPrice("0") }, field: "price", message: "Valid price required"},
		{name: "negative price", mutate: func(d *ProductDraft) { d.SetPrice("-5") }, field: "price", message: "Valid price required"},
		{name: "junk price", mutate: func(d *ProductDraft) { d.SetPrice("abc") }, field: "price", message: "Valid price required"},
		{name: "empty stock", mutate: func(d *ProductDraft) { d.SetCountInStock("") }, field: "countInStock", message: "Stock is required"},
		{name: "junk stock", mutate: func(d *ProductDraft) { d.SetCountInStock("many") }, field: "countInStock", message: "Stock is required"},
		{name: "no category", mutate: func(d *ProductDraft) { d.SetCategory("") }, field: "category", message: "Category is required"},
		{name: "empty description", mutate: func(d *ProductDraft) { d.SetDescription("") }, field: "description", message: "Description is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validProductDraft(t)
			tt.mutate(d)

			errs := d.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestProductDraft_ZeroImagesIsExactlyOneError(t *testing.T) {
	// name="Pen", price=10, countInStock=5, category set, description set,
	// zero images: the only error key must be "images".
	d := NewProductDraft()
	d.SetName("Pen")
	d.SetPrice("10")
	d.SetCountInStock("5")
	d.SetCategory("cat1")
	d.SetDescription("blue pen")

	errs := d.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "At least 1 image required", errs["images"])

	err := d.BeginSubmit()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, StateEditing, d.State())
}

func TestProductDraft_DeletingEveryImageFailsValidation(t *testing.T) {
	p := models.Product{
		ID: "p1", Name: "Pen", Price: 10, CountInStock: 5,
		Category: models.CategoryRef{ID: "cat1"}, Description: "blue pen",
		Images: []string{"a.jpg"},
	}
	d := ProductDraftFrom(p)
	require.True(t, d.Images.RemoveExisting("a.jpg"))

	errs := d.Validate()
	assert.Equal(t, "At least 1 image required", errs["images"])
}

func TestProductDraft_EditClearsFieldError(t *testing.T) {
	d := validProductDraft(t)
	d.SetName("")

	errs := d.Validate()
	require.True(t, errs.Has("name"))

	d.SetName("Pen")
	assert.False(t, d.Errors().Has("name"))
}

func TestProductDraft_SubmitLifecycle(t *testing.T) {
	d := validProductDraft(t)

	require.NoError(t, d.BeginSubmit())
	assert.Equal(t, StateSubmitting, d.State())

	// A second submit while in flight is rejected.
	assert.ErrorIs(t, d.BeginSubmit(), ErrSubmitInFlight)

	d.EndSubmit()
	assert.Equal(t, StateEditing, d.State())
	require.NoError(t, d.BeginSubmit())
}

func TestProductDraft_ResetRestoresDefaults(t *testing.T) {
	d := validProductDraft(t)
	d.SetActive(false)
	d.SetPrice("oops")
	assert.False(t, d.Validate().Empty())

	d.Reset()

	assert.Equal(t, StateEmpty, d.State())
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Price)
	assert.Empty(t, d.Category)
	assert.True(t, d.IsActive)
	assert.False(t, d.IsFeatured)
	assert.Zero(t, d.Images.Total())
	assert.True(t, d.Errors().Empty())
}

func TestProductDraft_SeedFromRecord(t *testing.T) {
	p := models.Product{
		ID: "p1", Name: "Pen", Price: 10.5, CountInStock: 5,
		Category:    models.CategoryRef{ID: "cat1", Name: "Stationery"},
		Description: "blue pen", Images: []string{"a.jpg", "b.jpg"},
		IsFeatured: true, IsActive: false,
	}

	d := ProductDraftFrom(p)
	assert.Equal(t, StateEditing, d.State())
	assert.Equal(t, "10.5", d.Price)
	assert.Equal(t, "5", d.CountInStock)
	assert.Equal(t, "cat1", d.Category)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, d.Images.Existing())
	assert.True(t, d.IsFeatured)
	assert.False(t, d.IsActive)
	assert.True(t, d.Validate().Empty())
}

func TestProductDraft_Payload(t *testing.T) {
	d := validProductDraft(t)
	d.SetFeatured(true)

	p := d.Payload()
	assert.Equal(t, "Pen", p.Fields["name"])
	assert.Equal(t, "10", p.Fields["price"])
	assert.Equal(t, "5", p.Fields["countInStock"])
	assert.Equal(t, "cat1", p.Fields["category"])
	assert.Equal(t, "true", p.Fields["isFeatured"])
	assert.Equal(t, "true", p.Fields["isActive"])
	require.Len(t, p.NewImages, 1)
	assert.Empty(t, p.DeleteImages)
}
