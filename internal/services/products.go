package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/forms"
	"github.com/dmperov/shopadmin/internal/models"
)

// ProductService exposes the product CRUD surface. Create and Update send
// multipart bodies because products carry binary image attachments.
type ProductService interface {
	List(ctx context.Context, params ListParams) (Page[models.Product], error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, payload forms.ProductPayload) (models.Product, error)
	Update(ctx context.Context, id string, payload forms.ProductPayload) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	client *api.Client
}

func NewProductService(client *api.Client) ProductService {
	return &productService{client: client}
}

type productListData struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"totalProducts"`
	Page     int              `json:"page"`
}

func (s *productService) List(ctx context.Context, params ListParams) (Page[models.Product], error) {
	data, err := api.Get[productListData](ctx, s.client, "/api/products", params.query())
	if err != nil {
		return Page[models.Product]{}, fmt.Errorf("list products: %w", err)
	}
	return Page[models.Product]{Items: data.Products, Total: data.Total, Page: data.Page}, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (models.Product, error) {
	p, err := api.Get[models.Product](ctx, s.client, "/api/products/"+id, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

func (s *productService) Create(ctx context.Context, payload forms.ProductPayload) (models.Product, error) {
	p, err := api.PostForm[models.Product](ctx, s.client, "/api/products", productForm(payload))
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, id string, payload forms.ProductPayload) (models.Product, error) {
	p, err := api.PutForm[models.Product](ctx, s.client, "/api/products/"+id, productForm(payload))
	if err != nil {
		return models.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/products/"+id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// productForm serializes the draft payload: plain fields, repeated binary
// "images" parts for pending uploads, and a JSON-encoded "deleteImages" list.
// Untouched persisted images are not re-sent; the server keeps them by omission.
func productForm(payload forms.ProductPayload) *api.FormBody {
	form := api.NewFormBody()
	for _, name := range []string{"name", "price", "countInStock", "category", "description", "isFeatured", "isActive"} {
		form.AddField(name, payload.Fields[name])
	}
	for _, img := range payload.NewImages {
		form.AddFile("images", img.Name, img.Data)
	}
	if len(payload.DeleteImages) > 0 {
		deleted, _ := json.Marshal(payload.DeleteImages)
		form.AddField("deleteImages", string(deleted))
	}
	return form
}
