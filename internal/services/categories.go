package services

import (
	"context"
	"fmt"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/models"
)

// CategoryService exposes the category CRUD surface. Categories carry no
// binary attachments, so payloads are plain JSON.
type CategoryService interface {
	List(ctx context.Context, params ListParams) (Page[models.Category], error)
	Create(ctx context.Context, payload map[string]string) (models.Category, error)
	Update(ctx context.Context, id string, payload map[string]string) (models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	client *api.Client
}

func NewCategoryService(client *api.Client) CategoryService {
	return &categoryService{client: client}
}

type categoryListData struct {
	Categories []models.Category `json:"categories"`
}

func (s *categoryService) List(ctx context.Context, params ListParams) (Page[models.Category], error) {
	data, err := api.Get[categoryListData](ctx, s.client, "/api/categories", params.query())
	if err != nil {
		return Page[models.Category]{}, fmt.Errorf("list categories: %w", err)
	}
	return Page[models.Category]{Items: data.Categories}, nil
}

func (s *categoryService) Create(ctx context.Context, payload map[string]string) (models.Category, error) {
	c, err := api.PostJSON[models.Category](ctx, s.client, "/api/categories", payload)
	if err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id string, payload map[string]string) (models.Category, error) {
	c, err := api.PutJSON[models.Category](ctx, s.client, "/api/categories/"+id, payload)
	if err != nil {
		return models.Category{}, fmt.Errorf("update category %s: %w", id, err)
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/categories/"+id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}
