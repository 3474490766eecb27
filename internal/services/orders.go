package services

import (
	"context"
	"fmt"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/models"
)

// OrderService exposes the admin order operations. Orders are created by the
// storefront checkout, never here, so there is no create or delete.
type OrderService interface {
	List(ctx context.Context, params ListParams) (Page[models.Order], error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	UpdateTracking(ctx context.Context, id string, payload map[string]string) error
}

type orderService struct {
	client *api.Client
}

func NewOrderService(client *api.Client) OrderService {
	return &orderService{client: client}
}

type orderListData struct {
	Orders []models.Order `json:"orders"`
	Total  int            `json:"totalOrders"`
	Page   int            `json:"page"`
}

func (s *orderService) List(ctx context.Context, params ListParams) (Page[models.Order], error) {
	data, err := api.Get[orderListData](ctx, s.client, "/api/admin/orders", params.query())
	if err != nil {
		return Page[models.Order]{}, fmt.Errorf("list orders: %w", err)
	}
	return Page[models.Order]{Items: data.Orders, Total: data.Total, Page: data.Page}, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown order status %q", status)
	}
	_, err := api.PutJSON[struct{}](ctx, s.client, "/api/admin/orders/"+id+"/status",
		map[string]string{"status": string(status)})
	if err != nil {
		return fmt.Errorf("update order %s status: %w", id, err)
	}
	return nil
}

func (s *orderService) UpdateTracking(ctx context.Context, id string, payload map[string]string) error {
	_, err := api.PutJSON[struct{}](ctx, s.client, "/api/admin/orders/"+id+"/tracking", payload)
	if err != nil {
		return fmt.Errorf("update order %s tracking: %w", id, err)
	}
	return nil
}
