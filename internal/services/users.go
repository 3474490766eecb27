package services

import (
	"context"
	"fmt"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/models"
)

// UserService exposes the admin user operations: a server-paginated listing
// and the block/unblock toggle.
type UserService interface {
	List(ctx context.Context, params ListParams) (Page[models.User], error)
	ToggleBlock(ctx context.Context, id string) (BlockResult, error)
}

// BlockResult is the acknowledged state after a block toggle.
type BlockResult struct {
	UserID    string `json:"userId"`
	IsBlocked bool   `json:"isBlocked"`
}

type userService struct {
	client *api.Client
}

func NewUserService(client *api.Client) UserService {
	return &userService{client: client}
}

type userListData struct {
	Users []models.User `json:"users"`
	Total int           `json:"totalUsers"`
	Page  int           `json:"page"`
}

func (s *userService) List(ctx context.Context, params ListParams) (Page[models.User], error) {
	data, err := api.Get[userListData](ctx, s.client, "/api/admin/users", params.query())
	if err != nil {
		return Page[models.User]{}, fmt.Errorf("list users: %w", err)
	}
	return Page[models.User]{Items: data.Users, Total: data.Total, Page: data.Page}, nil
}

func (s *userService) ToggleBlock(ctx context.Context, id string) (BlockResult, error) {
	res, err := api.PutJSON[BlockResult](ctx, s.client, "/api/admin/users/"+id+"/block", nil)
	if err != nil {
		return BlockResult{}, fmt.Errorf("toggle block for user %s: %w", id, err)
	}
	return res, nil
}
