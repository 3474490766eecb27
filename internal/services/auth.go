package services

import (
	"context"
	"fmt"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/models"
)

// AuthService authenticates against the store API. Session persistence is the
// caller's concern; this service only performs the exchange.
type AuthService interface {
	Login(ctx context.Context, email, password string) (Credentials, error)
}

// Credentials is the successful login payload: the bearer token and the
// authenticated user record.
type Credentials struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type authService struct {
	client *api.Client
}

func NewAuthService(client *api.Client) AuthService {
	return &authService{client: client}
}

func (s *authService) Login(ctx context.Context, email, password string) (Credentials, error) {
	creds, err := api.PostJSON[Credentials](ctx, s.client, "/api/auth/login",
		map[string]string{"email": email, "password": password})
	if err != nil {
		return Credentials{}, fmt.Errorf("login: %w", err)
	}
	return creds, nil
}
