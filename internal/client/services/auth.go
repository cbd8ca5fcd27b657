package services

import (
	"context"
	"fmt"

	"github.com/smartuniversity/campusctl/internal/client/api"
	"github.com/smartuniversity/campusctl/internal/client/models"
)

// AuthService authenticates against the auth backend. Both calls return the
// issued bearer token on success; establishing the session from that token
// is the caller's job.
type AuthService interface {
	Login(ctx context.Context, username, password, tenant string) (string, error)
	Register(ctx context.Context, username, password, tenant string, role models.Role) (string, error)
}

type authService struct {
	api *api.Client
}

func NewAuthService(client *api.Client) AuthService {
	return &authService{api: client}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TenantID string `json:"tenantId"`
	Role     string `json:"role,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (a *authService) Login(ctx context.Context, username, password, tenant string) (string, error) {
	var resp tokenResponse
	req := credentialsRequest{Username: username, Password: password, TenantID: tenant}
	if err := a.api.Post(ctx, "/auth/login", req, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return resp.Token, nil
}

func (a *authService) Register(ctx context.Context, username, password, tenant string, role models.Role) (string, error) {
	var resp tokenResponse
	req := credentialsRequest{Username: username, Password: password, TenantID: tenant, Role: string(role)}
	if err := a.api.Post(ctx, "/auth/register", req, &resp); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return resp.Token, nil
}
