package service

import (
	"context"

	"linedori-web/models"
)

// AuthServiceInterface defines the contract for authentication
type AuthServiceInterface interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	RegisterAdmin(ctx context.Context, req models.RegisterRequest, caller *models.User) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}
