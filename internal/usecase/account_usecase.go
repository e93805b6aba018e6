package usecase

import (
	"context"

	"github.com/google/uuid"

	"fitclub/internal/domain/entity"
)

// LoginOutput carries the issued token and the authenticated identity.
type LoginOutput struct {
	AccessToken string      `json:"access_token"`
	UserID      uuid.UUID   `json:"user_id"`
	Role        entity.Role `json:"role"`
}

// AccountUsecase covers authentication and account removal.
type AccountUsecase interface {
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	// DeleteClient removes a client account after password confirmation,
	// cascading over dependent records in one transaction.
	DeleteClient(ctx context.Context, clientID uuid.UUID, password string) error
}
