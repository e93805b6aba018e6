package service

import (
	"github.com/google/uuid"

	"fitclub/internal/domain/entity"
)

// TokenService issues access tokens for authenticated users.
type TokenService interface {
	// GenerateAccessToken creates a signed token carrying the user id and role.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)
}
