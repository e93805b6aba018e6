package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub/config"
	"fitclub/internal/domain/entity"
)

func jwtTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(jwtTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokens, err := NewJWTService(jwtTestConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	signed, err := tokens.GenerateAccessToken(userID, entity.RoleReceptionist)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	svc, ok := tokens.(*jwtService)
	require.True(t, ok)

	parsed, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, entity.RoleReceptionist.String(), claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(jwtTestConfig("issuer-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(jwtTestConfig("other-secret"))
	require.NoError(t, err)

	signed, err := issuer.GenerateAccessToken(uuid.New(), entity.RoleClient)
	require.NoError(t, err)

	_, err = verifier.(*jwtService).ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	tokens, err := NewJWTService(jwtTestConfig("test-secret"))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": uuid.New().String()})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.(*jwtService).ValidateToken(raw)
	assert.Error(t, err)
}
