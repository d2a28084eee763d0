package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fleet-service/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestParserParse(t *testing.T) {
	parser := NewParser(testSecret)
	userID := uuid.New()
	driverID := uuid.New()

	raw := signToken(t, Claims{
		UserID:   userID,
		Role:     model.RoleDriver,
		DriverID: &driverID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	claims, err := parser.Parse(raw)

	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, model.RoleDriver, claims.Role)
	assert.NotNil(t, claims.DriverID)
	assert.Equal(t, driverID, *claims.DriverID)
}

func TestParserParseRejects(t *testing.T) {
	parser := NewParser(testSecret)
	userID := uuid.New()

	validClaims := Claims{
		UserID: userID,
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "wrong secret",
			raw:  signToken(t, validClaims, "other-secret"),
		},
		{
			name: "expired token",
			raw: signToken(t, Claims{
				UserID: userID,
				Role:   model.RoleAdmin,
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				},
			}, testSecret),
		},
		{
			name: "missing user id",
			raw: signToken(t, Claims{
				Role: model.RoleAdmin,
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}, testSecret),
		},
		{
			name: "missing role",
			raw: signToken(t, Claims{
				UserID: userID,
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}, testSecret),
		},
		{
			name: "garbage",
			raw:  "not-a-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
