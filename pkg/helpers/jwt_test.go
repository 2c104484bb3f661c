package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/elearning-api/internal/domain/entity"
)

func TestGenerateAndParseToken(t *testing.T) {
	m := NewJWTManager("test-secret-key", 24*time.Hour)

	token, exp, err := m.GenerateToken("user-123", entity.RoleInstructor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, entity.RoleInstructor, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, _, err := issuer.GenerateToken("user-123", entity.RoleLearner)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret-key", -time.Minute)

	token, _, err := m.GenerateToken("user-123", entity.RoleLearner)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsMalformed(t *testing.T) {
	m := NewJWTManager("test-secret-key", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "truncated", token: "aaa.bbb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ParseToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	m := NewJWTManager("test-secret-key", time.Hour)

	token, _, err := m.GenerateToken("user-123", entity.RoleLearner)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.ParseToken(tampered)
	assert.Error(t, err)
}
