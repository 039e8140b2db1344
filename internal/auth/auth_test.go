package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
)

func TestAuthenticate(t *testing.T) {
	t.Run("valid credentials return stored user", func(t *testing.T) {
		user, ok := Authenticate("manager", "manager123")
		require.True(t, ok)
		assert.Equal(t, model.RoleFleetManager, user.Role)
		assert.Equal(t, "Fleet Manager", user.Name)
		assert.Equal(t, "manager@fleet.com", user.Email)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, ok := Authenticate("admin", "nope")
		assert.False(t, ok)
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		_, ok := Authenticate("ghost", "admin123")
		assert.False(t, ok)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	parser := NewParser("test-secret")

	user := model.StoredUser{
		ID:       "3",
		Username: "driver",
		Role:     model.RoleDriver,
		Name:     "Driver User",
		Email:    "driver@fleet.com",
	}

	raw, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := parser.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "3", claims.Subject)
	assert.Equal(t, "driver", claims.Username)
	assert.Equal(t, model.RoleDriver, claims.Role)
	assert.Equal(t, "Driver User", claims.Name)
}

func TestParseRejectsBadTokens(t *testing.T) {
	parser := NewParser("test-secret")

	t.Run("garbage", func(t *testing.T) {
		_, err := parser.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewIssuer("other-secret", time.Hour)
		raw, err := other.Issue(model.StoredUser{ID: "1", Role: model.RoleAdmin})
		require.NoError(t, err)

		_, err = parser.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewIssuer("test-secret", -time.Minute)
		raw, err := expired.Issue(model.StoredUser{ID: "1", Role: model.RoleAdmin})
		require.NoError(t, err)

		_, err = parser.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
