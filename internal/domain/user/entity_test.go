//go:build unit

package user_test

import (
	"testing"

	"dungji-market/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("buyer@example.com")
	require.NoError(t, err)

	t.Run("creates active user with generated id", func(t *testing.T) {
		u, err := user.NewUser(email, "dungji-buyer", "hashed", user.RoleBuyer)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.LastLogin())
		assert.Equal(t, user.RoleBuyer, u.Role())
		assert.False(t, u.IsSeller())
	})

	t.Run("rejects empty nickname", func(t *testing.T) {
		_, err := user.NewUser(email, "", "hashed", user.RoleBuyer)
		require.ErrorIs(t, err, user.ErrEmptyNickname)
	})
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "seller@dungji.kr"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "sellerdungji.kr", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "seller@dungji", errIs: user.ErrInvalidEmail},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := user.NewEmail(c.input)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"buyer", "seller", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("operator")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}
