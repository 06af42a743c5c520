//go:build unit

package user_test

import (
	"strings"
	"testing"

	"discover-api/internal/domain/user"
	"discover-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Alex", u.Name())
		require.NotNil(t, u.ProfileID())
		assert.Equal(t, int64(13), *u.ProfileID())
	})

	t.Run("profile is optional", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithoutProfile().BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, u.ProfileID())
	})

	cases := []struct {
		name   string
		mutate func(*builder.UserBuilder)
		errIs  error
	}{
		{name: "empty name NG", mutate: func(b *builder.UserBuilder) { b.Name = " " }, errIs: user.ErrEmptyName},
		{name: "long name NG", mutate: func(b *builder.UserBuilder) { b.Name = strings.Repeat("u", user.MaxNameLength+1) }, errIs: user.ErrNameTooLong},
		{name: "zero profile NG", mutate: func(b *builder.UserBuilder) { zero := int64(0); b.ProfileID = &zero }, errIs: user.ErrInvalidProfile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
