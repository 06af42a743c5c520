//go:build unit

package merchant_test

import (
	"strings"
	"testing"

	"discover-api/internal/domain/merchant"
	"discover-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchant(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		m, err := builder.NewMerchantBuilder().WithName("  Kopi Kenangan ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Kopi Kenangan", m.Name())
		assert.Equal(t, int64(10), m.LogoID())
	})

	cases := []struct {
		name   string
		mutate func(*builder.MerchantBuilder)
		errIs  error
	}{
		{name: "name at limit OK", mutate: func(b *builder.MerchantBuilder) { b.Name = strings.Repeat("m", merchant.MaxNameLength) }},
		{name: "empty name NG", mutate: func(b *builder.MerchantBuilder) { b.Name = "" }, errIs: merchant.ErrEmptyName},
		{name: "blank name NG", mutate: func(b *builder.MerchantBuilder) { b.Name = "   " }, errIs: merchant.ErrEmptyName},
		{name: "long name NG", mutate: func(b *builder.MerchantBuilder) { b.Name = strings.Repeat("m", merchant.MaxNameLength+1) }, errIs: merchant.ErrNameTooLong},
		{name: "missing logo NG", mutate: func(b *builder.MerchantBuilder) { b.LogoID = 0 }, errIs: merchant.ErrInvalidLogo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewMerchantBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("rename validates both fields before changing either", func(t *testing.T) {
		m := merchant.Reconstruct(1, "Old", 10)
		assert.ErrorIs(t, m.Rename("New", 0), merchant.ErrInvalidLogo)
		assert.Equal(t, "Old", m.Name())

		require.NoError(t, m.Rename("New", 20))
		assert.Equal(t, "New", m.Name())
		assert.Equal(t, int64(20), m.LogoID())
		assert.Equal(t, int64(1), m.ID())
	})
}
