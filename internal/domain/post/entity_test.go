//go:build unit

package post_test

import (
	"strings"
	"testing"

	"discover-api/internal/domain/post"
	"discover-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		p, err := builder.NewPostBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.MerchantID())
		assert.Equal(t, int64(11), p.MediaID())
		require.NotNil(t, p.Title())
		assert.Equal(t, "New seasonal menu", *p.Title())
		assert.Equal(t, builder.FixedTime, p.DatePosted())
		assert.Equal(t, []int64{200}, p.ItemIDs())
	})

	t.Run("blank title is stored as no title", func(t *testing.T) {
		p, err := builder.NewPostBuilder().With(func(b *builder.PostBuilder) {
			blank := "   "
			b.Title = &blank
		}).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, p.Title())
	})

	t.Run("nil items become an empty list", func(t *testing.T) {
		p, err := builder.NewPostBuilder().WithItems().BuildDomain()
		require.NoError(t, err)
		assert.NotNil(t, p.ItemIDs())
		assert.Empty(t, p.ItemIDs())
	})

	t.Run("item order and duplicates are preserved", func(t *testing.T) {
		p, err := builder.NewPostBuilder().WithItems(3, 1, 3).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1, 3}, p.ItemIDs())
	})

	cases := []struct {
		name   string
		mutate func(*builder.PostBuilder)
		errIs  error
	}{
		{name: "no title OK", mutate: func(b *builder.PostBuilder) { b.Title = nil }},
		{name: "title at limit OK", mutate: func(b *builder.PostBuilder) { s := strings.Repeat("t", post.MaxTitleLength); b.Title = &s }},
		{name: "long title NG", mutate: func(b *builder.PostBuilder) { s := strings.Repeat("t", post.MaxTitleLength+1); b.Title = &s }, errIs: post.ErrTitleTooLong},
		{name: "missing media NG", mutate: func(b *builder.PostBuilder) { b.MediaID = 0 }, errIs: post.ErrInvalidMedia},
		{name: "missing merchant NG", mutate: func(b *builder.PostBuilder) { b.MerchantID = 0 }, errIs: post.ErrInvalidMerchant},
		{name: "non-positive item NG", mutate: func(b *builder.PostBuilder) { b.ItemIDs = []int64{1, 0} }, errIs: post.ErrInvalidItemID},
		{name: "too many items NG", mutate: func(b *builder.PostBuilder) { b.ItemIDs = make([]int64, post.MaxItems+1) }, errIs: post.ErrTooManyItems},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPostBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("replace keeps owner and date", func(t *testing.T) {
		p := post.Reconstruct(5, 1, 11, nil, builder.FixedTime, []int64{1})
		title := "Updated"
		require.NoError(t, p.Replace(12, &title, []int64{2, 3}))
		assert.Equal(t, int64(1), p.MerchantID())
		assert.Equal(t, builder.FixedTime, p.DatePosted())
		assert.Equal(t, int64(12), p.MediaID())
		assert.Equal(t, []int64{2, 3}, p.ItemIDs())
	})

	t.Run("ItemIDs returns a copy", func(t *testing.T) {
		p, err := builder.NewPostBuilder().WithItems(1, 2).BuildDomain()
		require.NoError(t, err)
		ids := p.ItemIDs()
		ids[0] = 99
		assert.Equal(t, []int64{1, 2}, p.ItemIDs())
	})
}
