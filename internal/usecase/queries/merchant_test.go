//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"discover-api/internal/domain/feed"
	"discover-api/internal/usecase/queries"
	"discover-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var logoView = &queries.MediaRecordView{ID: 10, StorageID: logoUUID, Name: "logo.png", MimeType: "image/png"}

func TestMerchantQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the logo url", func(t *testing.T) {
		m := newStoreMocks(gomock.NewController(t))
		m.expectReadOnly()
		m.merchants.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(&feed.MerchantRecord{ID: 1, Name: "Kopi", LogoID: 10}, nil)
		m.media.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(10)).Return(logoView, nil)

		got, err := queries.NewMerchantQueries(m.uow, m.stores(), builder.NewTestResolver()).GetByID(ctx, 1)
		require.NoError(t, err)
		want := &queries.MerchantView{
			ID:           1,
			Name:         "Kopi",
			LogoID:       10,
			LogoURL:      "https://discover-test.s3.ap-southeast-1.amazonaws.com/" + logoUUID.String() + "/logo.png",
			LogoMimeType: "image/png",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("merchant view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("merchant missing", func(t *testing.T) {
		m := newStoreMocks(gomock.NewController(t))
		m.expectReadOnly()
		m.merchants.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(nil, notFound("merchant"))

		_, err := queries.NewMerchantQueries(m.uow, m.stores(), builder.NewTestResolver()).GetByID(ctx, 1)
		assert.ErrorIs(t, err, queries.ErrMerchantNotFound)
	})

	t.Run("logo missing", func(t *testing.T) {
		m := newStoreMocks(gomock.NewController(t))
		m.expectReadOnly()
		m.merchants.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(&feed.MerchantRecord{ID: 1, LogoID: 10}, nil)
		m.media.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(10)).Return(nil, notFound("media"))

		_, err := queries.NewMerchantQueries(m.uow, m.stores(), builder.NewTestResolver()).GetByID(ctx, 1)
		assert.ErrorIs(t, err, queries.ErrMerchantLogoNotFound)
	})
}

func TestMediaQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	uploaded := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		m := newStoreMocks(gomock.NewController(t))
		m.expectWithDB()
		rec := *logoView
		rec.DateUploaded = uploaded
		m.media.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(10)).Return(&rec, nil)

		got, err := queries.NewMediaQueries(m.uow, m.stores(), builder.NewTestResolver()).GetByID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, builder.TestURL(logoUUID, "logo.png"), got.URL)
		assert.Equal(t, uploaded, got.DateUploaded)
	})

	t.Run("missing", func(t *testing.T) {
		m := newStoreMocks(gomock.NewController(t))
		m.expectWithDB()
		m.media.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(10)).Return(nil, notFound("media"))

		_, err := queries.NewMediaQueries(m.uow, m.stores(), builder.NewTestResolver()).GetByID(ctx, 10)
		assert.ErrorIs(t, err, queries.ErrMediaNotFound)
	})
}

func TestUserQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("with profile", func(t *testing.T) {
		m := newStoreMocks(gomock.NewController(t))
		m.expectReadOnly()
		m.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(300)).
			Return(&queries.UserRecordView{ID: 300, Name: "Alex", ProfileID: lo.ToPtr(int64(10))}, nil)
		m.media.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(10)).Return(logoView, nil)

		got, err := queries.NewUserQueries(m.uow, m.stores(), builder.NewTestResolver()).GetByID(ctx, 300)
		require.NoError(t, err)
		require.NotNil(t, got.ProfileURL)
		assert.Equal(t, builder.TestURL(logoUUID, "logo.png"), *got.ProfileURL)
		assert.Equal(t, "image/png", *got.ProfileMimeType)
	})

	t.Run("profile media gone leaves url empty", func(t *testing.T) {
		m := newStoreMocks(gomock.NewController(t))
		m.expectReadOnly()
		m.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(300)).
			Return(&queries.UserRecordView{ID: 300, Name: "Alex", ProfileID: lo.ToPtr(int64(10))}, nil)
		m.media.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(10)).Return(nil, notFound("media"))

		got, err := queries.NewUserQueries(m.uow, m.stores(), builder.NewTestResolver()).GetByID(ctx, 300)
		require.NoError(t, err)
		assert.Nil(t, got.ProfileURL)
		assert.Equal(t, lo.ToPtr(int64(10)), got.ProfileID)
	})

	t.Run("missing", func(t *testing.T) {
		m := newStoreMocks(gomock.NewController(t))
		m.expectReadOnly()
		m.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(300)).Return(nil, notFound("user"))

		_, err := queries.NewUserQueries(m.uow, m.stores(), builder.NewTestResolver()).GetByID(ctx, 300)
		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
