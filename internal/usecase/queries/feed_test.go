//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"discover-api/internal/domain/feed"
	"discover-api/internal/pkg/clock"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/queries"
	"discover-api/tests/common/builder"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeedQueriesTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *storeMocks
	now  time.Time
	q    queries.FeedQueries
}

func (s *FeedQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newStoreMocks(s.ctrl)
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.q = queries.NewFeedQueries(s.m.uow, s.m.stores(), builder.NewTestResolver(), clock.NewMockClock(s.now))
}

func TestFeedQueriesSuite(t *testing.T) {
	suite.Run(t, new(FeedQueriesTestSuite))
}

func (s *FeedQueriesTestSuite) post(id int64, age time.Duration) feed.PostRecord {
	return feed.PostRecord{
		ID:         id,
		MerchantID: 1,
		MediaID:    11,
		DatePosted: s.now.Add(-age),
		ItemIDs:    []int64{200},
	}
}

// expectLookups stubs the batch lookups that follow the post query.
func (s *FeedQueriesTestSuite) expectLookups(media map[int64]feed.MediaRecord, boostEnds map[int64]time.Time) {
	s.m.merchants.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixtureMerchants(), nil)
	s.m.items.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixtureItems(), nil)
	s.m.boosts.EXPECT().LatestEnds(gomock.Any(), gomock.Any(), gomock.Any()).Return(boostEnds, nil)
	s.m.media.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(media, nil)
}

func (s *FeedQueriesTestSuite) TestDiscover() {
	ctx := context.Background()

	s.Run("success: unpaged returns every post with boost flags", func() {
		s.SetupTest()
		s.m.expectReadOnly()
		s.m.posts.EXPECT().FindAll(gomock.Any(), gomock.Any()).
			Return([]feed.PostRecord{s.post(2, time.Hour), s.post(1, 2*time.Hour)}, nil)
		s.expectLookups(fixtureMedia(), map[int64]time.Time{1: s.now.Add(time.Hour)})

		page, err := s.q.Discover(ctx, queries.PageRequest{})
		s.Require().NoError(err)
		s.Nil(page.Next)
		s.Require().Len(page.Posts, 2)
		s.Equal(int64(2), page.Posts[0].ID)
		s.False(page.Posts[0].IsBoosted)
		s.True(page.Posts[1].IsBoosted)
		s.Equal("Kopi Kenangan", page.Posts[0].MerchantName)
		s.Equal(builder.TestURL(logoUUID, "logo.png"), page.Posts[0].LogoURL)
		s.Require().Len(page.Posts[0].Items, 1)
		s.Equal(builder.TestURL(itemUUID, "iced.jpg"), page.Posts[0].Items[0].MediaURL)
	})

	s.Run("success: empty feed skips the lookups", func() {
		s.SetupTest()
		s.m.expectReadOnly()
		s.m.posts.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, nil)

		page, err := s.q.Discover(ctx, queries.PageRequest{})
		s.Require().NoError(err)
		s.NotNil(page.Posts)
		s.Empty(page.Posts)
	})

	s.Run("success: first page fetches limit+1 and emits a cursor", func() {
		s.SetupTest()
		posts := []feed.PostRecord{s.post(3, time.Hour), s.post(2, 2*time.Hour), s.post(1, 3*time.Hour)}
		s.m.expectReadOnly()
		s.m.posts.EXPECT().FindFirstPage(gomock.Any(), gomock.Any(), int32(3)).Return(posts, nil)
		s.expectLookups(fixtureMedia(), nil)

		page, err := s.q.Discover(ctx, queries.PageRequest{Limit: 2})
		s.Require().NoError(err)
		s.Len(page.Posts, 2)
		s.Require().NotNil(page.Next)
		s.Equal(queries.EncodeAfterCursor(posts[1].DatePosted, 2), page.Next.After)
	})

	s.Run("success: keyset page resumes after the cursor", func() {
		s.SetupTest()
		last := s.now.Add(-2 * time.Hour)
		s.m.expectReadOnly()
		s.m.posts.EXPECT().FindKeyset(gomock.Any(), gomock.Any(), last, int64(2), int32(3)).
			Return([]feed.PostRecord{s.post(1, 3*time.Hour)}, nil)
		s.expectLookups(fixtureMedia(), nil)

		page, err := s.q.Discover(ctx, queries.PageRequest{Limit: 2, After: queries.EncodeAfterCursor(last, 2)})
		s.Require().NoError(err)
		s.Len(page.Posts, 1)
		s.Nil(page.Next)
	})

	s.Run("error: malformed cursor", func() {
		s.SetupTest()
		s.m.expectReadOnly()

		_, err := s.q.Discover(ctx, queries.PageRequest{After: "not-a-cursor"})
		s.ErrorIs(err, queries.ErrInvalidCursor)
		s.True(errs.Is(err, errs.ErrInvalidRequest))
	})

	missing := []struct {
		name    string
		drop    int64
		wantErr error
	}{
		{name: "post media", drop: 11, wantErr: queries.ErrPostMediaNotFound},
		{name: "merchant logo", drop: 10, wantErr: queries.ErrMerchantLogoNotFound},
	}
	for _, tc := range missing {
		s.Run("error: missing "+tc.name+" fails the whole feed", func() {
			s.SetupTest()
			media := fixtureMedia()
			delete(media, tc.drop)
			s.m.expectReadOnly()
			s.m.posts.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]feed.PostRecord{s.post(1, time.Hour)}, nil)
			s.expectLookups(media, nil)

			page, err := s.q.Discover(ctx, queries.PageRequest{})
			s.Nil(page)
			s.ErrorIs(err, tc.wantErr)
			s.True(errs.Is(err, errs.ErrNotFound))
		})
	}

	s.Run("success: missing item media only drops the item", func() {
		s.SetupTest()
		media := fixtureMedia()
		delete(media, 12)
		s.m.expectReadOnly()
		s.m.posts.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]feed.PostRecord{s.post(1, time.Hour)}, nil)
		s.expectLookups(media, nil)

		page, err := s.q.Discover(ctx, queries.PageRequest{})
		s.Require().NoError(err)
		s.Require().Len(page.Posts, 1)
		s.Empty(page.Posts[0].Items)
	})
}

func (s *FeedQueriesTestSuite) TestByMerchant() {
	ctx := context.Background()

	s.Run("success", func() {
		s.SetupTest()
		s.m.expectReadOnly()
		s.m.merchants.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(1)).Return(&feed.MerchantRecord{ID: 1}, nil)
		s.m.posts.EXPECT().FindByMerchant(gomock.Any(), gomock.Any(), int64(1)).Return([]feed.PostRecord{s.post(1, time.Hour)}, nil)
		s.expectLookups(fixtureMedia(), nil)

		entries, err := s.q.ByMerchant(ctx, 1)
		s.Require().NoError(err)
		s.Len(entries, 1)
	})

	s.Run("error: merchant missing", func() {
		s.SetupTest()
		s.m.expectReadOnly()
		s.m.merchants.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(9)).Return(nil, notFound("merchant"))
		s.m.posts.EXPECT().FindByMerchant(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.q.ByMerchant(ctx, 9)
		s.ErrorIs(err, queries.ErrMerchantNotFound)
	})
}

func (s *FeedQueriesTestSuite) TestGetPost() {
	ctx := context.Background()

	s.Run("success: boost ending exactly now is not active", func() {
		s.SetupTest()
		p := s.post(100, time.Hour)
		s.m.expectReadOnly()
		s.m.posts.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(100)).Return(&p, nil)
		s.expectLookups(fixtureMedia(), map[int64]time.Time{100: s.now})

		entry, err := s.q.GetPost(ctx, 100)
		s.Require().NoError(err)
		s.Equal(int64(100), entry.ID)
		s.False(entry.IsBoosted)
	})

	s.Run("error: post missing", func() {
		s.SetupTest()
		s.m.expectReadOnly()
		s.m.posts.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(100)).Return(nil, notFound("post"))

		_, err := s.q.GetPost(ctx, 100)
		s.ErrorIs(err, queries.ErrPostNotFound)
	})
}
