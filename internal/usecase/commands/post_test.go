//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"discover-api/internal/domain/post"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/clock"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/shared"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PostCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *txMocks
	now  time.Time
	uc   commands.PostCommands
}

func (s *PostCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.uc = commands.NewPostUseCase(s.m.uow, clock.NewMockClock(s.now))
}

func TestPostCommandsSuite(t *testing.T) {
	suite.Run(t, new(PostCommandsTestSuite))
}

func (s *PostCommandsTestSuite) storedPost() *shared.PostSnapshot {
	return &shared.PostSnapshot{
		ID:         100,
		MerchantID: 1,
		MediaID:    11,
		Title:      lo.ToPtr("Old title"),
		DatePosted: s.now.Add(-time.Hour),
		ItemIDs:    []int64{200, 201},
	}
}

func (s *PostCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: stamps date_posted from the clock", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.reads.EXPECT().MerchantByID(gomock.Any(), int64(1)).Return(&shared.MerchantSnapshot{ID: 1}, nil)
		s.m.reads.EXPECT().MediaExists(gomock.Any(), int64(11)).Return(true, nil)
		s.m.posts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p *post.Post) (int64, error) {
				s.Equal(int64(1), p.MerchantID())
				s.Equal(s.now, p.DatePosted())
				s.Equal([]int64{200, 999}, p.ItemIDs())
				return 100, nil
			})

		id, err := s.uc.Create(ctx, 1, commands.CreatePostInput{MediaID: 11, Items: []int64{200, 999}})
		s.Require().NoError(err)
		s.Equal(int64(100), id)
	})

	s.Run("error: merchant missing is checked before media", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.reads.EXPECT().MerchantByID(gomock.Any(), int64(5)).Return(nil, notFound("merchant"))
		s.m.reads.EXPECT().MediaExists(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.uc.Create(ctx, 5, commands.CreatePostInput{MediaID: 11})
		s.ErrorIs(err, commands.ErrMerchantMissing)
	})

	s.Run("error: media missing", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.reads.EXPECT().MerchantByID(gomock.Any(), int64(1)).Return(&shared.MerchantSnapshot{ID: 1}, nil)
		s.m.reads.EXPECT().MediaExists(gomock.Any(), int64(11)).Return(false, nil)

		_, err := s.uc.Create(ctx, 1, commands.CreatePostInput{MediaID: 11})
		s.ErrorIs(err, commands.ErrMediaMissing)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: invalid item id", func() {
		s.SetupTest()
		s.m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.uc.Create(ctx, 1, commands.CreatePostInput{MediaID: 11, Items: []int64{0}})
		s.ErrorIs(err, post.ErrInvalidItemID)
		s.True(errs.Is(err, errs.ErrInvalidRequest))
	})
}

func (s *PostCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	cases := []struct {
		name      string
		in        commands.UpdatePostInput
		wantTitle *string
		wantItems []int64
	}{
		{
			name:      "nil fields keep stored values",
			in:        commands.UpdatePostInput{},
			wantTitle: lo.ToPtr("Old title"),
			wantItems: []int64{200, 201},
		},
		{
			name:      "empty title clears it",
			in:        commands.UpdatePostInput{Title: lo.ToPtr("")},
			wantTitle: nil,
			wantItems: []int64{200, 201},
		},
		{
			name:      "items are replaced wholesale",
			in:        commands.UpdatePostInput{Items: &[]int64{}},
			wantTitle: lo.ToPtr("Old title"),
			wantItems: []int64{},
		},
	}
	for _, tc := range cases {
		s.Run("success: "+tc.name, func() {
			s.SetupTest()
			stored := s.storedPost()
			s.m.expectWithin()
			s.m.reads.EXPECT().PostByID(gomock.Any(), int64(100)).Return(stored, nil)
			s.m.posts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p *post.Post) error {
					s.Equal(tc.wantTitle, p.Title())
					s.Equal(tc.wantItems, p.ItemIDs())
					s.Equal(stored.DatePosted, p.DatePosted())
					return nil
				})

			s.NoError(s.uc.Update(ctx, 100, tc.in))
		})
	}

	s.Run("error: post missing", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.reads.EXPECT().PostByID(gomock.Any(), int64(100)).Return(nil, notFound("post"))

		s.ErrorIs(s.uc.Update(ctx, 100, commands.UpdatePostInput{}), commands.ErrPostMissing)
	})

	s.Run("error: new media missing", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.reads.EXPECT().PostByID(gomock.Any(), int64(100)).Return(s.storedPost(), nil)
		s.m.reads.EXPECT().MediaExists(gomock.Any(), int64(44)).Return(false, nil)
		s.m.posts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := s.uc.Update(ctx, 100, commands.UpdatePostInput{MediaID: lo.ToPtr(int64(44))})
		s.ErrorIs(err, commands.ErrMediaMissing)
	})
}

func (s *PostCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("success", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.posts.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(100)).Return(nil)
		s.NoError(s.uc.Delete(ctx, 100))
	})

	s.Run("error: post missing", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.posts.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(100)).Return(notFound("post"))
		s.ErrorIs(s.uc.Delete(ctx, 100), commands.ErrPostMissing)
	})
}
