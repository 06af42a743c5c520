//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"discover-api/internal/domain/boost"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/pkg/clock"
	"discover-api/internal/pkg/config"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BoostCommandsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	m     *txMocks
	clock *clock.MockClock
	uc    commands.BoostCommands
}

func (s *BoostCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewBoostUseCase(s.m.uow, s.clock, config.BoostConfig{MaxDays: 30})
}

func (s *BoostCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBoostCommandsSuite(t *testing.T) {
	suite.Run(t, new(BoostCommandsTestSuite))
}

func (s *BoostCommandsTestSuite) TestRequest() {
	ctx := context.Background()
	const postID int64 = 100

	s.Run("success: admits when no boost is active", func() {
		s.SetupTest()
		now := s.clock.Now()
		s.m.expectWithin()
		gomock.InOrder(
			s.m.boosts.EXPECT().LockAdmission(gomock.Any(), gomock.Any()).Return(nil),
			s.m.reads.EXPECT().ActiveBoostExists(gomock.Any(), now).Return(false, nil),
			s.m.reads.EXPECT().PostByID(gomock.Any(), postID).Return(&shared.PostSnapshot{ID: postID}, nil),
			s.m.boosts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *boost.Boost) (*boost.Boost, error) {
					s.Equal(postID, b.PostID())
					s.Equal(now.AddDate(0, 0, 3), b.EndTime())
					return boost.Reconstruct(9, b.PostID(), b.EndTime()), nil
				}),
		)

		res, err := s.uc.Request(ctx, postID, 3)
		s.Require().NoError(err)
		s.Equal(int64(9), res.ID)
		s.Equal(postID, res.PostID)
		s.Equal(now.AddDate(0, 0, 3), res.EndTime)
	})

	s.Run("error: conflict is reported before a missing post", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.boosts.EXPECT().LockAdmission(gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().ActiveBoostExists(gomock.Any(), gomock.Any()).Return(true, nil)
		s.m.reads.EXPECT().PostByID(gomock.Any(), gomock.Any()).Times(0)
		s.m.boosts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.uc.Request(ctx, 999, 3)
		s.ErrorIs(err, commands.ErrBoostActive)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("error: missing post is not found", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.boosts.EXPECT().LockAdmission(gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().ActiveBoostExists(gomock.Any(), gomock.Any()).Return(false, nil)
		s.m.reads.EXPECT().PostByID(gomock.Any(), postID).Return(nil, notFound("post"))

		_, err := s.uc.Request(ctx, postID, 3)
		s.ErrorIs(err, commands.ErrPostMissing)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: post deleted between check and insert", func() {
		s.SetupTest()
		s.m.expectWithin()
		s.m.boosts.EXPECT().LockAdmission(gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().ActiveBoostExists(gomock.Any(), gomock.Any()).Return(false, nil)
		s.m.reads.EXPECT().PostByID(gomock.Any(), postID).Return(&shared.PostSnapshot{ID: postID}, nil)
		s.m.boosts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fkViolation())

		_, err := s.uc.Request(ctx, postID, 3)
		s.ErrorIs(err, commands.ErrPostMissing)
	})

	s.Run("error: lock failure is propagated", func() {
		s.SetupTest()
		lockErr := errors.New("connection reset")
		s.m.expectWithin()
		s.m.boosts.EXPECT().LockAdmission(gomock.Any(), gomock.Any()).Return(lockErr)

		_, err := s.uc.Request(ctx, postID, 3)
		s.ErrorIs(err, lockErr)
		s.False(errs.Is(err, errs.ErrConflict))
	})

	invalid := []struct {
		name string
		days int
	}{
		{name: "zero days", days: 0},
		{name: "negative days", days: -2},
		{name: "above configured maximum", days: 31},
	}
	for _, tc := range invalid {
		s.Run("error: invalid request for "+tc.name, func() {
			s.SetupTest()
			s.m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Times(0)

			_, err := s.uc.Request(ctx, postID, tc.days)
			s.True(errs.Is(err, errs.ErrInvalidRequest), "got %v", err)
		})
	}
}
