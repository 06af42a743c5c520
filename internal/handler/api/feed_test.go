//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"discover-api/internal/domain/feed"
	"discover-api/internal/handler/api"
	resdto "discover-api/internal/handler/dto/response"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/usecase/queries"
	"discover-api/tests/common/builder"
	"discover-api/tests/common/httptest"
	queriesmock "discover-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeedHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	feed     *queriesmock.MockFeedQueries
}

func (s *FeedHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.feed = queriesmock.NewMockFeedQueries(s.mockCtrl)
	s.router.GET("/discover", api.NewFeedHandler(s.feed).Discover)
}

func (s *FeedHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFeedHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeedHandlerTestSuite))
}

func (s *FeedHandlerTestSuite) TestDiscover() {
	entry := builder.NewPostBuilder().BuildEntry()

	s.Run("success: unpaged feed without cursor", func() {
		s.feed.EXPECT().Discover(gomock.Any(), queries.PageRequest{}).
			Return(&queries.FeedPage{Posts: []feed.Entry{entry}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discover", nil)

		var body resdto.FeedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Posts, 1)
		s.Nil(body.NextCursor)
		s.NotContains(rec.Body.String(), "next_cursor")
	})

	s.Run("success: paged feed forwards limit and after", func() {
		s.feed.EXPECT().Discover(gomock.Any(), queries.PageRequest{Limit: 2, After: "abc"}).
			Return(&queries.FeedPage{Posts: []feed.Entry{entry}, Next: &queries.Cursor{After: "next"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discover?limit=2&after=abc", nil)

		var body resdto.FeedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next", *body.NextCursor)
	})

	s.Run("validation: limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discover?limit=201", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: invalid cursor", func() {
		s.feed.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discover?after=zzz", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("error: dangling post media fails the whole feed", func() {
		s.feed.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(nil, queries.ErrPostMediaNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discover", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "post media not found")
	})
}
