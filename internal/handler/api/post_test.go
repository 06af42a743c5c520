//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"discover-api/internal/handler/api"
	resdto "discover-api/internal/handler/dto/response"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/queries"
	"discover-api/tests/common/builder"
	"discover-api/tests/common/httptest"
	commandsmock "discover-api/tests/mock/commands"
	queriesmock "discover-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PostHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	posts    *commandsmock.MockPostCommands
	boosts   *commandsmock.MockBoostCommands
	feed     *queriesmock.MockFeedQueries
}

func (s *PostHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.posts = commandsmock.NewMockPostCommands(s.mockCtrl)
	s.boosts = commandsmock.NewMockBoostCommands(s.mockCtrl)
	s.feed = queriesmock.NewMockFeedQueries(s.mockCtrl)
	h := api.NewPostHandler(s.posts, s.boosts, s.feed)

	s.router.GET("/posts/:id", h.Get)
	s.router.PUT("/posts/:id", h.Update)
	s.router.DELETE("/posts/:id", h.Delete)
	s.router.POST("/posts/:id/boost", h.Boost)
	s.router.POST("/posts/:id/like", h.Like)
	s.router.POST("/posts/:id/comments", h.Comment)
}

func (s *PostHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPostHandlerSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}

func (s *PostHandlerTestSuite) TestGet() {
	s.Run("success: composed post", func() {
		entry := builder.NewPostBuilder().BuildEntry()
		entry.IsBoosted = true
		s.feed.EXPECT().GetPost(gomock.Any(), int64(100)).Return(&entry, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/posts/100", nil)

		var body resdto.PostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(100), body.ID)
		s.True(body.IsBoosted)
		s.Equal("2024-03-01T12:00:00Z", body.DatePosted)
		s.Equal("Kopi Kenangan", body.MerchantName)
	})

	s.Run("error: 404 when the merchant logo is gone", func() {
		s.feed.EXPECT().GetPost(gomock.Any(), int64(100)).Return(nil, queries.ErrMerchantLogoNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/posts/100", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "merchant logo not found")
	})
}

func (s *PostHandlerTestSuite) TestUpdate() {
	s.Run("success: empty title is forwarded so it can be cleared", func() {
		s.posts.EXPECT().Update(gomock.Any(), int64(100), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, in commands.UpdatePostInput) error {
				s.Require().NotNil(in.Title)
				s.Equal("", *in.Title)
				s.Nil(in.Items)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/posts/100", map[string]any{"title": ""})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when post is missing", func() {
		s.posts.EXPECT().Update(gomock.Any(), int64(100), gomock.Any()).Return(commands.ErrPostMissing).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/posts/100", map[string]any{"media_id": 12})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "post does not exist")
	})
}

func (s *PostHandlerTestSuite) TestDelete() {
	s.posts.EXPECT().Delete(gomock.Any(), int64(100)).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/posts/100", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

// ================================================================================
// TestBoost
// ================================================================================

func (s *PostHandlerTestSuite) TestBoost() {
	url := "/posts/100/boost"

	s.Run("success: 201 with the boost window", func() {
		end := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
		s.boosts.EXPECT().Request(gomock.Any(), int64(100), 7).
			Return(&commands.BoostResult{ID: 5, PostID: 100, EndTime: end}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"days": 7})

		var body resdto.BoostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(5), body.ID)
		s.Equal("2024-03-08T12:00:00Z", body.EndTime)
	})

	validation := []struct {
		name string
		body any
		rule string
	}{
		{name: "missing days", body: map[string]any{}, rule: "required"},
		{name: "zero days", body: map[string]any{"days": 0}, rule: "required"},
		{name: "negative days", body: map[string]any{"days": -1}, rule: "min"},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body)
			body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			httptest.AssertFieldError(s.T(), body, "days", tc.rule)
		})
	}

	s.Run("error: non-numeric days", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"days": "seven"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"another boost active", commands.ErrBoostActive, http.StatusConflict, "another boost is currently active"},
			{"post missing", commands.ErrPostMissing, http.StatusNotFound, "post does not exist"},
			{"unclassified", errors.New("deadlock detected"), http.StatusInternalServerError, "Boost failed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.boosts.EXPECT().Request(gomock.Any(), int64(100), 3).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"days": 3})
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PostHandlerTestSuite) TestLikeAndComment() {
	for _, path := range []string{"/posts/100/like", "/posts/100/comments"} {
		s.Run(path, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"text": "nice"})
			s.Equal(http.StatusNoContent, rec.Code)
			s.Empty(rec.Body.String())
		})
	}
}
