//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"discover-api/internal/handler/api"
	resdto "discover-api/internal/handler/dto/response"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/queries"
	"discover-api/tests/common/builder"
	"discover-api/tests/common/httptest"
	"discover-api/tests/common/testutil"
	commandsmock "discover-api/tests/mock/commands"
	queriesmock "discover-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockUserCommands
	queries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.queries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewUserHandler(s.cmds, s.queries)
	s.router.POST("/users", h.Create)
	s.router.GET("/users/:id", h.Get)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	reqBody := builder.NewUserBuilder().BuildCreateRequestDTO()

	s.Run("success", func() {
		s.cmds.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(300), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/users/300"})
	})

	s.Run("success: profile is optional", func() {
		s.cmds.EXPECT().Create(gomock.Any(), commands.CreateUserInput{Name: "Alex"}).Return(int64(301), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", testutil.DtoMap(s.T(), reqBody, testutil.Field("profile_id", nil)))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("validation: missing name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil)))
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		httptest.AssertFieldError(s.T(), body, "name", "required")
	})

	s.Run("error: profile media missing", func() {
		s.cmds.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), commands.ErrProfileMissing).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "profile media does not exist")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.queries.EXPECT().GetByID(gomock.Any(), int64(300)).Return(&queries.UserView{
			ID:         300,
			Name:       "Alex",
			ProfileID:  lo.ToPtr(int64(13)),
			ProfileURL: lo.ToPtr("https://example/profile.png"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/300", nil)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Alex", body.Name)
		s.Require().NotNil(body.ProfileURL)
		s.Equal("https://example/profile.png", *body.ProfileURL)
	})

	s.Run("error: 404", func() {
		s.queries.EXPECT().GetByID(gomock.Any(), int64(300)).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/300", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}
