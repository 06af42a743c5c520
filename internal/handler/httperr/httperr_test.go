//go:build unit

package httperr

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"discover-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: errs.NotFound("post not found"), want: http.StatusNotFound},
		{name: "wrapped invalid request", err: errs.Wrap(errs.InvalidRequest("bad days"), "boost"), want: http.StatusBadRequest},
		{name: "conflict", err: errs.Conflict("boost active"), want: http.StatusConflict},
		{name: "unclassified", err: errs.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

type itemPayload struct {
	Name  string `json:"name" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
}

func TestFieldErrors(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	err := v.Struct(itemPayload{Price: -1})

	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Rule: "required"},
		{Field: "price", Rule: "gte", Param: "0"},
	}, FieldErrors(err))
	assert.Nil(t, FieldErrors(errs.New("not a validation error")))
}

func TestAbortWithKind_KeepsResponseOnContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "classified error", err: errs.Conflict("boost active"), wantStatus: http.StatusConflict, wantMessage: "boost active"},
		{name: "server error uses fallback", err: errs.New("db down"), wantStatus: http.StatusInternalServerError, wantMessage: "Boost failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			AbortWithKind(c, tt.err, "Boost failed")

			require.Len(t, c.Errors, 1)
			last := c.Errors.Last()
			assert.True(t, last.IsType(gin.ErrorTypePublic))
			resp, ok := last.Meta.(Response)
			require.True(t, ok, "meta should carry the rendered response")
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
			assert.ErrorIs(t, last.Err, tt.err)
		})
	}
}
