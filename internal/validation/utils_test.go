package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID        int64  `param:"id" validate:"required,min=1"`
	FirstName string `json:"firstName" validate:"required"`
}

func (p *samplePayload) Validate() error {
	return validator.New().Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "email", Message: "is taken"}}
}

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate_Success(t *testing.T) {
	c := newContext(http.MethodPut, "/", `{"firstName":"Jan"}`)
	c.SetParamNames("id")
	c.SetParamValues("4")

	payload := &samplePayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, int64(4), payload.ID)
	assert.Equal(t, "Jan", payload.FirstName)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c := newContext(http.MethodPut, "/", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("4")

	err := BindAndValidate(c, &samplePayload{})
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "firstName", Error: "is required"}, httpErr.Errors[0])
}

func TestBindAndValidate_BadParam(t *testing.T) {
	c := newContext(http.MethodPut, "/", `{"firstName":"Jan"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := BindAndValidate(c, &samplePayload{})
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodGet, "/", "")

	err := BindAndValidate(c, &customPayload{})
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, []errs.FieldError{{Field: "email", Error: "is taken"}}, httpErr.Errors)
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "firstName", lowerFirst("FirstName"))
	assert.Equal(t, "id", lowerFirst("ID"))
	assert.Equal(t, "", lowerFirst(""))
}
