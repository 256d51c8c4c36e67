package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Laisurjan/hlbhteacher/storage"
)

type testValidator struct {
	validate *validator.Validate
}

func (tv *testValidator) Validate(i any) error { return tv.validate.Struct(i) }

// newTestEcho 每個測試一個乾淨的資料目錄與 echo 實例
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	s, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	storage.Data = s

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}
