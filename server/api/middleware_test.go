package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	errs "github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/error"
)

func runErrorHandler(t *testing.T, err error) H {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/assets/paging", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := ErrorHandler(func(c echo.Context) error { return err })
	require.NoError(t, h(c))

	var body H
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorHandlerMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code float64
	}{
		{"precondition violation maps to 400", pkgerrors.Wrap(errs.ErrNotAvailable, "AT-0001"), 400},
		{"missing row maps to not found", gorm.ErrRecordNotFound, -1},
		{"missing asset maps to not found even when wrapped", pkgerrors.Wrap(errs.ErrAssetNotFound, "a-9"), -1},
		{"deleted asset maps to not found", errs.ErrAssetDeleted, -1},
		{"exhausted connection pool maps to 503", pkgerrors.New("Error 1040: Too many connections"), 503},
		{"http error keeps its status", echo.NewHTTPError(405, "method not allowed"), 405},
		{"anything else maps to 500", pkgerrors.New("boom"), 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := runErrorHandler(t, tt.err)
			assert.Equal(t, tt.code, body["code"])
		})
	}
}

func TestErrorHandlerPassesNilThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := ErrorHandler(func(c echo.Context) error {
		called = true
		return nil
	})
	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Zero(t, rec.Body.Len())
}
