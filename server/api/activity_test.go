package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestFeedPageParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"defaults", "", 1, 10},
		{"long form", "pageIndex=3&pageSize=25", 3, 25},
		{"short alias", "page=4&pageSize=5", 4, 5},
		{"long form wins over alias", "pageIndex=2&page=7", 2, 10},
		{"garbage falls back to defaults", "pageIndex=x&page=y&pageSize=z", 1, 10},
		{"negative page clamps", "page=-3", 1, 10},
	}
	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/activities?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())
			page, pageSize := feedPageParams(c)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.pageSize, pageSize)
		})
	}
}
