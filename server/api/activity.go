package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
)

// feedPageParams reads the feed paging query. page is accepted as an
// alias for pageIndex, the dashboard sends the short form.
func feedPageParams(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("pageIndex"))
	if page == 0 {
		page, _ = strconv.Atoi(c.QueryParam("page"))
	}
	pageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}

// ActivityPagingEndpoint serves the merged history feed, newest first
// across every kind. An optional kind query narrows it.
func ActivityPagingEndpoint(c echo.Context) error {
	page, pageSize := feedPageParams(c)

	kind := c.QueryParam("kind")
	if kind == "" {
		// older dashboard builds send type
		kind = c.QueryParam("type")
	}

	ctx := service.ContextWithDB(global.DBConn)
	var feed dto.ActivityPage
	err := repository.WithRetry(c.Request().Context(), func() (err error) {
		feed, err = service.ActivitySrv.Feed(ctx, page, pageSize, kind)
		return err
	})
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return err
	}
	return Success(c, feed)
}
