package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
)

func OperateLogPagingEndpoint(c echo.Context) error {
	pageIndex, _ := strconv.Atoi(c.QueryParam("pageIndex"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	ctx := service.ContextWithDB(global.DBConn)
	items, total, err := repository.OperateLogDao.FindForPaging(ctx, pageIndex, pageSize,
		c.QueryParam("auto"), c.QueryParam("users"), c.QueryParam("result"))
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return Fail(c, 500, "query failed")
	}
	return Success(c, H{"total": total, "items": items})
}
