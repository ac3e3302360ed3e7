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

func OverviewCounterEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	var counter dto.Counter
	err := repository.WithRetry(c.Request().Context(), func() (err error) {
		counter, err = service.ReportSrv.Overview(ctx)
		return err
	})
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return err
	}
	return Success(c, counter)
}

// OverviewGroupByEndpoint groups assets by one dimension, ?by=category
// etc. The service rejects columns outside its whitelist.
func OverviewGroupByEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	rows, err := service.ReportSrv.GroupBy(ctx, c.QueryParam("by"))
	if err != nil {
		return err
	}
	return Success(c, rows)
}

func OverviewCheckoutTrendEndpoint(c echo.Context) error {
	months, _ := strconv.Atoi(c.QueryParam("months"))
	if months < 1 || months > 36 {
		months = 12
	}
	ctx := service.ContextWithDB(global.DBConn)
	rows, err := service.ReportSrv.CheckoutTrend(ctx, months)
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return Fail(c, 500, "query failed")
	}
	return Success(c, rows)
}

func OverviewMaintenanceTrendEndpoint(c echo.Context) error {
	months, _ := strconv.Atoi(c.QueryParam("months"))
	if months < 1 || months > 36 {
		months = 12
	}
	ctx := service.ContextWithDB(global.DBConn)
	rows, err := service.ReportSrv.MaintenanceCostTrend(ctx, months)
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return Fail(c, 500, "query failed")
	}
	return Success(c, rows)
}

func OverviewOverdueEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	rows, err := service.ReportSrv.OverdueCheckouts(ctx)
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return Fail(c, 500, "query failed")
	}
	return Success(c, rows)
}

func OverviewSystemInfoEndpoint(c echo.Context) error {
	return Success(c, H{
		"usage":     service.ReportSrv.SystemUsage(),
		"wsClients": service.ActivityHub.ClientCount(),
	})
}
