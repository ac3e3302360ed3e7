package api

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

func RegularReportPagingEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	items, err := repository.RegularReportDao.FindByConditions(ctx,
		c.QueryParam("auto"), c.QueryParam("name"), c.QueryParam("description"))
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return Fail(c, 500, "query failed")
	}
	return Success(c, items)
}

func RegularReportCreateEndpoint(c echo.Context) error {
	var item model.RegularReport
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = utils.UUID()
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.RegularReportDao.Create(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "create failed", "create report policy "+item.Name, nil)
	}
	if err := service.JobSrv.ReloadReportSchedules(); err != nil {
		log.Errorf("reload schedules failed: %v", err)
	}
	return SuccessWithOperate(c, "create report policy "+item.Name, H{"id": item.ID})
}

func RegularReportUpdateEndpoint(c echo.Context) error {
	var item model.RegularReport
	if err := c.Bind(&item); err != nil {
		return err
	}
	if err := c.Validate(item); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	item.ID = c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	if _, err := repository.RegularReportDao.FindById(ctx, item.ID); err == gorm.ErrRecordNotFound {
		return NotFound(c, "report policy not found")
	} else if err != nil {
		return err
	}
	if err := repository.RegularReportDao.Update(ctx, &item); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "update failed", "update report policy "+item.Name, nil)
	}
	if err := service.JobSrv.ReloadReportSchedules(); err != nil {
		log.Errorf("reload schedules failed: %v", err)
	}
	return SuccessWithOperate(c, "update report policy "+item.Name, nil)
}

func RegularReportDeleteEndpoint(c echo.Context) error {
	id := c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.RegularReportDao.DeleteById(ctx, id); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "delete failed", "delete report policy "+id, nil)
	}
	if err := service.JobSrv.ReloadReportSchedules(); err != nil {
		log.Errorf("reload schedules failed: %v", err)
	}
	return SuccessWithOperate(c, "delete report policy "+id, nil)
}

// RegularReportRunEndpoint fires one policy immediately over the window
// its period would cover.
func RegularReportRunEndpoint(c echo.Context) error {
	id := c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	rpt, err := repository.RegularReportDao.FindById(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return NotFound(c, "report policy not found")
	}
	if err != nil {
		return err
	}
	start, end := service.ReportWindow(rpt.PeriodicType)
	if err := service.ReportSrv.ExecuteRegularReport(rpt, start, end); err != nil {
		log.Errorf("report run failed: %v", err)
		return FailWithDataOperate(c, 500, "report run failed", "run report policy "+rpt.Name, nil)
	}
	return SuccessWithOperate(c, "run report policy "+rpt.Name, nil)
}

func RegularReportLogPagingEndpoint(c echo.Context) error {
	pageIndex, _ := strconv.Atoi(c.QueryParam("pageIndex"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	ctx := service.ContextWithDB(global.DBConn)
	items, total, err := repository.RegularReportDao.FindLogsForPaging(ctx, pageIndex, pageSize)
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return Fail(c, 500, "query failed")
	}
	return Success(c, H{"total": total, "items": items})
}
