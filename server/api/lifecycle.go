package api

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

var disposeMethods = []string{
	constant.DisposeSold, constant.DisposeDonated, constant.DisposeScrapped,
	constant.DisposeLost, constant.DisposeDestroyed,
}

// transitionData shapes the envelope payload of a transition: the created
// history rows keyed by the operation's plural name, matching the keys of
// the per-asset archive.
func transitionData(key string, r dto.TransitionResult) H {
	return H{
		"success": r.Success,
		key:       r.Records,
		"count":   r.Count,
	}
}

func CheckoutEndpoint(c echo.Context) error {
	var req dto.CheckoutForCreate
	if err := c.Bind(&req); err != nil {
		log.Errorf("Bind Error: %v", err)
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	result, err := service.LifecycleSrv.Checkout(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("checkout %d assets to %s", result.Count, req.EmployeeUserID), transitionData("checkouts", result))
}

func CheckinEndpoint(c echo.Context) error {
	var req dto.CheckinForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	result, err := service.LifecycleSrv.Checkin(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("checkin %d assets", result.Count), transitionData("checkins", result))
}

func LeaseEndpoint(c echo.Context) error {
	var req dto.LeaseForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	result, err := service.LifecycleSrv.Lease(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("lease %d assets to %s", result.Count, req.LesseeName), transitionData("leases", result))
}

func LeaseReturnEndpoint(c echo.Context) error {
	var req dto.LeaseReturnForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	result, err := service.LifecycleSrv.LeaseReturn(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("lease return %d assets", result.Count), transitionData("leaseReturns", result))
}

func DisposeEndpoint(c echo.Context) error {
	var req dto.DisposeForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	if !utils.Contains(disposeMethods, req.DisposeReason) {
		return Fail(c, 400, "unknown disposal method")
	}
	result, err := service.LifecycleSrv.Dispose(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("dispose %d assets (%s)", result.Count, req.DisposeReason), transitionData("disposals", result))
}

func MaintenanceEndpoint(c echo.Context) error {
	var req dto.MaintenanceForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	result, err := service.LifecycleSrv.Maintenance(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("maintenance (%s) on %d assets", req.MaintenanceStatus, result.Count), transitionData("maintenances", result))
}

func ReserveEndpoint(c echo.Context) error {
	var req dto.ReserveForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	result, err := service.LifecycleSrv.Reserve(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("reserve %d assets for %s", result.Count, req.EmployeeUserID), transitionData("reservations", result))
}

func MoveEndpoint(c echo.Context) error {
	var req dto.MoveForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	if req.ToSite == "" && req.ToLocation == "" && req.ToDepartment == "" {
		return Fail(c, 400, "move requires a target site, location or department")
	}
	result, err := service.LifecycleSrv.Move(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("move %d assets", result.Count), transitionData("moves", result))
}

func AuditEndpoint(c echo.Context) error {
	var req dto.AuditForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}
	result, err := service.LifecycleSrv.Audit(req)
	if err != nil {
		return err
	}
	return SuccessWithOperate(c, fmt.Sprintf("audit %d assets by %s", result.Count, req.Auditor), transitionData("audits", result))
}

// AssetHistoryEndpoint returns every history row of one asset grouped
// by kind.
func AssetHistoryEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	archive, err := repository.AssetDao.CollectArchive(ctx, c.Param("id"))
	if err == gorm.ErrRecordNotFound {
		return NotFound(c, "asset not found")
	}
	if err != nil {
		return err
	}
	return Success(c, H{
		"checkouts":    archive.Checkouts,
		"checkins":     archive.Checkins,
		"moves":        archive.Moves,
		"reservations": archive.Reservations,
		"leases":       archive.Leases,
		"leaseReturns": archive.LeaseReturns,
		"disposals":    archive.Disposals,
		"maintenances": archive.Maintenances,
		"audits":       archive.Audits,
	})
}

// ReservationUpdateEndpoint is one of the two history edits the product
// allows: shifting a reservation window.
func ReservationUpdateEndpoint(c echo.Context) error {
	var req dto.ReservationForUpdate
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.ID = c.Param("id")
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}

	ctx := service.ContextWithDB(global.DBConn)
	if _, err := repository.ReservationDao.FindById(ctx, req.ID); err == gorm.ErrRecordNotFound {
		return NotFound(c, "reservation not found")
	} else if err != nil {
		return err
	}
	var end utils.JsonTime
	if req.EndDate != "" {
		end = utils.StringToJSONTime(req.EndDate)
	}
	if err := repository.ReservationDao.UpdateDates(ctx, req.ID,
		utils.StringToJSONTime(req.StartDate), end, req.Notes); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "update failed", "update reservation "+req.ID, nil)
	}
	return SuccessWithOperate(c, "update reservation "+req.ID, nil)
}

// AuditNoteUpdateEndpoint is the other allowed history edit.
func AuditNoteUpdateEndpoint(c echo.Context) error {
	var req dto.AuditNoteForUpdate
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.ID = c.Param("id")
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}

	ctx := service.ContextWithDB(global.DBConn)
	if _, err := repository.AuditHistoryDao.FindById(ctx, req.ID); err == gorm.ErrRecordNotFound {
		return NotFound(c, "audit record not found")
	} else if err != nil {
		return err
	}
	if err := repository.AuditHistoryDao.UpdateNote(ctx, req.ID, req.Note); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "update failed", "update audit note "+req.ID, nil)
	}
	return SuccessWithOperate(c, "update audit note "+req.ID, nil)
}
