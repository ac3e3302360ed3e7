package service

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	errs "github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/error"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ActiveState carries what the precondition checks need to know about the
// asset's open history rows, loaded under the same row lock as the asset.
type ActiveState struct {
	ActiveCheckout *model.Checkout
	ActiveLease    *model.Lease
}

// IsDisposedStatus covers both the plain Disposed status and the disposal
// method strings written by the dispose operation.
func IsDisposedStatus(status string) bool {
	switch status {
	case constant.StatusDisposed, constant.DisposeSold, constant.DisposeDonated,
		constant.DisposeScrapped, constant.DisposeLost, constant.DisposeDestroyed:
		return true
	}
	return false
}

// CheckPrecondition is the per-operation legality check, pure so the rule
// table can be tested without a database.
//
// Checkout deliberately does not require status == Available; only the
// duplicate active checkout is rejected. Lease does require Available.
// The asymmetry is observed product behavior and is kept pending
// clarification, do not harmonize.
func CheckPrecondition(op string, asset model.Asset, st ActiveState) error {
	switch op {
	case constant.OpCheckout:
		if st.ActiveCheckout != nil {
			return errs.ErrAlreadyCheckedOut
		}
		return nil
	case constant.OpCheckin:
		if asset.Status != constant.StatusCheckedOut {
			return errs.ErrInvalidTransition
		}
		if st.ActiveCheckout == nil {
			return errs.ErrNoActiveCheckout
		}
		if st.ActiveCheckout.EmployeeUserID == "" {
			return errs.ErrEmployeeRequired
		}
		return nil
	case constant.OpLease:
		if IsDisposedStatus(asset.Status) {
			return errs.ErrAlreadyDisposed
		}
		if asset.Status != constant.StatusAvailable {
			return errs.ErrNotAvailable
		}
		if st.ActiveLease != nil {
			return errs.ErrActiveLeaseExists
		}
		return nil
	case constant.OpLeaseReturn:
		if st.ActiveLease == nil {
			return errs.ErrNoActiveLease
		}
		return nil
	case constant.OpDispose:
		if IsDisposedStatus(asset.Status) {
			return errs.ErrAlreadyDisposed
		}
		return nil
	case constant.OpMaintenance, constant.OpReserve, constant.OpMove, constant.OpAudit:
		// no precondition enforced
		return nil
	}
	return errs.ErrInvalidTransition
}

// transitionOp is one declarative entry of the transition table: how to
// build the history row and how to mutate the asset afterwards.
type transitionOp struct {
	kind string
	// record appends the history row(s) for one asset and returns them
	record func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error)
	// mutate returns the asset column updates, nil for none
	mutate func(asset model.Asset, st ActiveState) map[string]interface{}
}

type lifecycleService struct {
	baseService
}

// transitionUpdatable limits the optional updates map of checkout/checkin
// to the denormalized columns move also rewrites.
var transitionUpdatable = map[string]bool{"site": true, "location": true, "department": true}

func mergeUpdates(fields map[string]interface{}, updates map[string]string) map[string]interface{} {
	for k, v := range updates {
		if transitionUpdatable[k] {
			fields[k] = v
		}
	}
	return fields
}

// run executes one transition over a batch of asset ids inside a single
// transaction. Any failure, including a violated precondition on any one
// asset, rolls back the whole batch.
func (s *lifecycleService) run(assetIds []string, op transitionOp) (result dto.TransitionResult, err error) {
	records := make([]interface{}, 0, len(assetIds))
	err = global.DBConn.Transaction(func(tx *gorm.DB) error {
		ctx := s.Context(tx)
		for _, id := range assetIds {
			asset, err := repository.AssetDao.FindByIdForUpdate(ctx, id)
			if err == gorm.ErrRecordNotFound {
				return errors.Wrap(errs.ErrAssetNotFound, id)
			}
			if err != nil {
				return err
			}

			st, err := s.loadActiveState(ctx, asset.ID)
			if err != nil {
				return err
			}
			if err := CheckPrecondition(op.kind, asset, st); err != nil {
				return errors.Wrap(err, asset.AssetTagID)
			}

			rec, err := op.record(ctx, asset, st)
			if err != nil {
				return err
			}
			records = append(records, rec)

			if op.mutate != nil {
				if fields := op.mutate(asset, st); len(fields) > 0 {
					if err := repository.AssetDao.UpdateById(ctx, asset.ID, fields); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return dto.TransitionResult{Success: false}, err
	}

	// aggregates are stale now; drop them and notify the live feed
	if global.Cache != nil {
		global.Cache.InvalidateByPrefix(constant.CacheKeyOverview)
		global.Cache.InvalidateByPrefix(constant.CacheKeyReport)
	}
	notifyActivity(op.kind, assetIds)

	return dto.TransitionResult{Success: true, Records: records, Count: len(records)}, nil
}

// loadActiveState reads the open checkout/lease rows of the asset. Runs
// inside the caller's transaction, after the asset row lock is held.
func (s *lifecycleService) loadActiveState(ctx context.Context, assetId string) (st ActiveState, err error) {
	co, err := repository.CheckoutDao.FindActiveByAssetId(ctx, assetId)
	if err == nil {
		st.ActiveCheckout = &co
	} else if err != gorm.ErrRecordNotFound {
		return st, err
	}
	le, err := repository.LeaseDao.FindActiveByAssetId(ctx, assetId)
	if err == nil {
		st.ActiveLease = &le
	} else if err != gorm.ErrRecordNotFound {
		return st, err
	}
	return st, nil
}

func (s *lifecycleService) Checkout(req dto.CheckoutForCreate) (dto.TransitionResult, error) {
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpCheckout,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.Checkout{
				ID:             utils.UUID(),
				AssetID:        asset.ID,
				EmployeeUserID: req.EmployeeUserID,
				CheckoutDate:   utils.StringToJSONTime(req.CheckoutDate),
				Notes:          req.Notes,
				Created:        utils.NowJsonTime(),
			}
			if req.ExpectedReturnDate != "" {
				o.ExpectedReturnDate = utils.StringToJSONTime(req.ExpectedReturnDate)
			}
			return o, repository.CheckoutDao.Create(ctx, &o)
		},
		mutate: func(asset model.Asset, st ActiveState) map[string]interface{} {
			return mergeUpdates(map[string]interface{}{"status": constant.StatusCheckedOut}, req.Updates)
		},
	})
}

func (s *lifecycleService) Checkin(req dto.CheckinForCreate) (dto.TransitionResult, error) {
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpCheckin,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.Checkin{
				ID:          utils.UUID(),
				AssetID:     asset.ID,
				CheckoutID:  st.ActiveCheckout.ID,
				CheckinDate: utils.StringToJSONTime(req.CheckinDate),
				Condition:   req.Condition,
				Created:     utils.NowJsonTime(),
			}
			return o, repository.CheckinDao.Create(ctx, &o)
		},
		mutate: func(asset model.Asset, st ActiveState) map[string]interface{} {
			return mergeUpdates(map[string]interface{}{"status": constant.StatusAvailable}, req.Updates)
		},
	})
}

func (s *lifecycleService) Lease(req dto.LeaseForCreate) (dto.TransitionResult, error) {
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpLease,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.Lease{
				ID:             utils.UUID(),
				AssetID:        asset.ID,
				LesseeName:     req.LesseeName,
				LeaseStartDate: utils.StringToJSONTime(req.LeaseStartDate),
				MonthlyRate:    req.MonthlyRate,
				Notes:          req.Notes,
				Created:        utils.NowJsonTime(),
			}
			if req.LeaseEndDate != "" {
				o.LeaseEndDate = utils.StringToJSONTime(req.LeaseEndDate)
			}
			return o, repository.LeaseDao.Create(ctx, &o)
		},
		mutate: func(asset model.Asset, st ActiveState) map[string]interface{} {
			return map[string]interface{}{"status": constant.StatusLeased}
		},
	})
}

func (s *lifecycleService) LeaseReturn(req dto.LeaseReturnForCreate) (dto.TransitionResult, error) {
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpLeaseReturn,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.LeaseReturn{
				ID:         utils.UUID(),
				AssetID:    asset.ID,
				LeaseID:    st.ActiveLease.ID,
				ReturnDate: utils.StringToJSONTime(req.ReturnDate),
				Condition:  req.Condition,
				Created:    utils.NowJsonTime(),
			}
			return o, repository.LeaseReturnDao.Create(ctx, &o)
		},
		mutate: func(asset model.Asset, st ActiveState) map[string]interface{} {
			return map[string]interface{}{"status": constant.StatusAvailable}
		},
	})
}

func (s *lifecycleService) Dispose(req dto.DisposeForCreate) (dto.TransitionResult, error) {
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpDispose,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.Disposal{
				ID:            utils.UUID(),
				AssetID:       asset.ID,
				DisposeReason: req.DisposeReason,
				DisposeDate:   utils.StringToJSONTime(req.DisposeDate),
				SalvageValue:  req.SalvageValue,
				Notes:         req.Notes,
				Created:       utils.NowJsonTime(),
			}
			return o, repository.DisposalDao.Create(ctx, &o)
		},
		mutate: func(asset model.Asset, st ActiveState) map[string]interface{} {
			// the disposal method string becomes the asset status
			return map[string]interface{}{"status": req.DisposeReason}
		},
	})
}

func (s *lifecycleService) Maintenance(req dto.MaintenanceForCreate) (dto.TransitionResult, error) {
	if req.MaintenanceStatus != constant.MaintenanceScheduled &&
		req.MaintenanceStatus != constant.MaintenanceInProgress &&
		req.MaintenanceStatus != constant.MaintenanceCompleted &&
		req.MaintenanceStatus != constant.MaintenanceCancelled {
		return dto.TransitionResult{}, errs.ErrMaintenanceUnknown
	}
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpMaintenance,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.Maintenance{
				ID:                utils.UUID(),
				AssetID:           asset.ID,
				Title:             req.Title,
				MaintenanceStatus: req.MaintenanceStatus,
				Cost:              req.Cost,
				Notes:             req.Notes,
				Created:           utils.NowJsonTime(),
			}
			if req.DueDate != "" {
				o.DueDate = utils.StringToJSONTime(req.DueDate)
			}
			if req.CompletedDate != "" {
				o.CompletedDate = utils.StringToJSONTime(req.CompletedDate)
			}
			return o, repository.MaintenanceDao.Create(ctx, &o)
		},
		mutate: func(asset model.Asset, st ActiveState) map[string]interface{} {
			// Scheduled and In progress park the asset in Maintenance,
			// Completed and Cancelled release it
			switch req.MaintenanceStatus {
			case constant.MaintenanceScheduled, constant.MaintenanceInProgress:
				return map[string]interface{}{"status": constant.StatusMaintenance}
			default:
				return map[string]interface{}{"status": constant.StatusAvailable}
			}
		},
	})
}

// Reserve appends a reservation without touching the asset status.
func (s *lifecycleService) Reserve(req dto.ReserveForCreate) (dto.TransitionResult, error) {
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpReserve,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.Reservation{
				ID:             utils.UUID(),
				AssetID:        asset.ID,
				EmployeeUserID: req.EmployeeUserID,
				StartDate:      utils.StringToJSONTime(req.StartDate),
				Notes:          req.Notes,
				Created:        utils.NowJsonTime(),
			}
			if req.EndDate != "" {
				o.EndDate = utils.StringToJSONTime(req.EndDate)
			}
			return o, repository.ReservationDao.Create(ctx, &o)
		},
	})
}

func (s *lifecycleService) Move(req dto.MoveForCreate) (dto.TransitionResult, error) {
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpMove,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.Move{
				ID:             utils.UUID(),
				AssetID:        asset.ID,
				FromSite:       asset.Site,
				FromLocation:   asset.Location,
				FromDepartment: asset.Department,
				ToSite:         req.ToSite,
				ToLocation:     req.ToLocation,
				ToDepartment:   req.ToDepartment,
				MoveDate:       utils.StringToJSONTime(req.MoveDate),
				Notes:          req.Notes,
				Created:        utils.NowJsonTime(),
			}
			return o, repository.MoveDao.Create(ctx, &o)
		},
		mutate: func(asset model.Asset, st ActiveState) map[string]interface{} {
			fields := map[string]interface{}{}
			if req.ToSite != "" {
				fields["site"] = req.ToSite
			}
			if req.ToLocation != "" {
				fields["location"] = req.ToLocation
			}
			if req.ToDepartment != "" {
				fields["department"] = req.ToDepartment
			}
			return fields
		},
	})
}

func (s *lifecycleService) Audit(req dto.AuditForCreate) (dto.TransitionResult, error) {
	return s.run(req.AssetIds, transitionOp{
		kind: constant.OpAudit,
		record: func(ctx context.Context, asset model.Asset, st ActiveState) (interface{}, error) {
			o := model.AuditHistory{
				ID:        utils.UUID(),
				AssetID:   asset.ID,
				Auditor:   req.Auditor,
				AuditDate: utils.StringToJSONTime(req.AuditDate),
				Note:      req.Note,
				Created:   utils.NowJsonTime(),
			}
			return o, repository.AuditHistoryDao.Create(ctx, &o)
		},
	})
}

// SoftDeleteAsset flags the asset. Open checkouts or leases block the
// delete so history stays resolvable.
func (s *lifecycleService) SoftDeleteAsset(id string) error {
	return global.DBConn.Transaction(func(tx *gorm.DB) error {
		ctx := s.Context(tx)
		asset, err := repository.AssetDao.FindByIdForUpdate(ctx, id)
		if err == gorm.ErrRecordNotFound {
			// distinguish an asset already in the purge queue from one
			// that never existed
			if prior, e2 := repository.AssetDao.FindByIdAny(ctx, id); e2 == nil && prior.IsDeleted {
				return errs.ErrAssetDeleted
			}
			return errs.ErrAssetNotFound
		}
		if err != nil {
			return err
		}
		st, err := s.loadActiveState(ctx, asset.ID)
		if err != nil {
			return err
		}
		if st.ActiveCheckout != nil {
			return errs.ErrAlreadyCheckedOut
		}
		if st.ActiveLease != nil {
			return errs.ErrActiveLeaseExists
		}
		return repository.AssetDao.SoftDeleteById(ctx, id)
	})
}

// notifyActivity pushes the committed operation to websocket subscribers.
// Best effort, a slow consumer never blocks the request.
func notifyActivity(kind string, assetIds []string) {
	if ActivityHub == nil {
		return
	}
	select {
	case ActivityHub.Broadcast <- ActivityEvent{Kind: kind, AssetIds: assetIds, At: utils.NowJsonTime()}:
	default:
		log.Debugf("activity event dropped, hub busy: %s", kind)
	}
}
