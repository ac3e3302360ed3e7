package repository

import (
	"context"
	"time"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssetRepository struct {
	baseRepository
}

func (a *AssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	return a.GetDB(ctx).Create(asset).Error
}

func (a *AssetRepository) FindById(ctx context.Context, id string) (asset model.Asset, err error) {
	err = a.GetDB(ctx).Where("id = ? and is_deleted = 0", id).First(&asset).Error
	return
}

func (a *AssetRepository) FindByTagId(ctx context.Context, tagId string) (asset model.Asset, err error) {
	err = a.GetDB(ctx).Where("asset_tag_id = ? and is_deleted = 0", tagId).First(&asset).Error
	return
}

// FindByIdAny loads the asset regardless of the soft delete flag.
func (a *AssetRepository) FindByIdAny(ctx context.Context, id string) (asset model.Asset, err error) {
	err = a.GetDB(ctx).Where("id = ?", id).First(&asset).Error
	return
}

func (a *AssetRepository) FindByIds(ctx context.Context, ids []string) (assets []model.Asset, err error) {
	err = a.GetDB(ctx).Where("id in ?", ids).Find(&assets).Error
	return
}

// FindByIdForUpdate loads the asset row under a row lock so the
// precondition check and the history insert of a transition are serialized
// against concurrent transitions of the same asset. Must be called inside
// a transaction.
func (a *AssetRepository) FindByIdForUpdate(ctx context.Context, id string) (asset model.Asset, err error) {
	err = a.GetDB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? and is_deleted = 0", id).First(&asset).Error
	return
}

func (a *AssetRepository) UpdateById(ctx context.Context, id string, fields map[string]interface{}) error {
	return a.GetDB(ctx).Model(&model.Asset{}).Where("id = ?", id).Updates(fields).Error
}

func (a *AssetRepository) FindForPaging(ctx context.Context, req dto.AssetForSearch) (assets []model.Asset, total int64, err error) {
	db := a.GetDB(ctx).Model(&model.Asset{}).Where("is_deleted = 0")
	if len(req.DepartmentIds) > 0 {
		db = db.Where("department_id in (?)", req.DepartmentIds)
	}
	if req.Auto != "" {
		db = db.Where("asset_tag_id like ? or name like ? or serial_no like ? or category like ?",
			"%"+req.Auto+"%", "%"+req.Auto+"%", "%"+req.Auto+"%", "%"+req.Auto+"%")
	} else {
		if req.AssetTagID != "" {
			db = db.Where("asset_tag_id like ?", "%"+req.AssetTagID+"%")
		}
		if req.Name != "" {
			db = db.Where("name like ?", "%"+req.Name+"%")
		}
		if req.Category != "" {
			db = db.Where("category like ?", "%"+req.Category+"%")
		}
		if req.Department != "" {
			db = db.Where("department like ?", "%"+req.Department+"%")
		}
		if req.Site != "" {
			db = db.Where("site like ?", "%"+req.Site+"%")
		}
		if req.Status != "" {
			db = db.Where("status = ?", req.Status)
		}
	}
	err = db.Count(&total).Error
	if err != nil {
		return
	}
	if req.PageIndex > 0 && req.PageSize > 0 {
		db = db.Offset((req.PageIndex - 1) * req.PageSize).Limit(req.PageSize)
	}
	err = db.Order("created desc").Find(&assets).Error
	return
}

func (a *AssetRepository) FindAllForExport(ctx context.Context, departmentIds []int64) (assets []dto.AssetForExport, err error) {
	db := a.GetDB(ctx).Model(&model.Asset{}).
		Select("asset_tag_id, name, category, department, site, location, status, serial_no, brand, purchase_cost, created").
		Where("is_deleted = 0")
	if len(departmentIds) > 0 {
		db = db.Where("department_id in (?)", departmentIds)
	}
	err = db.Order("asset_tag_id").Find(&assets).Error
	return
}

// FindStockable returns every stockable asset; low stock filtering happens
// in the caller because it compares two columns of the same row.
func (a *AssetRepository) FindStockable(ctx context.Context) (assets []model.Asset, err error) {
	err = a.GetDB(ctx).Where("is_deleted = 0 and min_stock_level > 0").Order("asset_tag_id").Find(&assets).Error
	return
}

func (a *AssetRepository) Count(ctx context.Context) (total int64, err error) {
	err = a.GetDB(ctx).Model(&model.Asset{}).Where("is_deleted = 0").Count(&total).Error
	return
}

func (a *AssetRepository) CountByStatus(ctx context.Context, status string) (total int64, err error) {
	err = a.GetDB(ctx).Model(&model.Asset{}).Where("is_deleted = 0 and status = ?", status).Count(&total).Error
	return
}

// SoftDeleteById flags the row; the purge sweep removes it permanently
// after the retention window.
func (a *AssetRepository) SoftDeleteById(ctx context.Context, id string) error {
	return a.GetDB(ctx).Model(&model.Asset{}).Where("id = ? and is_deleted = 0", id).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": utils.NowJsonTime(),
		}).Error
}

// FindPurgeCandidates returns soft deleted assets whose deleted_at is
// older than retentionDays.
func (a *AssetRepository) FindPurgeCandidates(ctx context.Context, retentionDays int) (assets []model.Asset, err error) {
	limit := time.Now().Add(time.Duration(-retentionDays*24) * time.Hour)
	err = a.GetDB(ctx).Where("is_deleted = 1 and deleted_at < ?", limit).Find(&assets).Error
	return
}

// AssetArchive bundles an asset with its full history, serialized before
// the purge removes the rows for good.
type AssetArchive struct {
	Asset        model.Asset
	Checkouts    []model.Checkout
	Checkins     []model.Checkin
	Moves        []model.Move
	Reservations []model.Reservation
	Leases       []model.Lease
	LeaseReturns []model.LeaseReturn
	Disposals    []model.Disposal
	Maintenances []model.Maintenance
	Audits       []model.AuditHistory
}

func (a *AssetRepository) CollectArchive(ctx context.Context, id string) (archive AssetArchive, err error) {
	db := a.GetDB(ctx)
	if err = db.Where("id = ?", id).First(&archive.Asset).Error; err != nil {
		return
	}
	for _, dest := range []interface{}{
		&archive.Checkouts, &archive.Checkins, &archive.Moves, &archive.Reservations,
		&archive.Leases, &archive.LeaseReturns, &archive.Disposals,
		&archive.Maintenances, &archive.Audits,
	} {
		if err = db.Where("asset_id = ?", id).Find(dest).Error; err != nil {
			return
		}
	}
	return
}

// HardDeleteWithHistory removes the asset and every history row that
// references it inside one transaction.
func (a *AssetRepository) HardDeleteWithHistory(ctx context.Context, id string) error {
	return a.GetDB(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.Checkout{}, &model.Checkin{}, &model.Move{}, &model.Reservation{},
			&model.Lease{}, &model.LeaseReturn{}, &model.Disposal{}, &model.Maintenance{},
			&model.AuditHistory{},
		} {
			if err := tx.Where("asset_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&model.Asset{}).Error
	})
}
