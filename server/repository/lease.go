package repository

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"

	"gorm.io/gorm"
)

type LeaseRepository struct {
	baseRepository
}

func (r *LeaseRepository) Create(ctx context.Context, o *model.Lease) error {
	return r.GetDB(ctx).Create(o).Error
}

// FindActiveByAssetId returns the lease with no lease return row yet.
// A lease whose end date is null or in the future and that has not been
// closed counts as active.
func (r *LeaseRepository) FindActiveByAssetId(ctx context.Context, assetId string) (o model.Lease, err error) {
	err = r.GetDB(ctx).
		Where("asset_id = ? and id not in (?)", assetId,
			r.GetDB(ctx).Model(&model.LeaseReturn{}).Select("lease_id").Where("asset_id = ?", assetId)).
		Order("lease_start_date desc, created desc").
		First(&o).Error
	return
}

func (r *LeaseRepository) HasActive(ctx context.Context, assetId string) (bool, error) {
	_, err := r.FindActiveByAssetId(ctx, assetId)
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *LeaseRepository) FindPage(ctx context.Context, offset, limit int) (o []model.Lease, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *LeaseRepository) FindInWindow(ctx context.Context, start, end string) (o []model.Lease, err error) {
	err = r.GetDB(ctx).
		Where("created >= ? and created < date_add(?, interval 1 day)", start, end).
		Order("created").Find(&o).Error
	return
}

func (r *LeaseRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.Lease{}).Count(&total).Error
	return
}

type LeaseReturnRepository struct {
	baseRepository
}

func (r *LeaseReturnRepository) Create(ctx context.Context, o *model.LeaseReturn) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *LeaseReturnRepository) FindByLeaseId(ctx context.Context, leaseId string) (o model.LeaseReturn, err error) {
	err = r.GetDB(ctx).Where("lease_id = ?", leaseId).First(&o).Error
	return
}

func (r *LeaseReturnRepository) FindPage(ctx context.Context, offset, limit int) (o []model.LeaseReturn, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *LeaseReturnRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.LeaseReturn{}).Count(&total).Error
	return
}
