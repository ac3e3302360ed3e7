package repository

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"

	"gorm.io/gorm"
)

type CheckoutRepository struct {
	baseRepository
}

func (r *CheckoutRepository) Create(ctx context.Context, o *model.Checkout) error {
	return r.GetDB(ctx).Create(o).Error
}

// FindActiveByAssetId returns the most recent checkout of the asset that
// has no corresponding checkin yet.
func (r *CheckoutRepository) FindActiveByAssetId(ctx context.Context, assetId string) (o model.Checkout, err error) {
	err = r.GetDB(ctx).
		Where("asset_id = ? and id not in (?)", assetId,
			r.GetDB(ctx).Model(&model.Checkin{}).Select("checkout_id").Where("asset_id = ?", assetId)).
		Order("checkout_date desc, created desc").
		First(&o).Error
	return
}

// HasActive reports whether the asset has an open checkout.
func (r *CheckoutRepository) HasActive(ctx context.Context, assetId string) (bool, error) {
	_, err := r.FindActiveByAssetId(ctx, assetId)
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CheckoutRepository) FindByAssetId(ctx context.Context, assetId string) (o []model.Checkout, err error) {
	err = r.GetDB(ctx).Where("asset_id = ?", assetId).Order("checkout_date desc").Find(&o).Error
	return
}

// FindPage fetches one feed page for the k-way activity merge, newest first.
func (r *CheckoutRepository) FindPage(ctx context.Context, offset, limit int) (o []model.Checkout, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *CheckoutRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.Checkout{}).Count(&total).Error
	return
}

// FindInWindow returns checkouts created between start and end, both
// "2006-01-02" date strings, for periodic reports.
func (r *CheckoutRepository) FindInWindow(ctx context.Context, start, end string) (o []model.Checkout, err error) {
	err = r.GetDB(ctx).
		Where("created >= ? and created < date_add(?, interval 1 day)", start, end).
		Order("created").Find(&o).Error
	return
}

// FindOverdue returns open checkouts whose expected return date has passed.
func (r *CheckoutRepository) FindOverdue(ctx context.Context) (o []model.Checkout, err error) {
	err = r.GetDB(ctx).
		Where("expected_return_date is not null and expected_return_date < now()").
		Where("id not in (?)", r.GetDB(ctx).Model(&model.Checkin{}).Select("checkout_id")).
		Order("expected_return_date").
		Find(&o).Error
	return
}

type CheckinRepository struct {
	baseRepository
}

func (r *CheckinRepository) Create(ctx context.Context, o *model.Checkin) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *CheckinRepository) FindByCheckoutId(ctx context.Context, checkoutId string) (o model.Checkin, err error) {
	err = r.GetDB(ctx).Where("checkout_id = ?", checkoutId).First(&o).Error
	return
}

func (r *CheckinRepository) FindPage(ctx context.Context, offset, limit int) (o []model.Checkin, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *CheckinRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.Checkin{}).Count(&total).Error
	return
}
