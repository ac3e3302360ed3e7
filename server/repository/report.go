package repository

import (
	"context"
	"database/sql"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
)

// ReportRepository holds the read-side group-by queries behind the
// dashboards and scheduled reports. Nothing here mutates state.
type ReportRepository struct {
	baseRepository
}

func (r *ReportRepository) CountByGroup(ctx context.Context, column string) (o []dto.GroupCount, err error) {
	// column comes from a fixed whitelist in the service layer, never from
	// user input
	err = r.GetDB(ctx).Model(&model.Asset{}).
		Select(column+" as label, count(*) as cnt, sum(purchase_cost) as cost").
		Where("is_deleted = 0").
		Group(column).
		Order("cnt desc").
		Find(&o).Error
	return
}

func (r *ReportRepository) CheckoutCountByMonth(ctx context.Context, months int) (o []dto.MonthCount, err error) {
	sql := "select date_format(checkout_date,'%Y-%m') as month, count(*) as cnt from checkouts " +
		"where checkout_date >= date_sub(curdate(), interval ? month) group by month order by month"
	err = r.GetDB(ctx).Raw(sql, months).Find(&o).Error
	return
}

func (r *ReportRepository) MaintenanceCostByMonth(ctx context.Context, months int) (o []dto.MonthCount, err error) {
	sql := "select date_format(created,'%Y-%m') as month, sum(cost) as cnt from maintenances " +
		"where created >= date_sub(curdate(), interval ? month) group by month order by month"
	err = r.GetDB(ctx).Raw(sql, months).Find(&o).Error
	return
}

// Summary runs the multi-statement dashboard read inside one ReadCommitted
// transaction so the counters come from a single consistent snapshot per
// statement without holding stronger locks.
func (r *ReportRepository) Summary(ctx context.Context) (counter dto.Counter, err error) {
	tx := r.GetDB(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true})
	if tx.Error != nil {
		return counter, tx.Error
	}
	defer tx.Rollback()

	if err = tx.Model(&model.Asset{}).Where("is_deleted = 0").Count(&counter.AssetCount).Error; err != nil {
		return
	}
	if err = tx.Model(&model.Asset{}).Where("is_deleted = 0 and status = 'Checked out'").Count(&counter.CheckedOutCount).Error; err != nil {
		return
	}
	if err = tx.Model(&model.Asset{}).Where("is_deleted = 0 and status = 'Leased'").Count(&counter.LeasedCount).Error; err != nil {
		return
	}
	if err = tx.Model(&model.Asset{}).Where("is_deleted = 0 and status = 'Maintenance'").Count(&counter.MaintenanceCount).Error; err != nil {
		return
	}
	if err = tx.Model(&model.Disposal{}).Count(&counter.DisposedCount).Error; err != nil {
		return
	}
	if err = tx.Model(&model.Reservation{}).Where("end_date is null or end_date > now()").Count(&counter.ReservationCount).Error; err != nil {
		return
	}
	err = tx.Commit().Error
	return
}
