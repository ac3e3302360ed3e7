package repository

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

// The remaining history kinds share the same repository shape: append one
// row, page for the feed, count for the feed totals.

type MoveRepository struct {
	baseRepository
}

func (r *MoveRepository) Create(ctx context.Context, o *model.Move) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *MoveRepository) FindPage(ctx context.Context, offset, limit int) (o []model.Move, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *MoveRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.Move{}).Count(&total).Error
	return
}

type ReservationRepository struct {
	baseRepository
}

func (r *ReservationRepository) Create(ctx context.Context, o *model.Reservation) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *ReservationRepository) FindById(ctx context.Context, id string) (o model.Reservation, err error) {
	err = r.GetDB(ctx).Where("id = ?", id).First(&o).Error
	return
}

// UpdateDates is one of the two narrow admin edits on history rows.
func (r *ReservationRepository) UpdateDates(ctx context.Context, id string, start, end utils.JsonTime, notes string) error {
	return r.GetDB(ctx).Model(&model.Reservation{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_date": start,
			"end_date":   end,
			"notes":      notes,
		}).Error
}

func (r *ReservationRepository) FindPage(ctx context.Context, offset, limit int) (o []model.Reservation, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *ReservationRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.Reservation{}).Count(&total).Error
	return
}

type DisposalRepository struct {
	baseRepository
}

func (r *DisposalRepository) Create(ctx context.Context, o *model.Disposal) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *DisposalRepository) CountByAssetId(ctx context.Context, assetId string) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.Disposal{}).Where("asset_id = ?", assetId).Count(&total).Error
	return
}

func (r *DisposalRepository) FindInWindow(ctx context.Context, start, end string) (o []model.Disposal, err error) {
	err = r.GetDB(ctx).
		Where("created >= ? and created < date_add(?, interval 1 day)", start, end).
		Order("created").Find(&o).Error
	return
}

func (r *DisposalRepository) FindPage(ctx context.Context, offset, limit int) (o []model.Disposal, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *DisposalRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.Disposal{}).Count(&total).Error
	return
}

type MaintenanceRepository struct {
	baseRepository
}

func (r *MaintenanceRepository) Create(ctx context.Context, o *model.Maintenance) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *MaintenanceRepository) FindInWindow(ctx context.Context, start, end string) (o []model.Maintenance, err error) {
	err = r.GetDB(ctx).
		Where("created >= ? and created < date_add(?, interval 1 day)", start, end).
		Order("created").Find(&o).Error
	return
}

func (r *MaintenanceRepository) FindPage(ctx context.Context, offset, limit int) (o []model.Maintenance, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *MaintenanceRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.Maintenance{}).Count(&total).Error
	return
}

type AuditHistoryRepository struct {
	baseRepository
}

func (r *AuditHistoryRepository) Create(ctx context.Context, o *model.AuditHistory) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *AuditHistoryRepository) FindById(ctx context.Context, id string) (o model.AuditHistory, err error) {
	err = r.GetDB(ctx).Where("id = ?", id).First(&o).Error
	return
}

// UpdateNote is the other narrow admin edit.
func (r *AuditHistoryRepository) UpdateNote(ctx context.Context, id, note string) error {
	return r.GetDB(ctx).Model(&model.AuditHistory{}).Where("id = ?", id).Update("note", note).Error
}

func (r *AuditHistoryRepository) FindPage(ctx context.Context, offset, limit int) (o []model.AuditHistory, err error) {
	err = r.GetDB(ctx).Order("created desc, id desc").Offset(offset).Limit(limit).Find(&o).Error
	return
}

func (r *AuditHistoryRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.AuditHistory{}).Count(&total).Error
	return
}
