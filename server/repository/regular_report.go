package repository

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
)

type RegularReportRepository struct {
	baseRepository
}

func (r *RegularReportRepository) Create(ctx context.Context, o *model.RegularReport) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *RegularReportRepository) FindById(ctx context.Context, id string) (o model.RegularReport, err error) {
	err = r.GetDB(ctx).Where("id = ?", id).First(&o).Error
	return
}

func (r *RegularReportRepository) FindByConditions(ctx context.Context, auto, name, description string) (o []model.RegularReport, err error) {
	db := r.GetDB(ctx).Model(&model.RegularReport{})
	if auto != "" {
		db = db.Where("name like ? or description like ?", "%"+auto+"%", "%"+auto+"%")
	} else {
		if name != "" {
			db = db.Where("name like ?", "%"+name+"%")
		}
		if description != "" {
			db = db.Where("description like ?", "%"+description+"%")
		}
	}
	err = db.Order("name").Find(&o).Error
	return
}

func (r *RegularReportRepository) FindAll(ctx context.Context) (o []model.RegularReport, err error) {
	err = r.GetDB(ctx).Find(&o).Error
	return
}

func (r *RegularReportRepository) Update(ctx context.Context, o *model.RegularReport) error {
	return r.GetDB(ctx).Updates(o).Error
}

func (r *RegularReportRepository) DeleteById(ctx context.Context, id string) error {
	return r.GetDB(ctx).Where("id = ?", id).Delete(&model.RegularReport{}).Error
}

func (r *RegularReportRepository) CreateLog(ctx context.Context, o *model.RegularReportLog) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *RegularReportRepository) FindLogsForPaging(ctx context.Context, pageIndex, pageSize int) (o []model.RegularReportLog, total int64, err error) {
	db := r.GetDB(ctx).Model(&model.RegularReportLog{})
	err = db.Count(&total).Error
	if err != nil {
		return
	}
	err = db.Order("execute_time desc").Offset((pageIndex - 1) * pageSize).Limit(pageSize).Find(&o).Error
	return
}
