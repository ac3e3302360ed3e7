package repository

import (
	"context"
	"time"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
)

type OperateLogRepository struct {
	baseRepository
}

func (r *OperateLogRepository) Create(ctx context.Context, o *model.OperateLog) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *OperateLogRepository) FindForPaging(ctx context.Context, pageIndex, pageSize int, auto, users, result string) (o []model.OperateLog, total int64, err error) {
	db := r.GetDB(ctx).Model(&model.OperateLog{})
	if auto != "" {
		db = db.Where("users like ? or names like ? or log_contents like ?", "%"+auto+"%", "%"+auto+"%", "%"+auto+"%")
	} else {
		if users != "" {
			db = db.Where("users like ?", "%"+users+"%")
		}
		if result != "" {
			db = db.Where("result = ?", result)
		}
	}
	err = db.Count(&total).Error
	if err != nil {
		return
	}
	err = db.Order("created desc").Offset((pageIndex - 1) * pageSize).Limit(pageSize).Find(&o).Error
	return
}

// DeleteOutTimeLogs removes operate logs past the retention window.
func (r *OperateLogRepository) DeleteOutTimeLogs(ctx context.Context, dayLimit int) error {
	limitTime := time.Now().Add(time.Duration(-dayLimit*24) * time.Hour)
	return r.GetDB(ctx).Where("created < ?", limitTime).Delete(&model.OperateLog{}).Error
}
