package repository

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
)

type UserRepository struct {
	baseRepository
}

func (r *UserRepository) Create(ctx context.Context, o *model.User) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *UserRepository) FindById(ctx context.Context, id string) (o model.User, err error) {
	err = r.GetDB(ctx).Where("id = ?", id).First(&o).Error
	return
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (o model.User, err error) {
	err = r.GetDB(ctx).Where("username = ?", username).First(&o).Error
	return
}

func (r *UserRepository) FindAll(ctx context.Context) (o []model.User, err error) {
	err = r.GetDB(ctx).Order("username").Find(&o).Error
	return
}

func (r *UserRepository) Count(ctx context.Context) (total int64, err error) {
	err = r.GetDB(ctx).Model(&model.User{}).Count(&total).Error
	return
}
