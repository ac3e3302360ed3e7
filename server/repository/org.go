package repository

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
)

type DepartmentRepository struct {
	baseRepository
}

func (r *DepartmentRepository) Create(ctx context.Context, o *model.Department) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *DepartmentRepository) FindById(ctx context.Context, id int64) (o model.Department, err error) {
	err = r.GetDB(ctx).Where("id = ?", id).First(&o).Error
	return
}

func (r *DepartmentRepository) FindAll(ctx context.Context) (o []model.Department, err error) {
	err = r.GetDB(ctx).Order("id").Find(&o).Error
	return
}

func (r *DepartmentRepository) FindByParentId(ctx context.Context, parentId int64) (o []model.Department, err error) {
	err = r.GetDB(ctx).Where("parent_id = ?", parentId).Find(&o).Error
	return
}

func (r *DepartmentRepository) Update(ctx context.Context, o *model.Department) error {
	return r.GetDB(ctx).Updates(o).Error
}

func (r *DepartmentRepository) DeleteById(ctx context.Context, id int64) error {
	return r.GetDB(ctx).Where("id = ?", id).Delete(&model.Department{}).Error
}

// GetChildDepIds collects id and every descendant id, used to scope asset
// queries to the caller's department subtree.
func (r *DepartmentRepository) GetChildDepIds(ctx context.Context, id int64, ids *[]int64) error {
	*ids = append(*ids, id)
	children, err := r.FindByParentId(ctx, id)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := r.GetChildDepIds(ctx, child.ID, ids); err != nil {
			return err
		}
	}
	return nil
}

type SiteRepository struct {
	baseRepository
}

func (r *SiteRepository) Create(ctx context.Context, o *model.Site) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *SiteRepository) FindAll(ctx context.Context) (o []model.Site, err error) {
	err = r.GetDB(ctx).Order("name").Find(&o).Error
	return
}

func (r *SiteRepository) Update(ctx context.Context, o *model.Site) error {
	return r.GetDB(ctx).Updates(o).Error
}

func (r *SiteRepository) DeleteById(ctx context.Context, id string) error {
	return r.GetDB(ctx).Where("id = ?", id).Delete(&model.Site{}).Error
}

type LocationRepository struct {
	baseRepository
}

func (r *LocationRepository) Create(ctx context.Context, o *model.Location) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *LocationRepository) FindAll(ctx context.Context) (o []model.Location, err error) {
	err = r.GetDB(ctx).Order("name").Find(&o).Error
	return
}

func (r *LocationRepository) FindBySiteId(ctx context.Context, siteId string) (o []model.Location, err error) {
	err = r.GetDB(ctx).Where("site_id = ?", siteId).Order("name").Find(&o).Error
	return
}

func (r *LocationRepository) Update(ctx context.Context, o *model.Location) error {
	return r.GetDB(ctx).Updates(o).Error
}

func (r *LocationRepository) DeleteById(ctx context.Context, id string) error {
	return r.GetDB(ctx).Where("id = ?", id).Delete(&model.Location{}).Error
}

type CategoryRepository struct {
	baseRepository
}

func (r *CategoryRepository) Create(ctx context.Context, o *model.Category) error {
	return r.GetDB(ctx).Create(o).Error
}

func (r *CategoryRepository) FindById(ctx context.Context, id string) (o model.Category, err error) {
	err = r.GetDB(ctx).Where("id = ?", id).First(&o).Error
	return
}

func (r *CategoryRepository) FindAll(ctx context.Context) (o []model.Category, err error) {
	err = r.GetDB(ctx).Order("name").Find(&o).Error
	return
}

func (r *CategoryRepository) Update(ctx context.Context, o *model.Category) error {
	return r.GetDB(ctx).Updates(o).Error
}

func (r *CategoryRepository) DeleteById(ctx context.Context, id string) error {
	return r.GetDB(ctx).Where("id = ?", id).Delete(&model.Category{}).Error
}
