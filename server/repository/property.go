package repository

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"

	"gorm.io/gorm/clause"
)

type PropertyRepository struct {
	baseRepository
}

func (r *PropertyRepository) FindByName(ctx context.Context, name string) (o model.Property, err error) {
	err = r.GetDB(ctx).Where("name = ?", name).First(&o).Error
	return
}

func (r *PropertyRepository) FindAllMap(ctx context.Context) map[string]string {
	var items []model.Property
	if err := r.GetDB(ctx).Find(&items).Error; err != nil {
		return map[string]string{}
	}
	propertiesMap := make(map[string]string, len(items))
	for _, item := range items {
		propertiesMap[item.Name] = item.Value
	}
	return propertiesMap
}

func (r *PropertyRepository) Upsert(ctx context.Context, o *model.Property) error {
	return r.GetDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(o).Error
}
