package model

import (
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

type Department struct {
	ID       int64  `gorm:"type:bigint;primary_key;AUTO_INCREMENT;not null;comment:department id" json:"id"`
	Name     string `gorm:"type:varchar(64);not null;comment:department name" json:"name" label:"[department name input]" validate:"required,max=64"`
	ParentID int64  `gorm:"type:bigint;index;default:-1;comment:parent department id, -1 for root" json:"parentId"`
	Desc     string `gorm:"type:varchar(512);default:'';comment:description" json:"desc" validate:"max=512"`
}

func (r *Department) TableName() string {
	return "departments"
}

type Site struct {
	ID      string         `gorm:"type:varchar(128);primary_key;not null;comment:site id" json:"id"`
	Name    string         `gorm:"type:varchar(64);unique;not null;comment:site name" json:"name" label:"[site name input]" validate:"required,max=64"`
	Address string         `gorm:"type:varchar(512);default:'';comment:address" json:"address" validate:"max=512"`
	Created utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *Site) TableName() string {
	return "sites"
}

type Location struct {
	ID      string         `gorm:"type:varchar(128);primary_key;not null;comment:location id" json:"id"`
	SiteID  string         `gorm:"type:varchar(128);index;default:'';comment:owning site" json:"siteId"`
	Name    string         `gorm:"type:varchar(128);not null;comment:location name" json:"name" label:"[location name input]" validate:"required,max=128"`
	Created utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *Location) TableName() string {
	return "locations"
}

type Category struct {
	ID      string         `gorm:"type:varchar(128);primary_key;not null;comment:category id" json:"id"`
	Name    string         `gorm:"type:varchar(64);unique;not null;comment:category name" json:"name" label:"[category name input]" validate:"required,max=64"`
	Created utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *Category) TableName() string {
	return "categories"
}
