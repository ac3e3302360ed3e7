package model

import (
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

type Asset struct {
	ID            string         `gorm:"type:varchar(128);primary_key;not null;comment:asset id" json:"id" label:"asset id"`
	AssetTagID    string         `gorm:"type:varchar(64);unique;not null;comment:asset tag" json:"assetTagId" label:"[asset tag input]" validate:"required,max=64"`
	Name          string         `gorm:"type:varchar(128);not null;comment:asset name" json:"name" label:"[asset name input]" validate:"required,max=128"`
	Description   string         `gorm:"type:varchar(4096);default:'';comment:description" json:"description" label:"[description input]" validate:"max=4096"`
	CategoryID    string         `gorm:"type:varchar(128);index;default:'';comment:category id" json:"categoryId" label:"category id"`
	Category      string         `gorm:"type:varchar(64);default:'';comment:category name" json:"category" label:"category name"`
	DepartmentID  int64          `gorm:"type:bigint;index;default:0;comment:department id" json:"departmentId" label:"department id"`
	Department    string         `gorm:"type:varchar(64);default:'';comment:department name" json:"department" label:"department name"`
	Site          string         `gorm:"type:varchar(64);default:'';comment:site name" json:"site" label:"site name"`
	Location      string         `gorm:"type:varchar(128);default:'';comment:location" json:"location" label:"location"`
	Status        string         `gorm:"type:varchar(32);index;not null;default:'Available';comment:current status" json:"status" label:"status"`
	SerialNo      string         `gorm:"type:varchar(128);default:'';comment:serial number" json:"serialNo" label:"[serial number input]" validate:"max=128"`
	Brand         string         `gorm:"type:varchar(64);default:'';comment:brand" json:"brand" label:"brand" validate:"max=64"`
	PurchaseDate  utils.JsonTime `gorm:"type:datetime(3);default:null;comment:purchase date" json:"purchaseDate" label:"purchase date"`
	PurchaseCost  float64        `gorm:"type:decimal(12,2);default:0;comment:purchase cost" json:"purchaseCost" label:"purchase cost"`
	PhotoKey      string         `gorm:"type:varchar(512);default:'';comment:photo object key" json:"photoKey" label:"photo object key"`
	DocumentKey   string         `gorm:"type:varchar(512);default:'';comment:document object key" json:"documentKey" label:"document object key"`
	CurrentStock  int            `gorm:"type:int;default:0;comment:current stock of stockable asset" json:"currentStock" label:"current stock"`
	MinStockLevel int            `gorm:"type:int;default:0;comment:low stock threshold" json:"minStockLevel" label:"min stock level"`
	IsDeleted     bool           `gorm:"type:tinyint(1);index;not null;default:0;comment:soft delete flag" json:"isDeleted" label:"soft delete flag"`
	DeletedAt     utils.JsonTime `gorm:"type:datetime(3);default:null;comment:soft delete time" json:"deletedAt" label:"soft delete time"`
	Created       utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created" label:"create time"`
	CreatedBy     string         `gorm:"type:varchar(64);default:'';comment:creator" json:"createdBy" label:"creator"`
}

func (r *Asset) TableName() string {
	return "assets"
}

// IsStockable reports whether the asset tracks stock levels. Low stock
// filtering only applies to stockable assets.
func (r *Asset) IsStockable() bool {
	return r.MinStockLevel > 0
}

// IsLowStock compares two columns of the same row, which is why the
// inventory report filters in memory after the fetch.
func (r *Asset) IsLowStock() bool {
	return r.IsStockable() && r.CurrentStock <= r.MinStockLevel
}
