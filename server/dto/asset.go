package dto

import (
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

type AssetForSearch struct {
	Auto          string
	AssetTagID    string
	Name          string
	Category      string
	Department    string
	Site          string
	Status        string
	DepartmentIds []int64
	PageIndex     int
	PageSize      int
}

type AssetForPage struct {
	ID           string         `json:"id"`
	AssetTagID   string         `json:"assetTagId"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Department   string         `json:"department"`
	Site         string         `json:"site"`
	Location     string         `json:"location"`
	Status       string         `json:"status"`
	PurchaseCost float64        `json:"purchaseCost"`
	Created      utils.JsonTime `json:"created"`
}

type AssetForCreate struct {
	AssetTagID    string  `json:"assetTagId" label:"[asset tag input]" validate:"required,max=64"`
	Name          string  `json:"name" label:"[asset name input]" validate:"required,max=128"`
	Description   string  `json:"description" validate:"max=4096"`
	CategoryID    string  `json:"categoryId"`
	DepartmentID  int64   `json:"departmentId"`
	Site          string  `json:"site" validate:"max=64"`
	Location      string  `json:"location" validate:"max=128"`
	SerialNo      string  `json:"serialNo" validate:"max=128"`
	Brand         string  `json:"brand" validate:"max=64"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchaseCost  float64 `json:"purchaseCost" validate:"gte=0"`
	CurrentStock  int     `json:"currentStock" validate:"gte=0"`
	MinStockLevel int     `json:"minStockLevel" validate:"gte=0"`
}

type AssetForUpdate struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"max=128"`
	Description   string  `json:"description" validate:"max=4096"`
	CategoryID    string  `json:"categoryId"`
	DepartmentID  int64   `json:"departmentId"`
	Site          string  `json:"site" validate:"max=64"`
	Location      string  `json:"location" validate:"max=128"`
	SerialNo      string  `json:"serialNo" validate:"max=128"`
	Brand         string  `json:"brand" validate:"max=64"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchaseCost  float64 `json:"purchaseCost" validate:"gte=0"`
	CurrentStock  int     `json:"currentStock" validate:"gte=0"`
	MinStockLevel int     `json:"minStockLevel" validate:"gte=0"`
}

// AssetForExport field order defines the export column order.
type AssetForExport struct {
	AssetTagID   string
	Name         string
	Category     string
	Department   string
	Site         string
	Location     string
	Status       string
	SerialNo     string
	Brand        string
	PurchaseCost float64
	Created      utils.JsonTime
}

type AssetStockForPage struct {
	ID            string `json:"id"`
	AssetTagID    string `json:"assetTagId"`
	Name          string `json:"name"`
	Site          string `json:"site"`
	CurrentStock  int    `json:"currentStock"`
	MinStockLevel int    `json:"minStockLevel"`
}
