package dto

import "github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"

type Counter struct {
	AssetCount       int64 `json:"assetCount"`
	CheckedOutCount  int64 `json:"checkedOutCount"`
	LeasedCount      int64 `json:"leasedCount"`
	MaintenanceCount int64 `json:"maintenanceCount"`
	DisposedCount    int64 `json:"disposedCount"`
	ReservationCount int64 `json:"reservationCount"`
}

// GroupCount is the shape of every group-by aggregate: a label, a row
// count and the summed purchase cost of the group.
type GroupCount struct {
	Label string  `json:"label"`
	Cnt   int64   `json:"cnt"`
	Cost  float64 `json:"cost"`
}

type MonthCount struct {
	Month string `json:"month"`
	Cnt   int64  `json:"cnt"`
}

type SystemUsage struct {
	CpuPercent  float64 `json:"cpuPercent"`
	MemPercent  float64 `json:"memPercent"`
	DiskPercent float64 `json:"diskPercent"`
	DiskUsed    string  `json:"diskUsed"`
}

type OverdueCheckout struct {
	AssetID            string         `json:"assetId"`
	AssetTagID         string         `json:"assetTagId"`
	AssetName          string         `json:"assetName"`
	EmployeeUserID     string         `json:"employeeUserId"`
	ExpectedReturnDate utils.JsonTime `json:"expectedReturnDate"`
}
