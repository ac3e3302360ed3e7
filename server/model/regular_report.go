package model

import "github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"

type RegularReport struct {
	ID            string `gorm:"type:varchar(128);primary_key;not null;comment:report policy id" json:"id"`
	Name          string `gorm:"type:varchar(64);unique;not null;comment:policy name" json:"name" validate:"required,max=64"`
	IsAsset       *bool  `gorm:"type:tinyint(1);default:0;comment:include asset listing" json:"isAsset"`
	IsCheckout    *bool  `gorm:"type:tinyint(1);default:0;comment:include checkout activity" json:"isCheckout"`
	IsLease       *bool  `gorm:"type:tinyint(1);default:0;comment:include lease activity" json:"isLease"`
	IsMaintenance *bool  `gorm:"type:tinyint(1);default:0;comment:include maintenance summary" json:"isMaintenance"`
	IsDisposal    *bool  `gorm:"type:tinyint(1);default:0;comment:include disposal summary" json:"isDisposal"`
	IsLowStock    *bool  `gorm:"type:tinyint(1);default:0;comment:include low stock inventory" json:"isLowStock"`
	PeriodicType  string `gorm:"type:varchar(16);not null;comment:day/week/month" json:"periodicType"`
	Periodic      uint   `gorm:"type:int;not null;default:1;comment:weekday 1-7 or day of month 1-28" json:"periodic"`
	FileType      string `gorm:"type:varchar(8);not null;default:'pdf';comment:pdf/xlsx/csv/html" json:"fileType"`
	Recipients    string `gorm:"type:varchar(1024);not null;comment:comma separated mail addresses" json:"recipients" validate:"required,max=1024"`
	Description   string `gorm:"type:varchar(128);default:'';comment:policy description" json:"description" validate:"max=128"`
}

func (r *RegularReport) TableName() string {
	return "regular_reports"
}

type RegularReportLog struct {
	ID          string         `gorm:"type:varchar(128);primary_key;not null;comment:log id" json:"id"`
	Name        string         `gorm:"type:varchar(64);not null;comment:policy name" json:"name"`
	ExecuteTime utils.JsonTime `gorm:"type:datetime(3);not null;comment:execute time" json:"executeTime"`
	ReportType  string         `gorm:"type:varchar(128);not null;comment:report sections" json:"reportType"`
	FileName    string         `gorm:"type:varchar(64);not null;comment:attachment file name" json:"fileName"`
}

func (r *RegularReportLog) TableName() string {
	return "regular_reports_log"
}
