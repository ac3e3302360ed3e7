package model

import (
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

type OperateLog struct {
	ID              int            `gorm:"type:int;primary_key;not null;AUTO_INCREMENT;comment:log id" json:"id"`
	Created         utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:time" json:"created"`
	LogTypes        string         `gorm:"type:varchar(16);not null;default:'';comment:log type" json:"logTypes"`
	LogContents     string         `gorm:"type:varchar(2048);not null;comment:log content" json:"logContents"`
	Users           string         `gorm:"type:varchar(64);not null;comment:username" json:"users"`
	Names           string         `gorm:"type:varchar(64);not null;comment:display name" json:"names"`
	Ip              string         `gorm:"type:varchar(64);not null;comment:source ip" json:"ip"`
	ClientUserAgent string         `gorm:"type:varchar(512);not null;default:'';comment:client user agent" json:"clientUserAgent"`
	Result          string         `gorm:"type:varchar(8);not null;comment:operation result" json:"result"`
}

func (r *OperateLog) TableName() string {
	return "operate_logs"
}
