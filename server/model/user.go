package model

import (
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

type User struct {
	ID           string         `gorm:"type:varchar(128);primary_key;not null;comment:user id" json:"id"`
	Username     string         `gorm:"type:varchar(64);unique;not null;comment:login name" json:"username" label:"[username input]" validate:"required,max=64"`
	Password     string         `gorm:"type:varchar(128);not null;comment:bcrypt hash" json:"-"`
	Nickname     string         `gorm:"type:varchar(64);default:'';comment:display name" json:"nickname" validate:"max=64"`
	Mail         string         `gorm:"type:varchar(128);default:'';comment:mail address" json:"mail" validate:"omitempty,email"`
	RoleName     string         `gorm:"type:varchar(16);not null;default:'staff';comment:admin/manager/staff" json:"roleName"`
	DepartmentID int64          `gorm:"type:bigint;index;default:0;comment:department id" json:"departmentId"`
	Created      utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *User) TableName() string {
	return "users"
}
