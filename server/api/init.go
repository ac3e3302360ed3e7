package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/cache"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

// SetupCache builds the shared in-memory cache, 5 minute default TTL
// with a 1 minute janitor.
func SetupCache() *cache.Service {
	return cache.NewService(5*time.Minute, 1*time.Minute)
}

// MigrateDB creates or upgrades every table.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Asset{}, &model.Checkout{}, &model.Checkin{}, &model.Move{},
		&model.Reservation{}, &model.Lease{}, &model.LeaseReturn{}, &model.Disposal{},
		&model.Maintenance{}, &model.AuditHistory{},
		&model.Department{}, &model.Site{}, &model.Location{}, &model.Category{},
		&model.User{}, &model.OperateLog{}, &model.Property{},
		&model.RegularReport{}, &model.RegularReportLog{},
	)
}

// InitDBData seeds the rows a fresh install needs: the root department,
// the admin account and the property defaults.
func InitDBData() error {
	ctx := service.ContextWithDB(global.DBConn)

	if _, err := repository.DepartmentDao.FindById(ctx, 1); err == gorm.ErrRecordNotFound {
		root := model.Department{ID: 1, Name: "Headquarters", ParentID: -1}
		if err := repository.DepartmentDao.Create(ctx, &root); err != nil {
			return err
		}
		log.Infof("seeded root department")
	} else if err != nil {
		return err
	}

	if _, err := repository.UserDao.FindByUsername(ctx, "admin"); err == gorm.ErrRecordNotFound {
		hashed, err := utils.Encoder.Encode([]byte("admin"))
		if err != nil {
			return err
		}
		admin := model.User{
			ID:           utils.UUID(),
			Username:     "admin",
			Password:     string(hashed),
			Nickname:     "Administrator",
			RoleName:     constant.SystemAdmin,
			DepartmentID: 1,
			Created:      utils.NowJsonTime(),
		}
		if err := repository.UserDao.Create(ctx, &admin); err != nil {
			return err
		}
		log.Infof("seeded admin account, change the default password")
	} else if err != nil {
		return err
	}

	for _, name := range []string{
		constant.MailHost, constant.MailPort, constant.MailUsername, constant.MailPassword,
	} {
		if _, err := repository.PropertyDao.FindByName(ctx, name); err == gorm.ErrRecordNotFound {
			if err := repository.PropertyDao.Upsert(ctx, &model.Property{Name: name, Value: "-"}); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
