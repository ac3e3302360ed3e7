package env

import (
	"fmt"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/config"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func GetDB() *gorm.DB {
	return db
}

func SetupDB() *gorm.DB {
	var logMode logger.Interface
	if config.GlobalCfg.Debug {
		logMode = logger.Default.LogMode(logger.Info)
	} else {
		logMode = logger.Default.LogMode(logger.Silent)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.GlobalCfg.Mysql.Username,
		config.GlobalCfg.Mysql.Password,
		config.GlobalCfg.Mysql.Hostname,
		config.GlobalCfg.Mysql.Port,
		config.GlobalCfg.Mysql.Database,
	)
	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logMode,
	})
	if err != nil {
		log.WithError(err).Errorf("connect database failed: %v", err)
		panic(err)
	}

	sqlDB, err := conn.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
	}

	db = conn
	return conn
}
