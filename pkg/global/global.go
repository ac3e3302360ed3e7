package global

import (
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/cache"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/config"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var (
	Config *config.Config
	DBConn *gorm.DB
	Cache  *cache.Service
	Cron   *cron.Cron
)

// Authorization is the cached session payload, keyed by token.
type Authorization struct {
	Token          string
	Remember       bool
	User           model.User
	LoginTime      utils.JsonTime
	LastActiveTime utils.JsonTime
	LoginAddress   string
}
