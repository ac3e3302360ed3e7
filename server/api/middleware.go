package api

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	errs "github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/error"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"

	pkgerrors "github.com/pkg/errors"
)

// ErrorHandler turns errors leaking out of handlers into the JSON
// envelope. Precondition violations map to 400, missing rows to the
// not-found code, exhausted connection retries to 503, everything else
// is a 500 with the cause logged.
func ErrorHandler(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err == nil {
			return nil
		}
		if he, ok := err.(*echo.HTTPError); ok {
			return Fail(c, he.Code, he.Error())
		}
		if errs.IsBusinessErr(err) {
			return Fail(c, 400, err.Error())
		}
		switch pkgerrors.Cause(err) {
		case gorm.ErrRecordNotFound, errs.ErrAssetNotFound, errs.ErrAssetDeleted:
			return NotFound(c, err.Error())
		}
		if repository.IsTransientErr(err) {
			log.Warnf("transient db error on %s: %v", c.Request().RequestURI, err)
			return Fail(c, 503, "database busy, please retry")
		}
		log.Errorf("unhandled error on %s: %v", c.Request().RequestURI, err)
		return Fail(c, 500, "internal error")
	}
}

// skipAuthUrls are reachable without a session token
var skipAuthUrls = []string{"/login", "/cron", "/ws"}

// Auth refreshes the sliding session window on every authenticated
// request and rejects anything without a live token.
func Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uri := c.Request().RequestURI
		if uri == "/" || strings.HasPrefix(uri, "/#") {
			return next(c)
		}
		for i := range skipAuthUrls {
			if strings.HasPrefix(uri, skipAuthUrls[i]) {
				return next(c)
			}
		}

		token := GetToken(c)
		cacheKey := BuildCacheKeyByToken(token)
		auth, found := global.Cache.Get(cacheKey)
		if !found {
			return Fail(c, 401, "session expired, please login again")
		}

		authorization := auth.(global.Authorization)
		authorization.LastActiveTime = utils.NowJsonTime()
		ttl := constant.SessionEffectiveTime
		if authorization.Remember {
			ttl = 30 * 24 * time.Hour
		}
		global.Cache.Set(cacheKey, authorization, ttl)

		return next(c)
	}
}

// CronAuth guards the scheduler endpoint with the shared bearer secret.
func CronAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret := global.Config.Cron.Secret
		if secret == "" {
			return Fail(c, 503, "scheduler secret is not configured")
		}
		header := c.Request().Header.Get("Authorization")
		if header != "Bearer "+secret {
			return Fail(c, 401, "invalid scheduler credential")
		}
		return next(c)
	}
}
