package api

import (
	"github.com/labstack/echo/v4"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

type H map[string]interface{}

func Fail(c echo.Context, code int, message string) error {
	return c.JSON(200, H{
		"code":    code,
		"message": message,
	})
}

func FailWithData(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(200, H{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

// FailWithDataOperate also appends an operate log row. message goes to
// the client, operate into the log.
func FailWithDataOperate(c echo.Context, code int, message, operate string, data interface{}) error {
	if operate != "" {
		writeOperateLog(c, operate, constant.FailFlag)
	}
	return c.JSON(200, H{
		"code":    code,
		"message": message,
		"operate": operate,
		"data":    data,
	})
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(200, H{
		"code":    1,
		"message": "success",
		"data":    data,
	})
}

func SuccessWithOperate(c echo.Context, operate string, data interface{}) error {
	if operate != "" {
		writeOperateLog(c, operate, constant.SuccessFlag)
	}
	return c.JSON(200, H{
		"code":    1,
		"message": "success",
		"operate": operate,
		"data":    data,
	})
}

func NotFound(c echo.Context, message string) error {
	return c.JSON(200, H{
		"code":    -1,
		"message": message,
	})
}

func GetToken(c echo.Context) string {
	token := c.Request().Header.Get(constant.Token)
	if len(token) > 0 {
		return token
	}
	return c.QueryParam(constant.Token)
}

func BuildCacheKeyByToken(token string) string {
	return constant.CacheKeyAuthority + token
}

func GetCurrentAccount(c echo.Context) (model.User, bool) {
	token := GetToken(c)
	get, b := global.Cache.Get(BuildCacheKeyByToken(token))
	if b {
		return get.(global.Authorization).User, true
	}
	return model.User{}, false
}

// HasPermission allows admins everywhere and managers inside their own
// department subtree.
func HasPermission(c echo.Context, departmentId int64) bool {
	account, found := GetCurrentAccount(c)
	if !found {
		return false
	}
	if constant.SystemAdmin == account.RoleName {
		return true
	}
	if constant.Manager != account.RoleName {
		return false
	}
	if account.DepartmentID == departmentId {
		return true
	}
	var ids []int64
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.DepartmentDao.GetChildDepIds(ctx, account.DepartmentID, &ids); err != nil {
		log.Errorf("DB Error: %v", err)
		return false
	}
	for _, id := range ids {
		if id == departmentId {
			return true
		}
	}
	return false
}

// writeOperateLog records who did what from where. Best effort, a log
// insert failure never fails the request.
func writeOperateLog(c echo.Context, content, result string) {
	account, _ := GetCurrentAccount(c)
	o := model.OperateLog{
		Created:         utils.NowJsonTime(),
		LogTypes:        "operate",
		LogContents:     content,
		Users:           account.Username,
		Names:           account.Nickname,
		Ip:              c.RealIP(),
		ClientUserAgent: c.Request().UserAgent(),
		Result:          result,
	}
	ctx := service.ContextWithDB(global.DBConn)
	if err := repository.OperateLogDao.Create(ctx, &o); err != nil {
		log.Errorf("DB Error: %v", err)
	}
}
