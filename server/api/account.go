package api

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

func LoginEndpoint(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Errorf("Bind Error: %v", err)
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}

	req.Username = strings.TrimSpace(req.Username)
	ctx := service.ContextWithDB(global.DBConn)
	user, err := repository.UserDao.FindByUsername(ctx, req.Username)
	if err != nil {
		return NotFound(c, "incorrect username or password")
	}
	if err := utils.Encoder.Match([]byte(user.Password), []byte(req.Password)); err != nil {
		writeOperateLog(c, "login as "+req.Username, constant.FailFlag)
		return Fail(c, 400, "incorrect username or password")
	}

	ttl := constant.SessionEffectiveTime
	if req.Remember {
		ttl = 30 * 24 * time.Hour
	}
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(global.Config.Jwt.Secret))
	if err != nil {
		log.Errorf("sign token failed: %v", err)
		return Fail(c, 500, "login failed")
	}

	authorization := global.Authorization{
		Token:          token,
		Remember:       req.Remember,
		User:           user,
		LoginTime:      utils.NowJsonTime(),
		LastActiveTime: utils.NowJsonTime(),
		LoginAddress:   c.RealIP(),
	}
	global.Cache.Set(BuildCacheKeyByToken(token), authorization, ttl)
	writeOperateLog(c, "login as "+req.Username, constant.SuccessFlag)

	return Success(c, H{"token": token})
}

func LogoutEndpoint(c echo.Context) error {
	token := GetToken(c)
	global.Cache.Delete(BuildCacheKeyByToken(token))
	return SuccessWithOperate(c, "logout", nil)
}

// InfoEndpoint returns the account behind the current session.
func InfoEndpoint(c echo.Context) error {
	account, found := GetCurrentAccount(c)
	if !found {
		return Fail(c, 401, "session expired, please login again")
	}
	return Success(c, H{
		"id":           account.ID,
		"username":     account.Username,
		"nickname":     account.Nickname,
		"roleName":     account.RoleName,
		"departmentId": account.DepartmentID,
	})
}

// UserCreateEndpoint provisions an account, admin only.
func UserCreateEndpoint(c echo.Context) error {
	if account, found := GetCurrentAccount(c); !found || account.RoleName != constant.SystemAdmin {
		return Fail(c, 403, "permission denied")
	}
	var req dto.UserForCreate
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}

	hashed, err := utils.Encoder.Encode([]byte(req.Password))
	if err != nil {
		return err
	}
	ctx := service.ContextWithDB(global.DBConn)
	user := model.User{
		ID:           utils.UUID(),
		Username:     req.Username,
		Password:     string(hashed),
		Nickname:     req.Nickname,
		Mail:         req.Mail,
		RoleName:     req.RoleName,
		DepartmentID: req.DepartmentID,
		Created:      utils.NowJsonTime(),
	}
	if err := repository.UserDao.Create(ctx, &user); err != nil {
		return FailWithDataOperate(c, 400, "create failed", "create user "+req.Username, nil)
	}
	return SuccessWithOperate(c, "create user "+req.Username, H{"id": user.ID})
}
