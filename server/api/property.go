package api

import (
	"github.com/labstack/echo/v4"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
)

// PropertyGetEndpoint returns every runtime setting, the mail password
// masked.
func PropertyGetEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	properties := repository.PropertyDao.FindAllMap(ctx)
	if _, ok := properties[constant.MailPassword]; ok {
		properties[constant.MailPassword] = "******"
	}
	return Success(c, properties)
}

func PropertyUpdateEndpoint(c echo.Context) error {
	if account, found := GetCurrentAccount(c); !found || account.RoleName != constant.SystemAdmin {
		return Fail(c, 403, "permission denied")
	}
	var items map[string]string
	if err := c.Bind(&items); err != nil {
		return err
	}
	ctx := service.ContextWithDB(global.DBConn)
	for name, value := range items {
		if err := repository.PropertyDao.Upsert(ctx, &model.Property{Name: name, Value: value}); err != nil {
			log.Errorf("DB Error: %v", err)
			return FailWithDataOperate(c, 500, "update failed", "update setting "+name, nil)
		}
	}
	return SuccessWithOperate(c, "update settings", nil)
}

// MailTestEndpoint sends a probe mail with the submitted credentials so
// the admin can verify them before saving.
func MailTestEndpoint(c echo.Context) error {
	var req model.TestMail
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.MailReceiver == "" {
		return Fail(c, 400, "receiver is required")
	}
	if err := service.MailSrv.NewSendMail(req.MailHost, req.MailPort, req.MailUsername, req.MailPassword,
		[]string{req.MailReceiver}, "[AssetDog] test mail", "Mail server configuration works."); err != nil {
		return Fail(c, 400, "test mail failed: "+err.Error())
	}
	return Success(c, nil)
}
