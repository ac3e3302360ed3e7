package service

import (
	"context"
	"errors"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	errs "github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/error"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
)

type mailSrv struct {
	baseService
}

// CheckMail verifies the mail account properties are all configured.
func (r mailSrv) CheckMail(ctx context.Context) error {
	propertiesMap := repository.PropertyDao.FindAllMap(ctx)
	host := propertiesMap[constant.MailHost]
	port := propertiesMap[constant.MailPort]
	username := propertiesMap[constant.MailUsername]
	password := propertiesMap[constant.MailPassword]
	if host == "" || host == "-" || port == "" || port == "-" ||
		username == "" || username == "-" || password == "" || password == "-" {
		return errors.New(errs.MailCheckFail)
	}
	return nil
}

// SendMail sends an HTML mail using the account stored in the property
// table. Attachment paths, if any, are attached by filename.
func (r mailSrv) SendMail(ctx context.Context, to []string, subject, text string, attachments ...string) error {
	if err := r.CheckMail(ctx); err != nil {
		return err
	}
	propertiesMap := repository.PropertyDao.FindAllMap(ctx)
	host := propertiesMap[constant.MailHost]
	port := propertiesMap[constant.MailPort]
	username := propertiesMap[constant.MailUsername]
	password := propertiesMap[constant.MailPassword]
	if err := r.NewSendMail(host, port, username, password, to, "[AssetDog] "+subject, text, attachments...); err != nil {
		log.Errorf("send mail failed: %v", err)
		return err
	}
	return nil
}

// NewSendMail is the raw dial-and-send used by features that must surface
// delivery errors to the caller, test mail included.
func (r mailSrv) NewSendMail(host, port, username, password string, to []string, subject, text string, attachments ...string) error {
	iport, err := strconv.Atoi(port)
	if nil != err {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "AssetDog <"+username+">")
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", text)
	for _, path := range attachments {
		m.Attach(path)
	}

	d := gomail.NewDialer(host, iport, username, password)
	return d.DialAndSend(m)
}
