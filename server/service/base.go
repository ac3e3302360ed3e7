package service

import (
	"context"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"

	"gorm.io/gorm"
)

type baseService struct {
}

// Context wraps a transactional db handle so repositories called below
// join the same transaction, see repository.baseRepository.GetDB.
func (service baseService) Context(db *gorm.DB) context.Context {
	return ContextWithDB(db)
}

// ContextWithDB is the same wrapping for callers outside the service
// layer, the api package mostly.
func ContextWithDB(db *gorm.DB) context.Context {
	return context.WithValue(context.TODO(), constant.DB, db)
}

// service singletons, wired by SetupService at startup
var (
	LifecycleSrv *lifecycleService
	ActivitySrv  *activityService
	MailSrv      *mailSrv
	ReportSrv    *reportService
	StorageSrv   *storageService
	MaintainSrv  *sysMaintainService
	JobSrv       *jobService
)

func SetupService() {
	LifecycleSrv = new(lifecycleService)
	ActivitySrv = new(activityService)
	MailSrv = new(mailSrv)
	ReportSrv = new(reportService)
	MaintainSrv = new(sysMaintainService)
	JobSrv = new(jobService)

	storage, err := newStorageService()
	if err != nil {
		log.WithError(err).Warnf("object storage disabled: %v", err)
	}
	StorageSrv = storage
}
