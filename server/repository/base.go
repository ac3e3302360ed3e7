package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/env"

	"github.com/sethvargo/go-retry"
	"gorm.io/gorm"
)

// Dao singletons, wired by SetupRepository at startup.
var (
	AssetDao         *AssetRepository
	CheckoutDao      *CheckoutRepository
	CheckinDao       *CheckinRepository
	LeaseDao         *LeaseRepository
	LeaseReturnDao   *LeaseReturnRepository
	MoveDao          *MoveRepository
	ReservationDao   *ReservationRepository
	DisposalDao      *DisposalRepository
	MaintenanceDao   *MaintenanceRepository
	AuditHistoryDao  *AuditHistoryRepository
	DepartmentDao    *DepartmentRepository
	SiteDao          *SiteRepository
	LocationDao      *LocationRepository
	CategoryDao      *CategoryRepository
	UserDao          *UserRepository
	OperateLogDao    *OperateLogRepository
	PropertyDao      *PropertyRepository
	RegularReportDao *RegularReportRepository
	ReportDao        *ReportRepository
)

func SetupRepository(db *gorm.DB) {
	AssetDao = &AssetRepository{baseRepository{db}}
	CheckoutDao = &CheckoutRepository{baseRepository{db}}
	CheckinDao = &CheckinRepository{baseRepository{db}}
	LeaseDao = &LeaseRepository{baseRepository{db}}
	LeaseReturnDao = &LeaseReturnRepository{baseRepository{db}}
	MoveDao = &MoveRepository{baseRepository{db}}
	ReservationDao = &ReservationRepository{baseRepository{db}}
	DisposalDao = &DisposalRepository{baseRepository{db}}
	MaintenanceDao = &MaintenanceRepository{baseRepository{db}}
	AuditHistoryDao = &AuditHistoryRepository{baseRepository{db}}
	DepartmentDao = &DepartmentRepository{baseRepository{db}}
	SiteDao = &SiteRepository{baseRepository{db}}
	LocationDao = &LocationRepository{baseRepository{db}}
	CategoryDao = &CategoryRepository{baseRepository{db}}
	UserDao = &UserRepository{baseRepository{db}}
	OperateLogDao = &OperateLogRepository{baseRepository{db}}
	PropertyDao = &PropertyRepository{baseRepository{db}}
	RegularReportDao = &RegularReportRepository{baseRepository{db}}
	ReportDao = &ReportRepository{baseRepository{db}}
}

type baseRepository struct {
	DB *gorm.DB
}

// GetDB returns the transactional *gorm.DB carried by ctx when inside a
// lifecycle transaction, the shared connection otherwise.
func (b *baseRepository) GetDB(c context.Context) *gorm.DB {
	db, ok := c.Value(constant.DB).(*gorm.DB)
	if !ok {
		if b.DB != nil {
			return b.DB
		}
		return env.GetDB()
	}
	return db
}

// IsTransientErr reports whether err is a driver error worth a bounded
// retry, connection pool exhaustion and dropped connections mostly.
// Anything else fails fast.
func IsTransientErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Error 1040") || // too many connections
		strings.Contains(msg, "invalid connection") ||
		strings.Contains(msg, "connection refused")
}

// WithRetry runs fn with a bounded constant backoff around transient
// connection pool errors. Retries single calls only, never whole
// transactions.
func WithRetry(ctx context.Context, fn func() error) error {
	backoff := retry.WithMaxRetries(3, retry.NewConstant(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(); err != nil {
			if IsTransientErr(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}
