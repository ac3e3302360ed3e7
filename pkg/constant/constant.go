package constant

import "time"

// request header carrying the session token
const Token = "X-Auth-Token"

// context key carrying the transactional *gorm.DB, see repository.baseRepository.GetDB
const DB = "db"

// asset status vocabulary. The status column is varchar for historical
// reasons, writes must go through these constants only.
const (
	StatusAvailable   = "Available"
	StatusCheckedOut  = "Checked out"
	StatusLeased      = "Leased"
	StatusMaintenance = "Maintenance"
	StatusDisposed    = "Disposed"
	StatusInUse       = "In Use"
)

// disposal methods, written into the asset status on dispose
const (
	DisposeSold      = "Sold"
	DisposeDonated   = "Donated"
	DisposeScrapped  = "Scrapped"
	DisposeLost      = "Lost/Missing"
	DisposeDestroyed = "Destroyed"
)

// lifecycle operation kinds
const (
	OpCheckout    = "checkout"
	OpCheckin     = "checkin"
	OpMove        = "move"
	OpReserve     = "reserve"
	OpLease       = "lease"
	OpLeaseReturn = "leaseReturn"
	OpDispose     = "dispose"
	OpMaintenance = "maintenance"
	OpAudit       = "audit"
)

// maintenance states
const (
	MaintenanceScheduled  = "Scheduled"
	MaintenanceInProgress = "In progress"
	MaintenanceCompleted  = "Completed"
	MaintenanceCancelled  = "Cancelled"
)

const (
	SystemAdmin = "admin"
	Manager     = "manager"
	Staff       = "staff"
)

// cache key prefixes, invalidated wholesale after lifecycle writes
const (
	CacheKeyOverview  = "overview:"
	CacheKeyReport    = "report:"
	CacheKeyAuthority = "authority:"
)

// property table keys for the outbound mail account
const (
	MailHost     = "mail-host"
	MailPort     = "mail-port"
	MailUsername = "mail-username"
	MailPassword = "mail-password"
)

// soft deleted assets are purged after this many days
const PurgeRetentionDays = 30

// session lifetime when the client does not ask to be remembered
const SessionEffectiveTime = 2 * time.Hour

const (
	SuccessFlag = "success"
	FailFlag    = "fail"
)
