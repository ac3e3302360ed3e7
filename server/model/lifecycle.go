package model

import (
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

// One table per history kind, append-only. Rows are never mutated after
// creation except the two narrow admin edits (audit note, reservation dates).

type Checkout struct {
	ID                 string         `gorm:"type:varchar(128);primary_key;not null;comment:checkout id" json:"id"`
	AssetID            string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId" validate:"required"`
	EmployeeUserID     string         `gorm:"type:varchar(128);index;not null;comment:assigned employee" json:"employeeUserId" validate:"required"`
	CheckoutDate       utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:checkout date" json:"checkoutDate"`
	ExpectedReturnDate utils.JsonTime `gorm:"type:datetime(3);default:null;comment:expected return date" json:"expectedReturnDate"`
	Notes              string         `gorm:"type:varchar(2048);default:'';comment:notes" json:"notes" validate:"max=2048"`
	Created            utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *Checkout) TableName() string {
	return "checkouts"
}

type Checkin struct {
	ID          string         `gorm:"type:varchar(128);primary_key;not null;comment:checkin id" json:"id"`
	AssetID     string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId"`
	CheckoutID  string         `gorm:"type:varchar(128);uniqueIndex;not null;comment:the checkout this row closes" json:"checkoutId"`
	CheckinDate utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:checkin date" json:"checkinDate"`
	Condition   string         `gorm:"type:varchar(2048);default:'';comment:condition notes" json:"condition" validate:"max=2048"`
	Created     utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *Checkin) TableName() string {
	return "checkins"
}

type Move struct {
	ID             string         `gorm:"type:varchar(128);primary_key;not null;comment:move id" json:"id"`
	AssetID        string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId"`
	FromSite       string         `gorm:"type:varchar(64);default:'';comment:site before move" json:"fromSite"`
	FromLocation   string         `gorm:"type:varchar(128);default:'';comment:location before move" json:"fromLocation"`
	FromDepartment string         `gorm:"type:varchar(64);default:'';comment:department before move" json:"fromDepartment"`
	ToSite         string         `gorm:"type:varchar(64);default:'';comment:site after move" json:"toSite"`
	ToLocation     string         `gorm:"type:varchar(128);default:'';comment:location after move" json:"toLocation"`
	ToDepartment   string         `gorm:"type:varchar(64);default:'';comment:department after move" json:"toDepartment"`
	MoveDate       utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:move date" json:"moveDate"`
	Notes          string         `gorm:"type:varchar(2048);default:'';comment:notes" json:"notes" validate:"max=2048"`
	Created        utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *Move) TableName() string {
	return "moves"
}

// Reservation does not mutate the asset status.
type Reservation struct {
	ID             string         `gorm:"type:varchar(128);primary_key;not null;comment:reservation id" json:"id"`
	AssetID        string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId"`
	EmployeeUserID string         `gorm:"type:varchar(128);index;not null;comment:reserving employee" json:"employeeUserId" validate:"required"`
	StartDate      utils.JsonTime `gorm:"type:datetime(3);not null;comment:reservation start" json:"startDate"`
	EndDate        utils.JsonTime `gorm:"type:datetime(3);default:null;comment:reservation end" json:"endDate"`
	Notes          string         `gorm:"type:varchar(2048);default:'';comment:notes" json:"notes" validate:"max=2048"`
	Created        utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:create time" json:"created"`
}

func (r *Reservation) TableName() string {
	return "reservations"
}

type Lease struct {
	ID             string         `gorm:"type:varchar(128);primary_key;not null;comment:lease id" json:"id"`
	AssetID        string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId"`
	LesseeName     string         `gorm:"type:varchar(128);not null;comment:lessee" json:"lesseeName" validate:"required,max=128"`
	LeaseStartDate utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:lease start" json:"leaseStartDate"`
	LeaseEndDate   utils.JsonTime `gorm:"type:datetime(3);default:null;comment:lease end, null or future while active" json:"leaseEndDate"`
	MonthlyRate    float64        `gorm:"type:decimal(12,2);default:0;comment:monthly rate" json:"monthlyRate"`
	Notes          string         `gorm:"type:varchar(2048);default:'';comment:notes" json:"notes" validate:"max=2048"`
	Created        utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *Lease) TableName() string {
	return "leases"
}

type LeaseReturn struct {
	ID         string         `gorm:"type:varchar(128);primary_key;not null;comment:lease return id" json:"id"`
	AssetID    string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId"`
	LeaseID    string         `gorm:"type:varchar(128);uniqueIndex;not null;comment:the lease this row closes" json:"leaseId"`
	ReturnDate utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:return date" json:"returnDate"`
	Condition  string         `gorm:"type:varchar(2048);default:'';comment:condition notes" json:"condition" validate:"max=2048"`
	Created    utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *LeaseReturn) TableName() string {
	return "lease_returns"
}

type Disposal struct {
	ID            string         `gorm:"type:varchar(128);primary_key;not null;comment:disposal id" json:"id"`
	AssetID       string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId"`
	DisposeReason string         `gorm:"type:varchar(32);not null;comment:disposal method" json:"disposeReason" validate:"required"`
	DisposeDate   utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:disposal date" json:"disposeDate"`
	SalvageValue  float64        `gorm:"type:decimal(12,2);default:0;comment:salvage value" json:"salvageValue"`
	Notes         string         `gorm:"type:varchar(2048);default:'';comment:notes" json:"notes" validate:"max=2048"`
	Created       utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *Disposal) TableName() string {
	return "disposals"
}

type Maintenance struct {
	ID                string         `gorm:"type:varchar(128);primary_key;not null;comment:maintenance id" json:"id"`
	AssetID           string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId"`
	Title             string         `gorm:"type:varchar(128);not null;comment:maintenance title" json:"title" validate:"required,max=128"`
	MaintenanceStatus string         `gorm:"type:varchar(16);not null;comment:Scheduled/In progress/Completed/Cancelled" json:"maintenanceStatus" validate:"required"`
	DueDate           utils.JsonTime `gorm:"type:datetime(3);default:null;comment:due date" json:"dueDate"`
	CompletedDate     utils.JsonTime `gorm:"type:datetime(3);default:null;comment:completed date" json:"completedDate"`
	Cost              float64        `gorm:"type:decimal(12,2);default:0;comment:maintenance cost" json:"cost"`
	Notes             string         `gorm:"type:varchar(2048);default:'';comment:notes" json:"notes" validate:"max=2048"`
	Created           utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:create time" json:"created"`
}

func (r *Maintenance) TableName() string {
	return "maintenances"
}

type AuditHistory struct {
	ID        string         `gorm:"type:varchar(128);primary_key;not null;comment:audit id" json:"id"`
	AssetID   string         `gorm:"type:varchar(128);index;not null;comment:asset id" json:"assetId"`
	Auditor   string         `gorm:"type:varchar(64);not null;comment:auditor" json:"auditor" validate:"required,max=64"`
	AuditDate utils.JsonTime `gorm:"type:datetime(3);index;not null;comment:audit date" json:"auditDate"`
	Note      string         `gorm:"type:varchar(2048);default:'';comment:audit note, admin editable" json:"note" validate:"max=2048"`
	Created   utils.JsonTime `gorm:"type:datetime(3);not null;comment:create time" json:"created"`
}

func (r *AuditHistory) TableName() string {
	return "audit_histories"
}
