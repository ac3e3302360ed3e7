// Package error holds the shared error vocabulary. Handlers translate
// these into the JSON envelope at their own boundary, services return them
// wrapped so the cause survives logging.
package error

import "github.com/pkg/errors"

// missing rows, surfaced with the not-found code like a bare
// gorm.ErrRecordNotFound
var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrAssetDeleted  = errors.New("asset is deleted")
)

// business rule violations, surfaced as 400
var (
	ErrAlreadyDisposed    = errors.New("asset already disposed")
	ErrAlreadyCheckedOut  = errors.New("asset already has an active checkout")
	ErrNoActiveCheckout   = errors.New("no active checkout found")
	ErrActiveLeaseExists  = errors.New("asset already has an active lease")
	ErrNoActiveLease      = errors.New("no active lease found")
	ErrNotAvailable       = errors.New("asset is not available")
	ErrInvalidTransition  = errors.New("transition not allowed for current status")
	ErrEmployeeRequired   = errors.New("checkout requires an assigned employee")
	ErrMaintenanceUnknown = errors.New("unknown maintenance status")
	ErrInvalidGroupColumn = errors.New("unsupported group column")
)

// infrastructure
var (
	MailCheckFail      = "mail server is not configured"
	ErrStorageDisabled = errors.New("object storage is not configured")
)

// IsBusinessErr reports whether err belongs to the precondition/validation
// class that maps to 400 rather than 500.
func IsBusinessErr(err error) bool {
	switch errors.Cause(err) {
	case ErrAlreadyDisposed, ErrAlreadyCheckedOut, ErrNoActiveCheckout,
		ErrActiveLeaseExists, ErrNoActiveLease, ErrNotAvailable,
		ErrInvalidTransition, ErrEmployeeRequired, ErrMaintenanceUnknown,
		ErrInvalidGroupColumn:
		return true
	}
	return false
}
