package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	errs "github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/error"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
)

func TestIsDisposedStatus(t *testing.T) {
	for _, status := range []string{
		constant.StatusDisposed, constant.DisposeSold, constant.DisposeDonated,
		constant.DisposeScrapped, constant.DisposeLost, constant.DisposeDestroyed,
	} {
		assert.True(t, IsDisposedStatus(status), status)
	}
	for _, status := range []string{
		constant.StatusAvailable, constant.StatusCheckedOut,
		constant.StatusLeased, constant.StatusMaintenance, "",
	} {
		assert.False(t, IsDisposedStatus(status), status)
	}
}

func TestCheckPrecondition(t *testing.T) {
	checkout := &model.Checkout{ID: "co-1", EmployeeUserID: "E1"}
	lease := &model.Lease{ID: "le-1"}

	tests := []struct {
		name   string
		op     string
		status string
		st     ActiveState
		want   error
	}{
		{"checkout ok on available", constant.OpCheckout, constant.StatusAvailable, ActiveState{}, nil},
		// checkout is tolerant of status, only a duplicate open checkout blocks it
		{"checkout ok on maintenance", constant.OpCheckout, constant.StatusMaintenance, ActiveState{}, nil},
		{"checkout blocked by open checkout", constant.OpCheckout, constant.StatusCheckedOut,
			ActiveState{ActiveCheckout: checkout}, errs.ErrAlreadyCheckedOut},

		{"checkin ok", constant.OpCheckin, constant.StatusCheckedOut,
			ActiveState{ActiveCheckout: checkout}, nil},
		{"checkin wrong status", constant.OpCheckin, constant.StatusAvailable,
			ActiveState{ActiveCheckout: checkout}, errs.ErrInvalidTransition},
		{"checkin no open checkout", constant.OpCheckin, constant.StatusCheckedOut,
			ActiveState{}, errs.ErrNoActiveCheckout},
		{"checkin missing employee", constant.OpCheckin, constant.StatusCheckedOut,
			ActiveState{ActiveCheckout: &model.Checkout{ID: "co-2"}}, errs.ErrEmployeeRequired},

		// lease, unlike checkout, insists on Available
		{"lease ok", constant.OpLease, constant.StatusAvailable, ActiveState{}, nil},
		{"lease blocked by status", constant.OpLease, constant.StatusCheckedOut, ActiveState{}, errs.ErrNotAvailable},
		{"lease blocked on disposed", constant.OpLease, constant.DisposeSold, ActiveState{}, errs.ErrAlreadyDisposed},
		{"lease blocked by open lease", constant.OpLease, constant.StatusAvailable,
			ActiveState{ActiveLease: lease}, errs.ErrActiveLeaseExists},

		{"lease return ok", constant.OpLeaseReturn, constant.StatusLeased,
			ActiveState{ActiveLease: lease}, nil},
		{"lease return no open lease", constant.OpLeaseReturn, constant.StatusLeased,
			ActiveState{}, errs.ErrNoActiveLease},

		{"dispose ok", constant.OpDispose, constant.StatusAvailable, ActiveState{}, nil},
		{"dispose ok while checked out", constant.OpDispose, constant.StatusCheckedOut,
			ActiveState{ActiveCheckout: checkout}, nil},
		{"dispose twice", constant.OpDispose, constant.DisposeScrapped, ActiveState{}, errs.ErrAlreadyDisposed},

		{"maintenance unrestricted", constant.OpMaintenance, constant.DisposeSold, ActiveState{}, nil},
		{"reserve unrestricted", constant.OpReserve, constant.StatusCheckedOut, ActiveState{}, nil},
		{"move unrestricted", constant.OpMove, constant.StatusLeased, ActiveState{}, nil},
		{"audit unrestricted", constant.OpAudit, constant.StatusMaintenance, ActiveState{}, nil},

		{"unknown op", "teleport", constant.StatusAvailable, ActiveState{}, errs.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := model.Asset{ID: "a-1", AssetTagID: "AT-001", Status: tt.status}
			got := CheckPrecondition(tt.op, asset, tt.st)
			if tt.want == nil {
				assert.NoError(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMergeUpdatesWhitelist(t *testing.T) {
	fields := mergeUpdates(map[string]interface{}{"status": constant.StatusCheckedOut}, map[string]string{
		"site":       "HQ",
		"location":   "Floor 2",
		"status":     "Disposed", // must not override the transition's own write
		"is_deleted": "1",
	})
	assert.Equal(t, constant.StatusCheckedOut, fields["status"])
	assert.Equal(t, "HQ", fields["site"])
	assert.Equal(t, "Floor 2", fields["location"])
	assert.NotContains(t, fields, "is_deleted")
}
