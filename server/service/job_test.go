package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
)

func TestReportCronSpec(t *testing.T) {
	tests := []struct {
		name    string
		rpt     model.RegularReport
		want    string
		wantErr bool
	}{
		{name: "daily", rpt: model.RegularReport{PeriodicType: "day"}, want: "0 6 * * *"},
		{name: "weekly monday", rpt: model.RegularReport{PeriodicType: "week", Periodic: 1}, want: "0 6 * * 1"},
		{name: "weekly sunday wraps to zero", rpt: model.RegularReport{PeriodicType: "week", Periodic: 7}, want: "0 6 * * 0"},
		{name: "weekday out of range", rpt: model.RegularReport{PeriodicType: "week", Periodic: 8}, wantErr: true},
		{name: "monthly mid", rpt: model.RegularReport{PeriodicType: "month", Periodic: 15}, want: "0 6 15 * *"},
		{name: "monthly past 28 rejected", rpt: model.RegularReport{PeriodicType: "month", Periodic: 31}, wantErr: true},
		{name: "unknown period", rpt: model.RegularReport{PeriodicType: "quarter"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reportCronSpec(tt.rpt)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportWindow(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	start, end := ReportWindow("day")
	assert.Equal(t, today, end)
	assert.Equal(t, time.Now().AddDate(0, 0, -1).Format("2006-01-02"), start)

	start, end = ReportWindow("week")
	assert.Equal(t, today, end)
	assert.Equal(t, time.Now().AddDate(0, 0, -7).Format("2006-01-02"), start)

	start, end = ReportWindow("month")
	assert.Equal(t, today, end)
	assert.Equal(t, time.Now().AddDate(0, -1, 0).Format("2006-01-02"), start)

	// anything unrecognized behaves like a daily window
	start, _ = ReportWindow("")
	assert.Equal(t, time.Now().AddDate(0, 0, -1).Format("2006-01-02"), start)
}
