package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
)

// operate logs are kept this many days before the nightly trim
const operateLogRetentionDays = 90

type jobService struct {
	baseService

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// Setup registers the built-in schedules and one entry per regular
// report policy, then starts the scheduler.
func (s *jobService) Setup() error {
	s.entries = make(map[string]cron.EntryID)

	// nightly housekeeping at 03:00
	if _, err := global.Cron.AddFunc("0 3 * * *", func() {
		if _, err := MaintainSrv.PurgeDeletedAssets(); err != nil {
			log.Errorf("purge job failed: %v", err)
		}
		if err := MaintainSrv.TrimOperateLogs(operateLogRetentionDays); err != nil {
			log.Errorf("operate log trim failed: %v", err)
		}
	}); err != nil {
		return err
	}

	if err := s.ReloadReportSchedules(); err != nil {
		return err
	}
	global.Cron.Start()
	return nil
}

// ReloadReportSchedules re-reads every report policy and rebuilds its
// cron entry. Called at startup and after any policy create/update/delete.
func (s *jobService) ReloadReportSchedules() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		global.Cron.Remove(entry)
		delete(s.entries, id)
	}

	ctx := s.Context(global.DBConn)
	policies, err := repository.RegularReportDao.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, rpt := range policies {
		spec, err := reportCronSpec(rpt)
		if err != nil {
			log.Errorf("report policy %s skipped: %v", rpt.Name, err)
			continue
		}
		rpt := rpt
		entry, err := global.Cron.AddFunc(spec, func() {
			start, end := ReportWindow(rpt.PeriodicType)
			if err := ReportSrv.ExecuteRegularReport(rpt, start, end); err != nil {
				log.Errorf("regular report %s failed: %v", rpt.Name, err)
			}
		})
		if err != nil {
			log.Errorf("report policy %s skipped: %v", rpt.Name, err)
			continue
		}
		s.entries[rpt.ID] = entry
	}
	log.Infof("scheduled %d regular report policies", len(s.entries))
	return nil
}

// reportCronSpec maps a policy period onto a cron expression, reports
// fire at 06:00.
func reportCronSpec(rpt model.RegularReport) (string, error) {
	switch rpt.PeriodicType {
	case "day":
		return "0 6 * * *", nil
	case "week":
		if rpt.Periodic < 1 || rpt.Periodic > 7 {
			return "", fmt.Errorf("weekday out of range: %d", rpt.Periodic)
		}
		return fmt.Sprintf("0 6 * * %d", rpt.Periodic%7), nil
	case "month":
		if rpt.Periodic < 1 || rpt.Periodic > 28 {
			return "", fmt.Errorf("day of month out of range: %d", rpt.Periodic)
		}
		return fmt.Sprintf("0 6 %d * *", rpt.Periodic), nil
	}
	return "", fmt.Errorf("unknown periodic type %q", rpt.PeriodicType)
}

// ReportWindow returns the date range a firing covers.
func ReportWindow(periodicType string) (start, end string) {
	now := time.Now()
	end = now.Format("2006-01-02")
	switch periodicType {
	case "week":
		start = now.AddDate(0, 0, -7).Format("2006-01-02")
	case "month":
		start = now.AddDate(0, -1, 0).Format("2006-01-02")
	default:
		start = now.AddDate(0, 0, -1).Format("2006-01-02")
	}
	return
}

// Tick is the externally triggered sweep, hit every five minutes by the
// scheduler endpoint. It handles the work that must not wait for the
// nightly run.
func (s *jobService) Tick() map[string]interface{} {
	ctx := s.Context(global.DBConn)
	out := map[string]interface{}{"at": time.Now().Format("2006-01-02 15:04:05")}

	var overdue []dto.OverdueCheckout
	err := repository.WithRetry(ctx, func() error {
		var err error
		overdue, err = ReportSrv.OverdueCheckouts(ctx)
		return err
	})
	if err != nil {
		log.Errorf("overdue sweep failed: %v", err)
	} else {
		out["overdue"] = len(overdue)
	}

	purged, err := MaintainSrv.PurgeDeletedAssets()
	if err != nil {
		log.Errorf("purge sweep failed: %v", err)
	}
	out["purged"] = purged
	return out
}
