package service

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"
	"github.com/signintech/gopdf"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	errs "github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/error"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

// RegularReportPath is where rendered attachments land before mailing.
const RegularReportPath = "./data/reports"

type reportService struct {
	baseService
}

// groupColumns whitelists what the dashboard may group assets by. The
// column name goes into SQL, so nothing outside this map is accepted.
var groupColumns = map[string]bool{
	"category":   true,
	"department": true,
	"site":       true,
	"location":   true,
	"status":     true,
}

func (s *reportService) Overview(ctx context.Context) (dto.Counter, error) {
	key := constant.CacheKeyOverview + "counter"
	if v, ok := global.Cache.Get(key); ok {
		return v.(dto.Counter), nil
	}
	counter, err := repository.ReportDao.Summary(ctx)
	if err != nil {
		return counter, err
	}
	global.Cache.Set(key, counter, 5*time.Minute)
	return counter, nil
}

func (s *reportService) GroupBy(ctx context.Context, column string) ([]dto.GroupCount, error) {
	if !groupColumns[column] {
		return nil, errs.ErrInvalidGroupColumn
	}
	key := constant.CacheKeyReport + "group:" + column
	if v, ok := global.Cache.Get(key); ok {
		return v.([]dto.GroupCount), nil
	}
	rows, err := repository.ReportDao.CountByGroup(ctx, column)
	if err != nil {
		return nil, err
	}
	global.Cache.Set(key, rows, 5*time.Minute)
	return rows, nil
}

func (s *reportService) CheckoutTrend(ctx context.Context, months int) ([]dto.MonthCount, error) {
	key := fmt.Sprintf("%strend:checkout:%d", constant.CacheKeyReport, months)
	if v, ok := global.Cache.Get(key); ok {
		return v.([]dto.MonthCount), nil
	}
	rows, err := repository.ReportDao.CheckoutCountByMonth(ctx, months)
	if err != nil {
		return nil, err
	}
	global.Cache.Set(key, rows, 5*time.Minute)
	return rows, nil
}

func (s *reportService) MaintenanceCostTrend(ctx context.Context, months int) ([]dto.MonthCount, error) {
	key := fmt.Sprintf("%strend:maintenance:%d", constant.CacheKeyReport, months)
	if v, ok := global.Cache.Get(key); ok {
		return v.([]dto.MonthCount), nil
	}
	rows, err := repository.ReportDao.MaintenanceCostByMonth(ctx, months)
	if err != nil {
		return nil, err
	}
	global.Cache.Set(key, rows, 5*time.Minute)
	return rows, nil
}

// SystemUsage samples host cpu, memory and disk for the dashboard.
func (s *reportService) SystemUsage() (usage dto.SystemUsage) {
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err != nil {
		log.Errorf("cpu.Percent Error: %v", err)
	} else if len(cpuPercent) > 0 {
		usage.CpuPercent = cpuPercent[0]
	}
	memStat, err := mem.VirtualMemory()
	if err != nil {
		log.Errorf("mem.VirtualMemory Error: %v", err)
	} else {
		usage.MemPercent = memStat.UsedPercent
	}
	diskStat, err := disk.Usage("/")
	if err != nil {
		log.Errorf("disk.Usage Error: %v", err)
	} else {
		usage.DiskPercent = diskStat.UsedPercent
		usage.DiskUsed = humanize.Bytes(diskStat.Used)
	}
	return
}

// OverdueCheckouts lists open checkouts past their expected return date,
// with the asset tag and holder resolved.
func (s *reportService) OverdueCheckouts(ctx context.Context) ([]dto.OverdueCheckout, error) {
	rows, err := repository.CheckoutDao.FindOverdue(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OverdueCheckout, 0, len(rows))
	for _, v := range rows {
		item := dto.OverdueCheckout{
			AssetID:            v.AssetID,
			EmployeeUserID:     v.EmployeeUserID,
			ExpectedReturnDate: v.ExpectedReturnDate,
		}
		asset, err := repository.AssetDao.FindById(ctx, v.AssetID)
		if err == nil {
			item.AssetTagID = asset.AssetTagID
			item.AssetName = asset.Name
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// LowStock filters stockable assets below their minimum level. The two
// column comparison happens here rather than in SQL, matching how the
// product always evaluated it.
func (s *reportService) LowStock(ctx context.Context) ([]dto.AssetStockForPage, error) {
	assets, err := repository.AssetDao.FindStockable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetStockForPage, 0)
	for _, a := range assets {
		if !a.IsLowStock() {
			continue
		}
		out = append(out, dto.AssetStockForPage{
			ID:            a.ID,
			AssetTagID:    a.AssetTagID,
			Name:          a.Name,
			Site:          a.Site,
			CurrentStock:  a.CurrentStock,
			MinStockLevel: a.MinStockLevel,
		})
	}
	return out, nil
}

// reportSection is one block of a periodic report attachment.
type reportSection struct {
	Name   string
	Header []string
	Rows   [][]string
}

func (s *reportService) buildSections(ctx context.Context, rpt model.RegularReport, start, end string) ([]reportSection, error) {
	var sections []reportSection
	if rpt.IsAsset != nil && *rpt.IsAsset {
		assets, err := repository.AssetDao.FindAllForExport(ctx, nil)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(assets))
		for _, v := range assets {
			rows = append(rows, utils.Struct2StrArr(v))
		}
		sections = append(sections, reportSection{
			Name:   "Assets",
			Header: []string{"Asset Tag", "Name", "Category", "Department", "Site", "Location", "Status", "Serial No", "Brand", "Purchase Cost", "Created"},
			Rows:   rows,
		})
	}
	if rpt.IsCheckout != nil && *rpt.IsCheckout {
		checkouts, err := repository.CheckoutDao.FindInWindow(ctx, start, end)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(checkouts))
		for _, v := range checkouts {
			rows = append(rows, []string{v.AssetID, v.EmployeeUserID,
				v.CheckoutDate.Format("2006-01-02"), v.Notes})
		}
		sections = append(sections, reportSection{
			Name:   "Checkouts",
			Header: []string{"Asset", "Employee", "Checkout Date", "Notes"},
			Rows:   rows,
		})
	}
	if rpt.IsLease != nil && *rpt.IsLease {
		leases, err := repository.LeaseDao.FindInWindow(ctx, start, end)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(leases))
		for _, v := range leases {
			rows = append(rows, []string{v.AssetID, v.LesseeName,
				v.LeaseStartDate.Format("2006-01-02"), fmt.Sprintf("%.2f", v.MonthlyRate)})
		}
		sections = append(sections, reportSection{
			Name:   "Leases",
			Header: []string{"Asset", "Lessee", "Start Date", "Monthly Rate"},
			Rows:   rows,
		})
	}
	if rpt.IsMaintenance != nil && *rpt.IsMaintenance {
		jobs, err := repository.MaintenanceDao.FindInWindow(ctx, start, end)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(jobs))
		for _, v := range jobs {
			rows = append(rows, []string{v.AssetID, v.Title, v.MaintenanceStatus,
				fmt.Sprintf("%.2f", v.Cost)})
		}
		sections = append(sections, reportSection{
			Name:   "Maintenance",
			Header: []string{"Asset", "Title", "Status", "Cost"},
			Rows:   rows,
		})
	}
	if rpt.IsDisposal != nil && *rpt.IsDisposal {
		disposals, err := repository.DisposalDao.FindInWindow(ctx, start, end)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(disposals))
		for _, v := range disposals {
			rows = append(rows, []string{v.AssetID, v.DisposeReason,
				v.DisposeDate.Format("2006-01-02"), fmt.Sprintf("%.2f", v.SalvageValue)})
		}
		sections = append(sections, reportSection{
			Name:   "Disposals",
			Header: []string{"Asset", "Method", "Dispose Date", "Salvage Value"},
			Rows:   rows,
		})
	}
	if rpt.IsLowStock != nil && *rpt.IsLowStock {
		stock, err := s.LowStock(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(stock))
		for _, v := range stock {
			rows = append(rows, []string{v.AssetTagID, v.Name, v.Site,
				fmt.Sprintf("%d", v.CurrentStock), fmt.Sprintf("%d", v.MinStockLevel)})
		}
		sections = append(sections, reportSection{
			Name:   "Low Stock",
			Header: []string{"Asset Tag", "Name", "Site", "Current Stock", "Min Level"},
			Rows:   rows,
		})
	}
	return sections, nil
}

// renderSections produces the attachment bytes in the policy file type.
func renderSections(rpt model.RegularReport, sections []reportSection) (*bytes.Reader, string, error) {
	fileName := time.Now().Format("2006-01-02") + "_" + rpt.Name
	switch rpt.FileType {
	case "xlsx":
		if len(sections) == 0 {
			return nil, "", fmt.Errorf("report %s has no sections enabled", rpt.Name)
		}
		file, err := utils.CreateExcelFile(sections[0].Name, sections[0].Header, sections[0].Rows)
		if err != nil {
			return nil, "", err
		}
		for _, sec := range sections[1:] {
			if err := utils.AppendExcelSheet(file, sec.Name, sec.Header, sec.Rows); err != nil {
				return nil, "", err
			}
		}
		buf, err := file.WriteToBuffer()
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(buf.Bytes()), fileName + ".xlsx", nil
	case "csv":
		buf := new(bytes.Buffer)
		for i, sec := range sections {
			content := append([][]string{sec.Header}, sec.Rows...)
			reader, err := utils.Export2Csv([]string{sec.Name}, content)
			if err != nil {
				return nil, "", err
			}
			if i > 0 {
				buf.WriteString("\r\n")
			}
			if _, err := reader.WriteTo(buf); err != nil {
				return nil, "", err
			}
		}
		return bytes.NewReader(buf.Bytes()), fileName + ".csv", nil
	case "html":
		var sb strings.Builder
		for _, sec := range sections {
			htm, err := utils.Export2Html(sec.Name, sec.Header, sec.Rows)
			if err != nil {
				return nil, "", err
			}
			sb.WriteString(htm)
		}
		return bytes.NewReader([]byte(sb.String())), fileName + ".html", nil
	default: // pdf
		pdf := &gopdf.GoPdf{}
		pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
		pdf.AddPage()
		ye := 0
		for _, sec := range sections {
			widths := make([]int, len(sec.Header))
			for i := range widths {
				widths[i] = 560 / len(sec.Header)
			}
			err, _, newYe := utils.PdfExport(pdf, sec.Name, sec.Header, widths, sec.Rows, 0, ye)
			if err != nil {
				return nil, "", err
			}
			ye = newYe
		}
		buf := new(bytes.Buffer)
		if err := pdf.Write(buf); err != nil {
			return nil, "", err
		}
		return bytes.NewReader(buf.Bytes()), fileName + ".pdf", nil
	}
}

// ExecuteRegularReport renders one policy, saves the attachment, mails
// the recipients and appends the execution log row.
func (s *reportService) ExecuteRegularReport(rpt model.RegularReport, start, end string) error {
	ctx := s.Context(global.DBConn)

	// multi-statement read; read committed is enough and keeps the tx cheap
	var sections []reportSection
	err := global.DBConn.Transaction(func(tx *gorm.DB) error {
		var err error
		sections, err = s.buildSections(s.Context(tx), rpt, start, end)
		return err
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true})
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		log.Warnf("regular report %s has no sections enabled, skipped", rpt.Name)
		return nil
	}

	reader, fileName, err := renderSections(rpt, sections)
	if err != nil {
		return err
	}
	size := reader.Size()
	if err := utils.SaveFile(RegularReportPath, fileName, reader); err != nil {
		return err
	}
	log.Infof("regular report %s rendered %s (%s)", rpt.Name, fileName, humanize.Bytes(uint64(size)))

	names := make([]string, 0, len(sections))
	for _, sec := range sections {
		names = append(names, sec.Name)
	}
	if err := repository.RegularReportDao.CreateLog(ctx, &model.RegularReportLog{
		ID:          utils.UUID(),
		Name:        rpt.Name,
		ExecuteTime: utils.NowJsonTime(),
		ReportType:  strings.Join(names, ","),
		FileName:    fileName,
	}); err != nil {
		return err
	}

	recipients := utils.RemoveDuplicatesAndEmpty(strings.Split(rpt.Recipients, ","))
	if len(recipients) == 0 {
		return nil
	}
	body, err := utils.Export2Html(rpt.Name+" ("+start+" to "+end+")",
		[]string{"Section", "Rows"}, sectionSummary(sections))
	if err != nil {
		return err
	}
	if err := MailSrv.SendMail(ctx, recipients, rpt.Name, body, RegularReportPath+"/"+fileName); err != nil {
		log.Errorf("regular report %s mail failed: %v", rpt.Name, err)
		return err
	}
	return nil
}

func sectionSummary(sections []reportSection) [][]string {
	out := make([][]string, 0, len(sections))
	for _, sec := range sections {
		out = append(out, []string{sec.Name, fmt.Sprintf("%d", len(sec.Rows))})
	}
	return out
}
