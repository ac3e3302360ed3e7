package api

import (
	"bytes"
	"mime/multipart"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/signintech/gopdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

var assetExportHeader = []string{"Asset Tag", "Name", "Category", "Department", "Site", "Location", "Status", "Serial No", "Brand", "Purchase Cost", "Created"}

func AssetCreateEndpoint(c echo.Context) error {
	var req dto.AssetForCreate
	if err := c.Bind(&req); err != nil {
		log.Errorf("Bind Error: %v", err)
		return err
	}
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}

	ctx := service.ContextWithDB(global.DBConn)
	if _, err := repository.AssetDao.FindByTagId(ctx, req.AssetTagID); err == nil {
		return FailWithDataOperate(c, 400, "asset tag already exists", "create asset "+req.AssetTagID, nil)
	}

	asset := model.Asset{
		ID:            utils.UUID(),
		AssetTagID:    req.AssetTagID,
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		DepartmentID:  req.DepartmentID,
		Site:          req.Site,
		Location:      req.Location,
		SerialNo:      req.SerialNo,
		Brand:         req.Brand,
		PurchaseCost:  req.PurchaseCost,
		CurrentStock:  req.CurrentStock,
		MinStockLevel: req.MinStockLevel,
		Created:       utils.NowJsonTime(),
	}
	if req.PurchaseDate != "" {
		asset.PurchaseDate = utils.StringToJSONTime(req.PurchaseDate)
	}
	if req.CategoryID != "" {
		if cat, err := repository.CategoryDao.FindById(ctx, req.CategoryID); err == nil {
			asset.Category = cat.Name
		}
	}
	if req.DepartmentID != 0 {
		if dep, err := repository.DepartmentDao.FindById(ctx, req.DepartmentID); err == nil {
			asset.Department = dep.Name
		}
	}
	if account, found := GetCurrentAccount(c); found {
		asset.CreatedBy = account.Username
	}

	if err := repository.AssetDao.Create(ctx, &asset); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "create failed", "create asset "+req.AssetTagID, nil)
	}
	return SuccessWithOperate(c, "create asset "+req.AssetTagID, H{"id": asset.ID})
}

func AssetPagingEndpoint(c echo.Context) error {
	pageIndex, _ := strconv.Atoi(c.QueryParam("pageIndex"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	req := dto.AssetForSearch{
		Auto:       c.QueryParam("auto"),
		AssetTagID: c.QueryParam("assetTagId"),
		Name:       c.QueryParam("name"),
		Category:   c.QueryParam("category"),
		Department: c.QueryParam("department"),
		Site:       c.QueryParam("site"),
		Status:     c.QueryParam("status"),
		PageIndex:  pageIndex,
		PageSize:   pageSize,
	}

	ctx := service.ContextWithDB(global.DBConn)
	var (
		assets []model.Asset
		total  int64
	)
	// the list view is the hottest read, ride out short pool exhaustion
	err := repository.WithRetry(c.Request().Context(), func() (err error) {
		assets, total, err = repository.AssetDao.FindForPaging(ctx, req)
		return err
	})
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return err
	}

	items := make([]dto.AssetForPage, 0, len(assets))
	for _, a := range assets {
		items = append(items, dto.AssetForPage{
			ID:           a.ID,
			AssetTagID:   a.AssetTagID,
			Name:         a.Name,
			Category:     a.Category,
			Department:   a.Department,
			Site:         a.Site,
			Location:     a.Location,
			Status:       a.Status,
			PurchaseCost: a.PurchaseCost,
			Created:      a.Created,
		})
	}
	return Success(c, H{"total": total, "items": items})
}

func AssetGetEndpoint(c echo.Context) error {
	ctx := service.ContextWithDB(global.DBConn)
	asset, err := repository.AssetDao.FindById(ctx, c.Param("id"))
	if err == gorm.ErrRecordNotFound {
		return NotFound(c, "asset not found")
	}
	if err != nil {
		return err
	}
	return Success(c, asset)
}

func AssetUpdateEndpoint(c echo.Context) error {
	var req dto.AssetForUpdate
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.ID = c.Param("id")
	if err := c.Validate(req); err != nil {
		return FailWithData(c, 400, err.Error(), nil)
	}

	ctx := service.ContextWithDB(global.DBConn)
	asset, err := repository.AssetDao.FindById(ctx, req.ID)
	if err == gorm.ErrRecordNotFound {
		return NotFound(c, "asset not found")
	}
	if err != nil {
		return err
	}
	if !HasPermission(c, asset.DepartmentID) {
		return Fail(c, 403, "permission denied")
	}

	fields := map[string]interface{}{
		"name":            req.Name,
		"description":     req.Description,
		"site":            req.Site,
		"location":        req.Location,
		"serial_no":       req.SerialNo,
		"brand":           req.Brand,
		"purchase_cost":   req.PurchaseCost,
		"current_stock":   req.CurrentStock,
		"min_stock_level": req.MinStockLevel,
	}
	if req.PurchaseDate != "" {
		fields["purchase_date"] = utils.StringToJSONTime(req.PurchaseDate)
	}
	if req.CategoryID != "" {
		fields["category_id"] = req.CategoryID
		if cat, err := repository.CategoryDao.FindById(ctx, req.CategoryID); err == nil {
			fields["category"] = cat.Name
		}
	}
	if req.DepartmentID != 0 {
		fields["department_id"] = req.DepartmentID
		if dep, err := repository.DepartmentDao.FindById(ctx, req.DepartmentID); err == nil {
			fields["department"] = dep.Name
		}
	}
	if err := repository.AssetDao.UpdateById(ctx, req.ID, fields); err != nil {
		log.Errorf("DB Error: %v", err)
		return FailWithDataOperate(c, 500, "update failed", "update asset "+asset.AssetTagID, nil)
	}
	return SuccessWithOperate(c, "update asset "+asset.AssetTagID, nil)
}

// AssetDeleteEndpoint soft deletes, the nightly purge removes the row
// for good after the retention window.
func AssetDeleteEndpoint(c echo.Context) error {
	id := c.Param("id")
	ctx := service.ContextWithDB(global.DBConn)
	asset, err := repository.AssetDao.FindById(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return NotFound(c, "asset not found")
	}
	if err != nil {
		return err
	}
	if !HasPermission(c, asset.DepartmentID) {
		return Fail(c, 403, "permission denied")
	}
	if err := service.LifecycleSrv.SoftDeleteAsset(id); err != nil {
		return err
	}
	return SuccessWithOperate(c, "delete asset "+asset.AssetTagID, nil)
}

func AssetDownloadTemplateEndpoint(c echo.Context) error {
	header := []string{"Asset Tag", "Name", "Category", "Site", "Location", "Serial No", "Brand", "Purchase Cost"}
	file, err := utils.CreateExcelFile("assets", header, nil)
	if err != nil {
		return FailWithDataOperate(c, 500, "download failed", "", nil)
	}
	var buff bytes.Buffer
	if err = file.Write(&buff); err != nil {
		log.Errorf("Write Error: %v", err)
		return FailWithDataOperate(c, 500, "download failed", "", nil)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=asset-template.xlsx")
	return c.Stream(200, echo.MIMEOctetStream, bytes.NewReader(buff.Bytes()))
}

// AssetImportEndpoint bulk creates assets from an uploaded workbook,
// column order follows the template. Rows with a duplicate tag are
// skipped and reported back.
func AssetImportEndpoint(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		log.Errorf("FormFile Error: %v", err)
		return FailWithDataOperate(c, 500, "import failed", "", nil)
	}
	src, err := file.Open()
	if nil != err {
		log.Errorf("Open Error: %v", err)
		return FailWithDataOperate(c, 500, "import failed", "", nil)
	}
	defer func(src multipart.File) {
		if err := src.Close(); nil != err {
			log.Errorf("Close Error: %v", err)
		}
	}(src)

	xlsx, err := excelize.OpenReader(src)
	if nil != err {
		log.Errorf("OpenReader Error: %v", err)
		return FailWithDataOperate(c, 500, "import failed", "", nil)
	}
	records, err := xlsx.GetRows(xlsx.GetSheetName(xlsx.GetActiveSheetIndex()))
	if nil != err {
		log.Errorf("GetRows Error: %v", err)
		return FailWithDataOperate(c, 500, "import failed", "", nil)
	}
	if len(records) <= 1 {
		return FailWithDataOperate(c, 400, "import file is empty",
			"import assets: file ["+file.Filename+"] is empty", nil)
	}

	var creator string
	if account, found := GetCurrentAccount(c); found {
		creator = account.Username
	}

	ctx := service.ContextWithDB(global.DBConn)
	var created int
	var skipped []string
	for i, row := range records[1:] {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		asset := model.Asset{
			ID:         utils.UUID(),
			AssetTagID: row[0],
			Name:       row[1],
			Created:    utils.NowJsonTime(),
			CreatedBy:  creator,
		}
		if len(row) > 2 {
			asset.Category = row[2]
		}
		if len(row) > 3 {
			asset.Site = row[3]
		}
		if len(row) > 4 {
			asset.Location = row[4]
		}
		if len(row) > 5 {
			asset.SerialNo = row[5]
		}
		if len(row) > 6 {
			asset.Brand = row[6]
		}
		if len(row) > 7 {
			asset.PurchaseCost = utils.StringToFloat(row[7])
		}

		if _, err := repository.AssetDao.FindByTagId(ctx, asset.AssetTagID); err == nil {
			skipped = append(skipped, asset.AssetTagID)
			continue
		}
		if err := repository.AssetDao.Create(ctx, &asset); err != nil {
			log.Errorf("DB Error on row %d: %v", i+2, err)
			skipped = append(skipped, asset.AssetTagID)
			continue
		}
		created++
	}

	return SuccessWithOperate(c, "import assets: file ["+file.Filename+"]",
		H{"created": created, "skipped": skipped})
}

func AssetExportEndpoint(c echo.Context) error {
	rows, err := assetExportRows(c)
	if err != nil {
		return FailWithDataOperate(c, 500, "export failed", "", nil)
	}
	file, err := utils.CreateExcelFile("assets", assetExportHeader, rows)
	if err != nil {
		return FailWithDataOperate(c, 500, "export failed", "", nil)
	}
	var buff bytes.Buffer
	if err = file.Write(&buff); err != nil {
		log.Errorf("Write Error: %v", err)
		return FailWithDataOperate(c, 500, "export failed", "", nil)
	}
	writeOperateLog(c, "export assets to xlsx", constant.SuccessFlag)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=assets.xlsx")
	return c.Stream(200, echo.MIMEOctetStream, bytes.NewReader(buff.Bytes()))
}

func AssetExportCsvEndpoint(c echo.Context) error {
	rows, err := assetExportRows(c)
	if err != nil {
		return FailWithDataOperate(c, 500, "export failed", "", nil)
	}
	reader, err := utils.Export2Csv(assetExportHeader, rows)
	if err != nil {
		return FailWithDataOperate(c, 500, "export failed", "", nil)
	}
	writeOperateLog(c, "export assets to csv", constant.SuccessFlag)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=assets.csv")
	return c.Stream(200, "text/csv", reader)
}

func AssetExportPdfEndpoint(c echo.Context) error {
	rows, err := assetExportRows(c)
	if err != nil {
		return FailWithDataOperate(c, 500, "export failed", "", nil)
	}
	// narrow column set, a full row does not fit a portrait page
	header := []string{"Asset Tag", "Name", "Category", "Site", "Status"}
	narrow := make([][]string, 0, len(rows))
	for _, v := range rows {
		narrow = append(narrow, []string{v[0], v[1], v[2], v[4], v[6]})
	}
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()
	err, _, _ = utils.PdfExport(pdf, "Assets", header, []int{90, 150, 100, 100, 100}, narrow, 0, 0)
	if err != nil {
		log.Errorf("PdfExport Error: %v", err)
		return FailWithDataOperate(c, 500, "export failed", "", nil)
	}
	var buff bytes.Buffer
	if err := pdf.Write(&buff); err != nil {
		return FailWithDataOperate(c, 500, "export failed", "", nil)
	}
	writeOperateLog(c, "export assets to pdf", constant.SuccessFlag)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=assets.pdf")
	return c.Stream(200, "application/pdf", bytes.NewReader(buff.Bytes()))
}

func assetExportRows(c echo.Context) ([][]string, error) {
	ctx := service.ContextWithDB(global.DBConn)
	var departmentIds []int64
	if account, found := GetCurrentAccount(c); found && account.RoleName == constant.Manager {
		departmentIds = append(departmentIds, account.DepartmentID)
		if err := repository.DepartmentDao.GetChildDepIds(ctx, account.DepartmentID, &departmentIds); err != nil {
			return nil, err
		}
	}
	assets, err := repository.AssetDao.FindAllForExport(ctx, departmentIds)
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return nil, err
	}
	rows := make([][]string, 0, len(assets))
	for _, v := range assets {
		rows = append(rows, utils.Struct2StrArr(v))
	}
	return rows, nil
}

// AssetStockPagingEndpoint lists stockable assets below their minimum
// level. The comparison runs in memory over the stockable set.
func AssetStockPagingEndpoint(c echo.Context) error {
	pageIndex, _ := strconv.Atoi(c.QueryParam("pageIndex"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	ctx := service.ContextWithDB(global.DBConn)
	low, err := service.ReportSrv.LowStock(ctx)
	if err != nil {
		log.Errorf("DB Error: %v", err)
		return Fail(c, 500, "query failed")
	}

	total := len(low)
	start := (pageIndex - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Success(c, H{"total": total, "items": low[start:end]})
}
