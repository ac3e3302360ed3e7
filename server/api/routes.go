package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/validator"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
)

// SetupRoutes wires repositories, services, seed data and the http
// surface, in that order.
func SetupRoutes(db *gorm.DB) (*echo.Echo, error) {
	repository.SetupRepository(db)
	service.SetupService()
	service.SetupHub()

	if err := MigrateDB(db); err != nil {
		return nil, err
	}
	if err := InitDBData(); err != nil {
		return nil, err
	}
	if err := service.JobSrv.Setup(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(log.Hook())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))
	e.Use(ErrorHandler)
	e.Use(Auth)

	e.POST("/login", LoginEndpoint)
	e.POST("/logout", LogoutEndpoint)
	e.GET("/info", InfoEndpoint)
	e.POST("/users", UserCreateEndpoint)

	e.POST("/cron/dispatch", CronDispatchEndpoint, CronAuth)
	e.GET("/ws/activities", ActivityWsEndpoint)

	assets := e.Group("/assets")
	{
		assets.POST("", AssetCreateEndpoint)
		assets.GET("/paging", AssetPagingEndpoint)
		assets.GET("/stock", AssetStockPagingEndpoint)
		assets.GET("/:id", AssetGetEndpoint)
		assets.PUT("/:id", AssetUpdateEndpoint)
		assets.DELETE("/:id", AssetDeleteEndpoint)

		assets.GET("/download-template", AssetDownloadTemplateEndpoint)
		assets.POST("/import", AssetImportEndpoint)
		assets.GET("/export", AssetExportEndpoint)
		assets.GET("/export-csv", AssetExportCsvEndpoint)
		assets.GET("/export-pdf", AssetExportPdfEndpoint)

		assets.POST("/checkout", CheckoutEndpoint)
		assets.POST("/checkin", CheckinEndpoint)
		assets.POST("/lease", LeaseEndpoint)
		assets.POST("/lease-return", LeaseReturnEndpoint)
		assets.POST("/dispose", DisposeEndpoint)
		assets.POST("/maintenance", MaintenanceEndpoint)
		assets.POST("/reserve", ReserveEndpoint)
		assets.POST("/move", MoveEndpoint)
		assets.POST("/audit", AuditEndpoint)
		assets.GET("/:id/history", AssetHistoryEndpoint)

		assets.POST("/:id/file", AssetFileUploadEndpoint)
		assets.GET("/:id/file", AssetFileDownloadEndpoint)
	}

	e.PUT("/reservations/:id", ReservationUpdateEndpoint)
	e.PUT("/audits/:id/note", AuditNoteUpdateEndpoint)

	e.GET("/activities", ActivityPagingEndpoint)

	overview := e.Group("/overview")
	{
		overview.GET("/counter", OverviewCounterEndpoint)
		overview.GET("/group", OverviewGroupByEndpoint)
		overview.GET("/checkout-trend", OverviewCheckoutTrendEndpoint)
		overview.GET("/maintenance-trend", OverviewMaintenanceTrendEndpoint)
		overview.GET("/overdue", OverviewOverdueEndpoint)
		overview.GET("/system-info", OverviewSystemInfoEndpoint)
	}

	departments := e.Group("/departments")
	{
		departments.GET("/tree", DepartmentTreeEndpoint)
		departments.POST("", DepartmentCreateEndpoint)
		departments.PUT("/:id", DepartmentUpdateEndpoint)
		departments.DELETE("/:id", DepartmentDeleteEndpoint)
	}

	sites := e.Group("/sites")
	{
		sites.GET("", SiteListEndpoint)
		sites.POST("", SiteCreateEndpoint)
		sites.PUT("/:id", SiteUpdateEndpoint)
		sites.DELETE("/:id", SiteDeleteEndpoint)
	}

	locations := e.Group("/locations")
	{
		locations.GET("", LocationListEndpoint)
		locations.POST("", LocationCreateEndpoint)
		locations.PUT("/:id", LocationUpdateEndpoint)
		locations.DELETE("/:id", LocationDeleteEndpoint)
	}

	categories := e.Group("/categories")
	{
		categories.GET("", CategoryListEndpoint)
		categories.POST("", CategoryCreateEndpoint)
		categories.PUT("/:id", CategoryUpdateEndpoint)
		categories.DELETE("/:id", CategoryDeleteEndpoint)
	}

	reports := e.Group("/regular-reports")
	{
		reports.GET("", RegularReportPagingEndpoint)
		reports.POST("", RegularReportCreateEndpoint)
		reports.PUT("/:id", RegularReportUpdateEndpoint)
		reports.DELETE("/:id", RegularReportDeleteEndpoint)
		reports.POST("/:id/run", RegularReportRunEndpoint)
		reports.GET("/logs", RegularReportLogPagingEndpoint)
	}

	e.GET("/operate-logs", OperateLogPagingEndpoint)
	e.GET("/properties", PropertyGetEndpoint)
	e.PUT("/properties", PropertyUpdateEndpoint)
	e.POST("/properties/test-mail", MailTestEndpoint)

	return e, nil
}
