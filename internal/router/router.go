package router

import (
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/config"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/handler"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/infra"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/middleware"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	settings := config.NewSettingsStore(cfg)
	docStore := infra.NewDocStore()
	mailer := infra.NewMailer(cfg)
	sheetStore := infra.NewSheetStore(filepath.Join(cfg.DataRoot, "stocktake.xlsx"))
	archiver := infra.NewArchiver(filepath.Join(cfg.DataRoot, "backups"))

	// ── Repositories ─────────────────────────────────────────────────────────
	supplierRepo := repository.NewSupplierRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	approverRepo := repository.NewApproverRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	supplierSvc := service.NewSupplierService(supplierRepo)
	projectSvc := service.NewProjectService(projectRepo, docStore, settings)
	approverSvc := service.NewApproverService(approverRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, projectRepo, supplierRepo, settings)
	documentSvc := service.NewDocumentService(documentRepo, purchaseRepo, docStore, settings)
	reportSvc := service.NewReportService(purchaseRepo, projectRepo, approverRepo, mailer, settings, cfg.DataRoot)
	stocktakeSvc := service.NewStocktakeService(sheetStore)
	backupSvc := service.NewBackupService(archiver, projectRepo, cfg.DataRoot)
	dashboardSvc := service.NewDashboardService(supplierRepo, projectRepo, purchaseRepo, settings, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	suppliersH := handler.NewSuppliersHandler(supplierSvc, dashboardSvc)
	projectsH := handler.NewProjectsHandler(projectSvc, dashboardSvc)
	approversH := handler.NewApproversHandler(approverSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc, dashboardSvc)
	documentsH := handler.NewDocumentsHandler(documentSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	stocktakeH := handler.NewStocktakeHandler(stocktakeSvc)
	settingsH := handler.NewSettingsHandler(settings, backupSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/dashboard", dashboardH.Summary)

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.GetByID)
			suppliers.PUT("/:id", suppliersH.Update)
		}

		projects := v1.Group("/projects")
		{
			projects.POST("", projectsH.Create)
			projects.GET("", projectsH.List)
			projects.GET("/:id", projectsH.GetByID)
			projects.GET("/:id/report", reportsH.ProjectReport)
			projects.GET("/:id/report/csv", reportsH.ProjectCSV)
			projects.GET("/:id/report/pdf", reportsH.ProjectPDF)
			projects.POST("/:id/report/email", reportsH.EmailReport)
		}

		approvers := v1.Group("/approvers")
		{
			approvers.POST("", approversH.Create)
			approvers.GET("", approversH.List)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.POST("", purchasesH.Create)
			purchases.GET("", purchasesH.List) // filters: ?status=
			purchases.GET("/:id", purchasesH.GetByID)
			purchases.PATCH("/:id/stage", purchasesH.UpdateStage)
			purchases.POST("/:id/documents", documentsH.Save)
			purchases.GET("/:id/documents", documentsH.ListByPurchase)
		}

		v1.GET("/documents/recent", documentsH.ListRecent)

		stocktake := v1.Group("/stocktake")
		{
			stocktake.GET("", stocktakeH.View) // filters: ?filter= &sort_by=
			stocktake.POST("", stocktakeH.Save)
		}

		settingsG := v1.Group("/settings")
		{
			settingsG.GET("", settingsH.Get)
			settingsG.PUT("", settingsH.Update)
			settingsG.POST("/backup", settingsH.Backup)
		}
	}

	return r
}
