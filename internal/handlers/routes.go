package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/config"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/middleware"
	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/services"
	"gorm.io/gorm"
)

// Deps are the collaborators shared by every handler
type Deps struct {
	Config       *config.Config
	DB           *gorm.DB
	Log          *logger.Logger
	Integrations services.Integrations
	Runner       *services.ScanRunner
	HTTPClient   *http.Client
	// Admin guards destructive routes; nil lets every request through
	Admin services.SessionValidator
}

// Register mounts every API route on router
func Register(router fiber.Router, d *Deps) {
	admin := middleware.AuthAdmin(d.Admin)
	router.Use(middleware.VersionMiddleware(), middleware.BrandScope())

	health := &HealthHandler{d}
	router.Get("/health", health.Health)

	brands := &BrandHandler{d}
	router.Get("/brands", brands.List)
	router.Post("/brands", brands.Create)
	router.Get("/brands/:id", brands.Get)
	router.Put("/brands/:id", brands.Update)
	router.Delete("/brands/:id", admin, brands.Delete)
	router.Put("/brands/:id/integrations/facebook", brands.ConnectFacebook)
	router.Get("/brands/:id/integrations/google/auth-url", brands.GoogleAuthURL)
	router.Post("/brands/:id/integrations/google/exchange", brands.GoogleExchange)
	router.Get("/brands/:id/dashboard", brands.Dashboard)
	router.Get("/brands/:id/drive/files", brands.DriveFiles)

	ads := &AdHandler{d}
	router.Get("/ads", ads.List)
	router.Post("/ads", ads.Create)
	router.Post("/ads/import", ads.Import)
	router.Get("/ads/:id", ads.Get)
	router.Put("/ads/:id", ads.Update)
	router.Delete("/ads/:id", admin, ads.Delete)
	router.Get("/ads/:id/snapshots", ads.Snapshots)
	router.Post("/ads/:id/analyze", ads.Analyze)
	router.Get("/import-batches", ads.ImportBatches)

	registerTaxonomy[models.AdFormat](router, "/formats", d, admin)
	registerTaxonomy[models.AdHook](router, "/hooks", d, admin)
	registerTaxonomy[models.AdTheme](router, "/themes", d, admin)
	registerTaxonomy[models.AdDesire](router, "/desires", d, admin)
	registerTaxonomy[models.AdAwarenessLevel](router, "/awareness-levels", d, admin)
	registerTaxonomy[models.AdDemographic](router, "/demographics", d, admin)

	angles := &AngleHandler{d}
	router.Get("/angles", angles.List)
	router.Post("/angles", angles.Create)
	router.Get("/angles/:id", angles.Get)
	router.Put("/angles/:id", angles.Update)
	router.Delete("/angles/:id", admin, angles.Delete)
	router.Post("/angles/:id/concept-doc", angles.ConceptDoc)

	batches := &BatchHandler{d}
	router.Get("/batches", batches.List)
	router.Get("/batches/board", batches.Board)
	router.Post("/batches", batches.Create)
	router.Get("/batches/:id", batches.Get)
	router.Put("/batches/:id", batches.Update)
	router.Delete("/batches/:id", admin, batches.Delete)
	router.Put("/batches/:id/status", batches.SetStatus)
	router.Post("/batches/:id/trash", batches.Trash)
	router.Post("/batches/:id/restore", batches.Restore)
	router.Get("/batches/:id/performance", batches.Performance)
	router.Put("/batches/:id/creators", batches.SetCreators)
	router.Post("/batches/:id/brief", batches.Brief)
	router.Post("/batches/:id/variations", batches.Variations)
	router.Post("/batches/:id/items", batches.AddItem)
	router.Put("/batch-items/:id", batches.UpdateItem)
	router.Put("/batch-items/:id/status", batches.SetItemStatus)
	router.Delete("/batch-items/:id", batches.DeleteItem)

	creators := &CreatorHandler{d}
	router.Get("/creators", creators.List)
	router.Post("/creators", creators.Create)
	router.Get("/creators/:id", creators.Get)
	router.Put("/creators/:id", creators.Update)
	router.Delete("/creators/:id", admin, creators.Delete)
	router.Post("/creators/:id/deliveries", creators.StartDelivery)
	router.Post("/creators/:id/uploads", creators.Upload)

	creatives := &CreativeHandler{d}
	router.Get("/creatives", creatives.List)
	router.Get("/creatives/:id", creatives.Get)
	router.Put("/creatives/:id", creatives.Update)
	router.Delete("/creatives/:id", admin, creatives.Delete)
	router.Get("/creatives/:id/stream", creatives.Stream)
	router.Get("/tags", creatives.Tags)
	router.Post("/tags/apply", creatives.ApplyTags)
	router.Post("/tags/remove", creatives.RemoveTags)

	scans := &ScanHandler{d}
	router.Post("/brands/:id/scans", scans.Start)
	router.Get("/scan-jobs", scans.List)
	router.Get("/scan-jobs/:id", scans.Get)

	fb := &FacebookHandler{d}
	router.Post("/brands/:id/facebook/sync", fb.Sync)
	router.Get("/facebook-ads", fb.List)
	router.Put("/facebook-ads/:id/batch", fb.Link)
}
