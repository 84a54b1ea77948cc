package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"photonx/internal/config"
	"photonx/internal/http/handlers"
	"photonx/internal/invoice"
	applog "photonx/internal/log"
	"photonx/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Invoice templates are rendered outside the request views, so the
	// engine is loaded eagerly here.
	engine := html.New("./web/templates", ".html")
	if err := engine.Load(); err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false, "message": "Server error",
			})
		},
	})
	// Global body size guard (uploads included)
	app.Server().MaxRequestBodySize = 8 << 20 // 8 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/public/")
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// ---------- Static uploads ----------
	uploadDir := cfg.UploadDir
	if !filepath.IsAbs(uploadDir) {
		if abs, err := filepath.Abs(uploadDir); err == nil {
			uploadDir = abs
		}
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal(err)
	}
	log.Printf("[static] /public/uploads -> %s", uploadDir)
	app.Static("/public/uploads", uploadDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, engine, invoice.NewPDFRenderer())
	authed := handlers.RequireAuth(deps.Auth)

	api := app.Group("/api")

	// Users (login throttled)
	api.Post("/User/register", deps.UserHandler.Register)
	api.Post("/User/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, retry later"})
		},
	}), deps.UserHandler.Login)
	api.Get("/User/get", deps.UserHandler.List)
	api.Get("/User/details", authed, deps.UserHandler.Details)
	api.Patch("/User/update/:id", deps.UserHandler.Update)
	api.Delete("/User/delete/:id", deps.UserHandler.Delete)
	api.Post("/User/reset", deps.UserHandler.Reset)

	// Categories
	api.Post("/Category/create", deps.CategoryHandler.Create)
	api.Get("/Category/get", deps.CategoryHandler.List)
	api.Get("/Category/get/:id", deps.CategoryHandler.Get)
	api.Patch("/Category/update/:id", deps.CategoryHandler.Update)
	api.Delete("/Category/delete/:id", deps.CategoryHandler.Delete)

	// Products
	api.Post("/Product/create", deps.ProductHandler.Create)
	api.Get("/Product/get", deps.ProductHandler.List)
	api.Get("/Product/get/:id", deps.ProductHandler.Get)
	api.Patch("/Product/update/:id", deps.ProductHandler.Update)
	api.Delete("/Product/delete/:id", deps.ProductHandler.Delete)

	// Variants
	api.Post("/Variant/create", deps.VariantHandler.Create)

	// Cart
	api.Post("/Cart/add", authed, deps.CartHandler.Add)
	api.Get("/Cart/token", authed, deps.CartHandler.Get)
	api.Patch("/Cart/update", authed, deps.CartHandler.Update)
	api.Patch("/Cart/quantity", authed, deps.CartHandler.Quantity)
	api.Delete("/Cart/remove", authed, deps.CartHandler.Remove)

	// Orders & invoices
	api.Post("/Order/create", authed, deps.OrderHandler.Create)
	api.Get("/Order/getbytoken", authed, deps.OrderHandler.ByToken)
	api.Get("/Order/getallorders", deps.OrderHandler.ListAll)
	api.Patch("/Order/status/:orderId", authed, deps.OrderHandler.UpdateStatus)
	api.Get("/Order/Invoice/:orderId", deps.OrderHandler.GetInvoice)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
