package handlers

import (
	"photonx/internal/config"
	"photonx/internal/invoice"
	"photonx/internal/repos"
	"photonx/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	VariantHandler  *VariantHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	Auth            *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config, views fiber.Views, renderer invoice.Renderer) *Deps {
	userRepo := repos.NewUserRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	variantRepo := repos.NewVariantRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo, variantRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(orderRepo, userRepo)
	invoiceSvc := services.NewInvoiceService(orderRepo, userRepo, views, renderer, cfg.InvoiceDir)

	return &Deps{
		UserHandler:     &UserHandler{Auth: authSvc, Users: userRepo},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc, UploadDir: cfg.UploadDir},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, UploadDir: cfg.UploadDir},
		VariantHandler:  &VariantHandler{Catalog: catalogSvc, UploadDir: cfg.UploadDir},
		CartHandler:     &CartHandler{Cart: cartSvc},
		OrderHandler:    &OrderHandler{Order: orderSvc, Invoice: invoiceSvc},
		Auth:            authSvc,
	}
}
