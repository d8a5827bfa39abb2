// Package http wires the storefront: it is the only place that decides which
// screen follows a selection. Views just render links and forms.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/catalog"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/flash"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/handlers"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/middleware"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/render"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/sessioncookie"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/cart"
)

type Config struct {
	CookieSecret []byte
	CookieSecure bool
	TemplatesDir string
}

func NewRouter(logger *slog.Logger, cat *catalog.Client, mgr *cart.Manager, cfg Config) (*gin.Engine, error) {
	r := gin.New()

	htmlRender, err := render.NewHTMLRenderer(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	r.HTMLRender = htmlRender

	sessionCodec := sessioncookie.New(cfg.CookieSecret, "sb_session", cfg.CookieSecure)
	flashCodec := flash.NewCodec(cfg.CookieSecret, "sb_flash", cfg.CookieSecure)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger),
		middleware.Flash(flashCodec),
		middleware.Session(sessionCodec),
		middleware.CartCount(mgr, logger),
	)

	menu := handlers.NewMenuHandler(cat)
	category := handlers.NewCategoryHandler(cat)
	product := handlers.NewProductHandler(cat)
	cartH := handlers.NewCartHandler(cat, mgr, flashCodec)
	checkoutH := handlers.NewCheckoutHandler(mgr, flashCodec)

	r.GET("/", menu.Get)
	r.GET("/categoria/:slug", category.Get)
	r.GET("/producto/:id", product.Get)

	r.GET("/carrito", cartH.Get)
	r.POST("/carrito/agregar", cartH.Add)
	r.POST("/carrito/actualizar", cartH.Update)
	r.POST("/carrito/eliminar", cartH.Remove)

	r.GET("/checkout", checkoutH.Get)
	r.POST("/checkout", checkoutH.Post)

	return r, nil
}
