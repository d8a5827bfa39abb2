package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/flash"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/middleware"
	"github.com/LucasBarberan/sra-burga-pedidos/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
