package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/middleware"
	"github.com/LucasBarberan/sra-burga-pedidos/pkg/view"
)

func pageChrome(c *gin.Context, title string) view.Page {
	return view.Page{
		Title:     title,
		CartCount: middleware.GetCartCount(c),
		Flash:     middleware.GetFlash(c),
	}
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
