package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/cart"
)

const cartCountKey = "cart_count"

// CartCount puts the session cart's total quantity in the context so every
// page can render the header badge. Must run after Session.
func CartCount(mgr *cart.Manager, l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if sid := GetSessionID(c); sid != "" {
			count, err := mgr.Store(sid).TotalItems()
			if err != nil {
				l.Warn("cart_count_failed", slog.String("session_id", sid), slog.Any("err", err))
			} else {
				n = count
			}
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
