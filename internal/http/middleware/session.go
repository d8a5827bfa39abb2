package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/sessioncookie"
)

const CtxKeySessionID = "session_id"

// Session guarantees every request carries a browsing-session id, minting one
// on first contact. The id keys the in-memory cart; there is no server-side
// session record beyond that.
func Session(codec *sessioncookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := codec.GetSessionID(c)
		if !ok {
			id = uuid.NewString()
			codec.Set(c, id)
		}
		c.Set(CtxKeySessionID, id)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(CtxKeySessionID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
