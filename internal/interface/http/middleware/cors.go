package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
)

// CORS 跨域配置
// 注意：允许携带凭证时不能使用通配来源
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		c.AllowAllOrigins = !cfg.AllowCredentials
		if cfg.AllowCredentials {
			c.AllowOriginFunc = func(string) bool { return true }
		}
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	if c.MaxAge == 0 {
		c.MaxAge = 12 * time.Hour
	}
	return cors.New(c)
}
