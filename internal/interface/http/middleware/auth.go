package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appadmin "github.com/xiebiao/bookstore-api/internal/application/admin"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
)

const (
	// LoginPath 未登录时跳转的页面
	LoginPath = "/admins/login"

	ctxKeyClaims = "admin_claims"
	ctxKeyToken  = "admin_token"
)

// AdminAuth 管理后台会话中间件
// 设计说明：
// 1. Token放在HttpOnly Cookie中，页面请求自动携带
// 2. 黑名单、签名与有效期、Redis会话三项都通过才放行
// 3. 任何一项失败都重定向到登录页，不返回JSON错误
type AdminAuth struct {
	authorize  *appadmin.AuthorizeUseCase
	cookieName string
	logger     *zap.Logger
}

// NewAdminAuth 创建后台会话中间件
func NewAdminAuth(authorize *appadmin.AuthorizeUseCase, cookieName string, logger *zap.Logger) *AdminAuth {
	return &AdminAuth{authorize: authorize, cookieName: cookieName, logger: logger}
}

// RequireAdmin 要求管理员登录
func (m *AdminAuth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			m.reject(c, "missing session cookie", err)
			return
		}

		claims, err := m.authorize.Execute(c.Request.Context(), token)
		if err != nil {
			m.reject(c, "session rejected", err)
			return
		}

		c.Set(ctxKeyClaims, claims)
		c.Set(ctxKeyToken, token)
		c.Next()
	}
}

func (m *AdminAuth) reject(c *gin.Context, reason string, err error) {
	m.logger.Debug(reason, zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.Redirect(http.StatusFound, LoginPath)
	c.Abort()
}

// GetAdminClaims 取当前管理员，仅在RequireAdmin之后可用
func GetAdminClaims(c *gin.Context) *jwt.Claims {
	if v, ok := c.Get(ctxKeyClaims); ok {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetSessionToken 取当前会话Token
func GetSessionToken(c *gin.Context) string {
	return c.GetString(ctxKeyToken)
}
