package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appadmin "github.com/xiebiao/bookstore-api/internal/application/admin"
	"github.com/xiebiao/bookstore-api/internal/domain/admin"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/password"
)

const (
	dashboardPath = "/admins/dashboard"
	incorrectPath = "/admins/incorrect"
	cookiePath    = "/admins"
)

// page 页面模板数据
type page struct {
	Title    string
	Action   string
	Submit   string
	Username string
	Error    string
	View     *appadmin.DashboardView
}

// AdminHandler 管理后台页面
// 说明：渲染HTML而不是JSON，错误以页面提示或重定向表达
type AdminHandler struct {
	registerUseCase  *appadmin.RegisterUseCase
	loginUseCase     *appadmin.LoginUseCase
	logoutUseCase    *appadmin.LogoutUseCase
	dashboardUseCase *appadmin.DashboardUseCase
	cookie           config.JWTConfig
	logger           *zap.Logger
}

// NewAdminHandler 创建后台处理器
func NewAdminHandler(
	registerUseCase *appadmin.RegisterUseCase,
	loginUseCase *appadmin.LoginUseCase,
	logoutUseCase *appadmin.LogoutUseCase,
	dashboardUseCase *appadmin.DashboardUseCase,
	cookie config.JWTConfig,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		registerUseCase:  registerUseCase,
		loginUseCase:     loginUseCase,
		logoutUseCase:    logoutUseCase,
		dashboardUseCase: dashboardUseCase,
		cookie:           cookie,
		logger:           logger,
	}
}

// Home 后台首页
func (h *AdminHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", page{Title: "Bookstore Admin"})
}

// LoginPage 登录表单
func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginPage())
}

// Login 处理登录表单
// 成功写入会话Cookie并跳转到后台首页；账号或密码错误跳转到错误页
func (h *AdminHandler) Login(c *gin.Context) {
	var form dto.AdminForm
	if err := c.ShouldBind(&form); err != nil {
		p := loginPage()
		p.Username = form.Username
		p.Error = "Username and password must be 4 to 20 characters."
		c.HTML(http.StatusBadRequest, "login.html", p)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appadmin.LoginRequest{
		Username: form.Username,
		Password: form.Password,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			h.logger.Error("admin login failed", zap.String("username", form.Username), zap.Error(err))
		}
		c.Redirect(http.StatusSeeOther, incorrectPath)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, result.Token, maxAge, cookiePath, "", h.cookie.CookieSecure, true)
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

// RegisterPage 注册表单
func (h *AdminHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", registerPage())
}

// Register 处理注册表单
func (h *AdminHandler) Register(c *gin.Context) {
	var form dto.AdminForm
	if err := c.ShouldBind(&form); err != nil {
		p := registerPage()
		p.Username = form.Username
		p.Error = "Username and password must be 4 to 20 characters."
		c.HTML(http.StatusBadRequest, "register.html", p)
		return
	}

	if err := h.registerUseCase.Execute(c.Request.Context(), form.Username, form.Password); err != nil {
		p := registerPage()
		p.Username = form.Username
		status := http.StatusConflict
		switch {
		case errors.Is(err, admin.ErrUsernameTaken):
			p.Error = admin.ErrUsernameTaken.Message
		case errors.Is(err, password.ErrTooLong):
			p.Error = password.ErrTooLong.Message
			status = http.StatusBadRequest
		default:
			h.logger.Error("admin register failed", zap.String("username", form.Username), zap.Error(err))
			p.Error = "Registration failed, please try again later."
			status = http.StatusInternalServerError
		}
		c.HTML(status, "register.html", p)
		return
	}
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Incorrect 账号或密码错误页
func (h *AdminHandler) Incorrect(c *gin.Context) {
	c.HTML(http.StatusOK, "incorrect.html", page{Title: "Incorrect credentials"})
}

// Dashboard 后台首页，需要登录
func (h *AdminHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetAdminClaims(c)
	view, err := h.dashboardUseCase.Execute(c.Request.Context(), claims.AdminID)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			// 账号已不存在，会话作废
			c.Redirect(http.StatusFound, middleware.LoginPath)
			return
		}
		h.logger.Error("render dashboard", zap.Uint("admin_id", claims.AdminID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "dashboard.html", page{Title: "Dashboard", View: &appadmin.DashboardView{}})
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", page{Title: "Dashboard", View: view})
}

// Logout 结束会话并清除Cookie
func (h *AdminHandler) Logout(c *gin.Context) {
	claims := middleware.GetAdminClaims(c)
	if err := h.logoutUseCase.Execute(c.Request.Context(), middleware.GetSessionToken(c), claims); err != nil {
		h.logger.Error("admin logout failed", zap.Uint("admin_id", claims.AdminID), zap.Error(err))
	}
	c.SetCookie(h.cookie.CookieName, "", -1, cookiePath, "", h.cookie.CookieSecure, true)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func loginPage() page {
	return page{Title: "Login", Action: middleware.LoginPath, Submit: "Log in"}
}

func registerPage() page {
	return page{Title: "Register", Action: "/admins/register", Submit: "Register"}
}
