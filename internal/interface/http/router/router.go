// Package router 路由注册
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookstore-api/docs" // 注册Swagger文档
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/internal/interface/http/templates"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	User      *handler.UserHandler
	Card      *handler.CardHandler
	Author    *handler.AuthorHandler
	Book      *handler.BookHandler
	Shelf     *handler.ShelfHandler
	Review    *handler.ReviewHandler
	Admin     *handler.AdminHandler
	AdminAuth *middleware.AdminAuth
}

// New 创建Gin引擎并注册全部路由
// 中间件顺序：panic恢复 → 访问日志 → 链路追踪 → 指标 → CORS
func New(cfg *config.Config, logger *zap.Logger, h Handlers) (*gin.Engine, error) {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode, gin.DebugMode:
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.Tracing(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)

	tmpl, err := templates.Parse()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "healthy"})
	})

	if cfg.Metrics.Enabled {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.Handler()))
	}

	// 生产环境不暴露Swagger UI
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerAPI(r.Group("/api"), h)
	registerAdmin(r.Group("/admins"), h)

	return r, nil
}

func registerAPI(api *gin.RouterGroup, h Handlers) {
	// 用户
	api.GET("/users", h.User.ListUsers)
	api.GET("/users/:id", h.User.GetUser)
	api.GET("/user/:username", h.User.GetUserByUsername)
	api.POST("/users", h.User.CreateUser)
	api.PUT("/users/:id", h.User.UpdateUser)

	// 支付卡
	api.GET("/cards", h.Card.ListCards)
	api.POST("/cards", h.Card.CreateCard)

	// 心愿单与购物车
	api.GET("/wishlist/:username", h.Shelf.Wishlist)
	api.POST("/wishlist/:username", h.Shelf.AddToWishlist)
	api.DELETE("/wishlist/:username", h.Shelf.MoveToCart)
	api.GET("/shopping-cart/:username", h.Shelf.Cart)

	// 作者
	api.POST("/author", h.Author.CreateAuthor)

	// 图书
	api.POST("/book", h.Book.CreateBook)
	api.GET("/book/:isbn", h.Book.GetBookByISBN)
	api.PUT("/book/:id", h.Book.UpdateBook)
	api.DELETE("/book/:id", h.Book.DeleteBook)
	api.GET("/books", h.Book.ListBooks)
	api.GET("/books/:name", h.Book.ListByAuthor)
	api.GET("/books/genre/:genre", h.Book.ListByGenre)
	api.GET("/books/rating/:rating", h.Book.ListByRating)
	api.GET("/books/return/:record", h.Book.FirstN)
	api.GET("/top-seller-books", h.Book.TopSellers)

	// 书评
	api.GET("/books/average/:id", h.Review.AverageRating)
	api.POST("/reviews/:username", h.Review.AddReview)
	api.GET("/reviews", h.Review.ListReviews)
}

func registerAdmin(admins *gin.RouterGroup, h Handlers) {
	admins.GET("/", h.Admin.Home)

	admins.GET("/login", h.Admin.LoginPage)
	admins.POST("/login", h.Admin.Login)
	admins.GET("/register", h.Admin.RegisterPage)
	admins.POST("/register", h.Admin.Register)
	admins.GET("/incorrect", h.Admin.Incorrect)
	admins.POST("/incorrect", h.Admin.Incorrect)

	authorized := admins.Group("")
	authorized.Use(h.AdminAuth.RequireAdmin())
	authorized.GET("/dashboard", h.Admin.Dashboard)
	authorized.POST("/dashboard", h.Admin.Dashboard)
	authorized.GET("/logout", h.Admin.Logout)
	authorized.POST("/logout", h.Admin.Logout)
}
