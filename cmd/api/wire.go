//go:build wireinject
// +build wireinject

// Wire依赖注入声明
//
// 修改Provider后重新生成：
//
//	wire gen ./cmd/api
//
// 依赖链：Config → DB/Redis/MQ → Repository → Service → UseCase → Handler → *gin.Engine

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	appadmin "github.com/xiebiao/bookstore-api/internal/application/admin"
	appauthor "github.com/xiebiao/bookstore-api/internal/application/author"
	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	appcard "github.com/xiebiao/bookstore-api/internal/application/card"
	appreview "github.com/xiebiao/bookstore-api/internal/application/review"
	appshelf "github.com/xiebiao/bookstore-api/internal/application/shelf"
	appuser "github.com/xiebiao/bookstore-api/internal/application/user"
	"github.com/xiebiao/bookstore-api/internal/domain/admin"
	"github.com/xiebiao/bookstore-api/internal/domain/author"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/shelf"
	"github.com/xiebiao/bookstore-api/internal/domain/user"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/messaging"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-api/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-api/internal/interface/http/router"
)

// infrastructureSet 基础设施：数据库、Redis、事件发布、JWT
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	provideSessionStore,
	provideJWTManager,
	provideJWTConfig,
	messaging.NewPublisher,
	gormdb.NewTxManager,
)

// repositorySet 仓储
var repositorySet = wire.NewSet(
	gormdb.NewUserRepository,
	gormdb.NewCardRepository,
	gormdb.NewAuthorRepository,
	gormdb.NewBookRepository,
	gormdb.NewReviewRepository,
	gormdb.NewShelfRepository,
	gormdb.NewAdminRepository,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	user.NewService,
	author.NewService,
	book.NewService,
	shelf.NewService,
	admin.NewService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appuser.NewCreateUserUseCase,
	appuser.NewUpdateUserUseCase,
	appuser.NewQueryUsersUseCase,
	appcard.NewAddCardUseCase,
	appcard.NewListCardsUseCase,
	appauthor.NewCreateAuthorUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewBrowseBooksUseCase,
	appshelf.NewAddToWishlistUseCase,
	appshelf.NewMoveToCartUseCase,
	appshelf.NewListShelfUseCase,
	appreview.NewAddReviewUseCase,
	appreview.NewAverageRatingUseCase,
	appreview.NewListReviewsUseCase,
	appadmin.NewRegisterUseCase,
	appadmin.NewLoginUseCase,
	appadmin.NewAuthorizeUseCase,
	appadmin.NewLogoutUseCase,
	appadmin.NewDashboardUseCase,
)

// interfaceSet 处理器与路由
var interfaceSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewCardHandler,
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewShelfHandler,
	handler.NewReviewHandler,
	handler.NewAdminHandler,
	provideAdminAuth,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用，cleanup按创建的逆序释放连接
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil, nil
}
