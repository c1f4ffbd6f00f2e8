package main

import (
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appadmin "github.com/xiebiao/bookstore-api/internal/application/admin"
	"github.com/xiebiao/bookstore-api/internal/domain/admin"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
)

// 自定义Provider：构造参数需要从Config中提取，或者需要附带cleanup

func provideDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := gormdb.NewDB(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func provideRedis(cfg *config.Config, logger *zap.Logger) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

func provideSessionStore(client *goredis.Client) admin.SessionStore {
	return redis.NewSessionStore(client)
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire)
}

func provideJWTConfig(cfg *config.Config) config.JWTConfig {
	return cfg.JWT
}

func provideAdminAuth(authorize *appadmin.AuthorizeUseCase, cfg *config.Config, logger *zap.Logger) *middleware.AdminAuth {
	return middleware.NewAdminAuth(authorize, cfg.JWT.CookieName, logger)
}
