// Package testutil 测试用的基础设施：SQLite内存库和miniredis
package testutil

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-api/pkg/password"
)

func init() {
	// 测试里bcrypt用最低代价，否则每次哈希几十毫秒
	password.Cost = bcrypt.MinCost
}

// Config 测试配置：sqlite内存库、test模式
func Config() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Name: "bookstore-test", Port: 8080, Mode: "test"},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   ":memory:",
			// 内存库每个连接是独立的库，只能有一个连接且不能被回收
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			AutoMigrate:  true,
		},
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			Expire:     30 * time.Minute,
			CookieName: "admin_session",
		},
	}
}

// NewDB 每个测试一个独立的空库
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gormdb.NewDB(Config(), zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewRedis 启动miniredis并返回连接它的客户端
func NewRedis(t testing.TB) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}
