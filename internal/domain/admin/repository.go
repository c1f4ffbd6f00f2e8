package admin

import (
	"context"
	"time"
)

// Repository 管理员仓储
type Repository interface {
	Create(ctx context.Context, admin *Admin) error
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	FindByID(ctx context.Context, id uint) (*Admin, error)
}

// SessionStore 会话存储(Redis实现)
// 设计说明:JWT本身无状态,服务端靠会话记录和Token黑名单实现主动登出
type SessionStore interface {
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
