package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookstore-api/internal/domain/admin"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// Key设计：冒号分隔命名空间，便于按前缀监控和清理
const (
	sessionKeyPrefix   = "admin:session:"
	blacklistKeyPrefix = "admin:blacklist:"
)

// SessionStore 管理后台会话存储
// 设计说明：
// 1. admin:session:{jti} 哈希保存登录信息，TTL与Token有效期一致
// 2. admin:blacklist:{token} 保存已登出的Token，TTL为Token剩余有效期
// 3. 两类Key过期后自动删除，无需手动清理
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

var _ admin.SessionStore = (*SessionStore)(nil)

// Save 保存会话
// 学习要点：HSet和Expire放在同一个事务管道里，避免只写入不过期
func (s *SessionStore) Save(ctx context.Context, sess *admin.Session, ttl time.Duration) error {
	key := sessionKey(sess.ID)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]any{
			"admin_id":  sess.AdminID,
			"username":  sess.Username,
			"login_at":  sess.LoginAt.UTC().Format(time.RFC3339),
			"client_ip": sess.ClientIP,
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return apperrors.WithCause(apperrors.ErrRedisError, fmt.Errorf("save session: %w", err))
	}
	return nil
}

// Get 读取会话，不存在或已过期返回ErrSessionNotFound
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*admin.Session, error) {
	if sessionID == "" {
		return nil, admin.ErrSessionNotFound
	}
	fields, err := s.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, apperrors.WithCause(apperrors.ErrRedisError, fmt.Errorf("get session: %w", err))
	}
	if len(fields) == 0 {
		return nil, admin.ErrSessionNotFound
	}

	adminID, err := strconv.ParseUint(fields["admin_id"], 10, 64)
	if err != nil {
		return nil, apperrors.WithCause(apperrors.ErrRedisError, fmt.Errorf("corrupt session %s: %w", sessionID, err))
	}
	loginAt, _ := time.Parse(time.RFC3339, fields["login_at"])
	return &admin.Session{
		ID:       sessionID,
		AdminID:  uint(adminID),
		Username: fields["username"],
		LoginAt:  loginAt,
		ClientIP: fields["client_ip"],
	}, nil
}

// Delete 删除会话（登出）
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return apperrors.WithCause(apperrors.ErrRedisError, fmt.Errorf("delete session: %w", err))
	}
	return nil
}

// Revoke 将Token加入黑名单，ttl<=0时不写入（Token已经过期）
func (s *SessionStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, blacklistKeyPrefix+token, "revoked", ttl).Err(); err != nil {
		return apperrors.WithCause(apperrors.ErrRedisError, fmt.Errorf("revoke token: %w", err))
	}
	return nil
}

// IsRevoked 检查Token是否在黑名单中
func (s *SessionStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, apperrors.WithCause(apperrors.ErrRedisError, fmt.Errorf("check blacklist: %w", err))
	}
	return n > 0, nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
