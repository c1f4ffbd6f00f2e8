package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

const issuer = "bookstore-admin"

// Manager JWT管理器
// 设计说明：
// 1. 管理员登录后签发单个会话Token，存放在HttpOnly Cookie中
// 2. Token只证明身份，会话是否仍有效由Redis会话与黑名单决定
// 3. 每次签发生成唯一jti作为会话ID，同一管理员多处登录互不影响
type Manager struct {
	secret []byte
	expire time.Duration
}

// NewManager 创建JWT管理器
func NewManager(secret string, expire time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		expire: expire,
	}
}

// Claims 管理员会话Claims
type Claims struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token 签发结果
type Token struct {
	ID        string // jti
	Value     string
	ExpiresAt time.Time
}

// TTL Token有效期
func (m *Manager) TTL() time.Duration {
	return m.expire
}

// GenerateToken 为管理员签发会话Token
func (m *Manager) GenerateToken(adminID uint, username string) (*Token, error) {
	now := time.Now()
	expiresAt := now.Add(m.expire)
	id := uuid.NewString()

	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", adminID),
			ID:        id,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, apperrors.Wrap(err, "sign admin token")
	}

	return &Token{ID: id, Value: signed, ExpiresAt: expiresAt}, nil
}

// ParseToken 解析并验证Token
// 校验签名算法、签名、exp、nbf和签发者
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		// v5返回的是包装后的错误，必须用errors.Is判断
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.WithCause(apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}

// RemainingTTL Token剩余有效期，用于设置黑名单过期时间
func (c *Claims) RemainingTTL(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if d := c.ExpiresAt.Time.Sub(now); d > 0 {
		return d
	}
	return 0
}
