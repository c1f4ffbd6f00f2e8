package admin

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookstore-api/internal/domain/admin"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
)

// LoginUseCase 管理员登录
// 设计说明:
// 1. 校验账号密码后签发JWT,会话写入Redis,有效期与Token一致
// 2. 登录结果计入admin_logins_total
type LoginUseCase struct {
	adminService admin.Service
	sessions     admin.SessionStore
	jwtManager   *jwt.Manager
	logger       *zap.Logger
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(adminService admin.Service, sessions admin.SessionStore, jwtManager *jwt.Manager, logger *zap.Logger) *LoginUseCase {
	return &LoginUseCase{
		adminService: adminService,
		sessions:     sessions,
		jwtManager:   jwtManager,
		logger:       logger,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Username string
	Password string
	ClientIP string
}

// LoginResponse 登录结果,Token写入Cookie
type LoginResponse struct {
	SessionID string
	Token     string
	ExpiresAt time.Time
	AdminID   uint
	Username  string
}

// Execute 校验账号密码，签发Token并写入会话
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	a, err := uc.adminService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		metrics.IncCounterVec(metrics.AdminLoginsTotal, map[string]string{"result": "failure"})
		uc.logger.Info("admin login rejected", zap.String("username", req.Username), zap.String("client_ip", req.ClientIP))
		return nil, err
	}

	token, err := uc.jwtManager.GenerateToken(a.ID, a.Username)
	if err != nil {
		return nil, err
	}

	session := &admin.Session{
		ID:       token.ID,
		AdminID:  a.ID,
		Username: a.Username,
		LoginAt:  time.Now(),
		ClientIP: req.ClientIP,
	}
	if err := uc.sessions.Save(ctx, session, uc.jwtManager.TTL()); err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.AdminLoginsTotal, map[string]string{"result": "success"})
	uc.logger.Info("admin logged in", zap.Uint("admin_id", a.ID), zap.String("client_ip", req.ClientIP))

	return &LoginResponse{
		SessionID: token.ID,
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		AdminID:   a.ID,
		Username:  a.Username,
	}, nil
}

// AuthorizeUseCase 校验会话Token
// 顺序:黑名单 → 签名与有效期 → Redis会话(按jti查找)
type AuthorizeUseCase struct {
	sessions   admin.SessionStore
	jwtManager *jwt.Manager
}

// NewAuthorizeUseCase 创建会话校验用例
func NewAuthorizeUseCase(sessions admin.SessionStore, jwtManager *jwt.Manager) *AuthorizeUseCase {
	return &AuthorizeUseCase{sessions: sessions, jwtManager: jwtManager}
}

// Execute 返回Token中的Claims，任一步失败都视为未登录
func (uc *AuthorizeUseCase) Execute(ctx context.Context, token string) (*jwt.Claims, error) {
	revoked, err := uc.sessions.IsRevoked(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, admin.ErrSessionNotFound
	}

	claims, err := uc.jwtManager.ParseToken(token)
	if err != nil {
		return nil, err
	}

	session, err := uc.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session.AdminID != claims.AdminID {
		return nil, admin.ErrSessionNotFound
	}
	return claims, nil
}

// LogoutUseCase 退出登录
// 删除会话,并把Token按剩余有效期加入黑名单
type LogoutUseCase struct {
	sessions admin.SessionStore
	logger   *zap.Logger
}

// NewLogoutUseCase 创建退出用例
func NewLogoutUseCase(sessions admin.SessionStore, logger *zap.Logger) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, logger: logger}
}

// Execute 删除当前会话并拉黑Token
func (uc *LogoutUseCase) Execute(ctx context.Context, token string, claims *jwt.Claims) error {
	if err := uc.sessions.Delete(ctx, claims.ID); err != nil {
		return err
	}
	if err := uc.sessions.Revoke(ctx, token, claims.RemainingTTL(time.Now())); err != nil {
		return err
	}
	uc.logger.Info("admin logged out", zap.Uint("admin_id", claims.AdminID), zap.String("session_id", claims.ID))
	return nil
}
