package admin

import (
	"errors"
	"time"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/password"
)

// Admin 管理后台账号
// 设计说明:只保存bcrypt摘要,不提供读取明文的方法
type Admin struct {
	ID           uint
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewAdmin 创建管理员并哈希密码
func NewAdmin(username, plainPassword string) (*Admin, error) {
	digest, err := password.Hash(plainPassword)
	if errors.Is(err, password.ErrTooLong) {
		return nil, err
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "hash password")
	}
	return &Admin{Username: username, PasswordHash: digest, CreatedAt: time.Now()}, nil
}

// CheckPassword 恒定时间比较明文与摘要
func (a *Admin) CheckPassword(plain string) bool {
	ok, err := password.Verify(a.PasswordHash, plain)
	return err == nil && ok
}

// Session 登录会话,保存在Redis中
// ID取自Token的jti,一次登录一个会话
type Session struct {
	ID       string
	AdminID  uint
	Username string
	LoginAt  time.Time
	ClientIP string
}
