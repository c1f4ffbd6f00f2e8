// Package admin 管理后台用例
package admin

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/admin"
)

// RegisterUseCase 注册管理员
type RegisterUseCase struct {
	adminService admin.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(adminService admin.Service) *RegisterUseCase {
	return &RegisterUseCase{adminService: adminService}
}

// Execute 用户名重复时返回admin.ErrUsernameTaken
func (uc *RegisterUseCase) Execute(ctx context.Context, username, password string) error {
	_, err := uc.adminService.Register(ctx, username, password)
	return err
}
