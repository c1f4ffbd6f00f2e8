package user

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/user"
)

// UpdateUserUseCase 更新用户资料
type UpdateUserUseCase struct {
	userService user.Service
}

// NewUpdateUserUseCase 创建更新用户用例
func NewUpdateUserUseCase(userService user.Service) *UpdateUserUseCase {
	return &UpdateUserUseCase{userService: userService}
}

// UpdateUserRequest 邮箱不可修改，因此不在请求中
type UpdateUserRequest struct {
	ID          uint
	Name        string
	Username    string
	HomeAddress string
	Password    string
}

// Execute 更新资料并重新哈希密码
func (uc *UpdateUserUseCase) Execute(ctx context.Context, req UpdateUserRequest) error {
	_, err := uc.userService.UpdateProfile(ctx, req.ID, user.Profile{
		Name:        req.Name,
		Username:    req.Username,
		HomeAddress: req.HomeAddress,
		Password:    req.Password,
	})
	return err
}
