package user

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/user"
)

// QueryUsersUseCase 用户查询(只读)
type QueryUsersUseCase struct {
	userService user.Service
}

// NewQueryUsersUseCase 创建用户查询用例
func NewQueryUsersUseCase(userService user.Service) *QueryUsersUseCase {
	return &QueryUsersUseCase{userService: userService}
}

// List 全部用户
func (uc *QueryUsersUseCase) List(ctx context.Context) ([]UserDTO, error) {
	users, err := uc.userService.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewUserDTOs(users), nil
}

// ByID 按id查询
func (uc *QueryUsersUseCase) ByID(ctx context.Context, id uint) (*UserDTO, error) {
	u, err := uc.userService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := NewUserDTO(u)
	return &dto, nil
}

// ByUsername 按用户名查询
func (uc *QueryUsersUseCase) ByUsername(ctx context.Context, username string) (*UserDTO, error) {
	u, err := uc.userService.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	dto := NewUserDTO(u)
	return &dto, nil
}
