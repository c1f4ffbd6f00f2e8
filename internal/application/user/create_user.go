package user

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/user"
)

// CreatedMessage 创建成功提示
const CreatedMessage = "Successfully created user"

// CreateUserUseCase 创建用户用例
type CreateUserUseCase struct {
	userService user.Service
}

// NewCreateUserUseCase 创建用例实例
func NewCreateUserUseCase(userService user.Service) *CreateUserUseCase {
	return &CreateUserUseCase{userService: userService}
}

// CreateUserRequest 创建用户请求DTO
type CreateUserRequest struct {
	Name        string
	Username    string
	Email       string
	HomeAddress string
	Password    string
}

// CreateUserResponse 创建用户响应
// 说明：message与用户字段平铺在同一个JSON对象中
type CreateUserResponse struct {
	Message string `json:"message"`
	UserDTO
}

// Execute 执行创建
// 业务规则：用户名重复返回409
func (uc *CreateUserUseCase) Execute(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	u, err := uc.userService.Register(ctx, req.Name, req.Username, req.Email, req.HomeAddress, req.Password)
	if err != nil {
		return nil, err
	}
	return &CreateUserResponse{Message: CreatedMessage, UserDTO: NewUserDTO(u)}, nil
}
