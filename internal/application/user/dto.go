package user

import (
	"github.com/samber/lo"

	"github.com/xiebiao/bookstore-api/internal/domain/user"
)

// UserDTO 用户响应
// 注意：password字段输出bcrypt摘要，与既有客户端保持一致
type UserDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	HomeAddress string `json:"home_address"`
	Password    string `json:"password"`
}

// NewUserDTO 领域对象 → DTO
func NewUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		HomeAddress: u.HomeAddress,
		Password:    u.Password,
	}
}

// NewUserDTOs 批量转换
func NewUserDTOs(users []*user.User) []UserDTO {
	return lo.Map(users, func(u *user.User, _ int) UserDTO { return NewUserDTO(u) })
}
