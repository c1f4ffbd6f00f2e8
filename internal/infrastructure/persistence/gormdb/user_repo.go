package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/user"
)

// userRepository 用户仓储实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := fromUserEntity(u)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrUsernameDuplicate
		}
		return dbError("create user", err)
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

// Update 更新用户资料
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	model := fromUserEntity(u)
	result := conn(ctx, r.db).Model(model).Select("name", "username", "home_address", "password", "updated_at").Updates(model)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return user.ErrUsernameDuplicate
		}
		return dbError("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, dbError("find user", err)
	}
	return toUserEntity(&model), nil
}

// FindByUsername 根据用户名查找用户
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var model UserModel
	if err := conn(ctx, r.db).Where("username = ?", username).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, dbError("find user by username", err)
	}
	return toUserEntity(&model), nil
}

// List 全部用户，按id升序
func (r *userRepository) List(ctx context.Context) ([]*user.User, error) {
	var models []UserModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, dbError("list users", err)
	}

	users := make([]*user.User, len(models))
	for i := range models {
		users[i] = toUserEntity(&models[i])
	}
	return users, nil
}

// Count 用户总数
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&UserModel{}).Count(&n).Error; err != nil {
		return 0, dbError("count users", err)
	}
	return n, nil
}

func fromUserEntity(u *user.User) *UserModel {
	return &UserModel{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		HomeAddress: u.HomeAddress,
		Password:    u.Password,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUserEntity(m *UserModel) *user.User {
	return &user.User{
		ID:          m.ID,
		Name:        m.Name,
		Username:    m.Username,
		Email:       m.Email,
		HomeAddress: m.HomeAddress,
		Password:    m.Password,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
