package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/admin"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓储
func NewAdminRepository(db *gorm.DB) admin.Repository {
	return &adminRepository{db: db}
}

// Create 创建管理员
func (r *adminRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := &AdminModel{Username: a.Username, Password: a.PasswordHash, CreatedAt: a.CreatedAt}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return admin.ErrUsernameTaken
		}
		return dbError("create admin", err)
	}
	a.ID = model.ID
	return nil
}

// FindByUsername 根据用户名查找管理员
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	return r.findOne(ctx, "username = ?", username)
}

// FindByID 根据ID查找管理员
func (r *adminRepository) FindByID(ctx context.Context, id uint) (*admin.Admin, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *adminRepository) findOne(ctx context.Context, query string, arg any) (*admin.Admin, error) {
	var model AdminModel
	if err := conn(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, dbError("find admin", err)
	}
	return &admin.Admin{
		ID:           model.ID,
		Username:     model.Username,
		PasswordHash: model.Password,
		CreatedAt:    model.CreatedAt,
	}, nil
}
