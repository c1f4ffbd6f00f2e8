package user

import (
	"context"
	"errors"
)

// Service 用户领域服务
// 设计说明：
// 1. 用户名唯一性先查一次给出友好错误，数据库唯一索引兜底并发插入
// 2. 更新时改用户名也要检查冲突（排除自己）
type Service interface {
	Register(ctx context.Context, name, username, email, homeAddress, password string) (*User, error)
	UpdateProfile(ctx context.Context, id uint, profile Profile) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 检查用户名唯一后创建用户
func (s *service) Register(ctx context.Context, name, username, email, homeAddress, password string) (*User, error) {
	if err := s.ensureUsernameFree(ctx, username, 0); err != nil {
		return nil, err
	}

	u, err := NewUser(name, username, email, homeAddress, password)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateProfile 改用户名时同样检查唯一性
func (s *service) UpdateProfile(ctx context.Context, id uint, profile Profile) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if profile.Username != u.Username {
		if err := s.ensureUsernameFree(ctx, profile.Username, u.ID); err != nil {
			return nil, err
		}
	}

	if err := u.ApplyProfile(profile); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID 按id查询
func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByUsername 按用户名查询
func (s *service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// List 全部用户
func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) ensureUsernameFree(ctx context.Context, username string, self uint) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return ErrUsernameDuplicate
	default:
		return nil
	}
}
