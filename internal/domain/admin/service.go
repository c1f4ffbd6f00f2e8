package admin

import (
	"context"
	"errors"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// Service 管理员领域服务
type Service interface {
	Register(ctx context.Context, username, password string) (*Admin, error)
	// Authenticate 用户名不存在和密码错误统一返回ErrInvalidCredentials,不泄露账号是否存在
	Authenticate(ctx context.Context, username, password string) (*Admin, error)
}

type service struct {
	repo Repository
}

// NewService 创建管理员领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户名已存在返回ErrUsernameTaken
func (s *service) Register(ctx context.Context, username, password string) (*Admin, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, ErrAdminNotFound):
		return nil, err
	}

	a, err := NewAdmin(username, password)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Authenticate 用户不存在和密码错误返回同一个错误
func (s *service) Authenticate(ctx context.Context, username, password string) (*Admin, error) {
	a, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrAdminNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !a.CheckPassword(password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return a, nil
}
