package author

import (
	"context"
	"errors"
)

// Service 作者领域服务
type Service interface {
	Create(ctx context.Context, name, biography, publisher string) (*Author, error)
	// Resolve 按名字查找作者，不存在时创建一个只有名字的作者
	Resolve(ctx context.Context, name string) (*Author, error)
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 重名返回ErrAuthorDuplicate
func (s *service) Create(ctx context.Context, name, biography, publisher string) (*Author, error) {
	a := &Author{Name: name, Biography: biography, Publisher: publisher}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Resolve 按名字查找作者，不存在则创建
func (s *service) Resolve(ctx context.Context, name string) (*Author, error) {
	a, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, ErrAuthorNotFound) {
		return nil, err
	}
	return s.Create(ctx, name, "", "")
}
