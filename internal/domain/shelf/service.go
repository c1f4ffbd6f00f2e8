package shelf

import (
	"context"
)

// Service 书架领域服务
// 设计说明:MoveToCart包含两次写操作,调用方必须把它放进同一个事务
type Service interface {
	Add(ctx context.Context, kind Kind, userID, bookID uint) error
	// MoveToCart 从心愿单移除并加入购物车;购物车里已有该书时只移除心愿单条目
	MoveToCart(ctx context.Context, userID, bookID uint) error
	BookIDs(ctx context.Context, kind Kind, userID uint) ([]uint, error)
}

type service struct {
	repo Repository
}

// NewService 创建书架领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Add 已存在返回ErrAlreadyInWishlist/ErrAlreadyInCart
func (s *service) Add(ctx context.Context, kind Kind, userID, bookID uint) error {
	return s.repo.Add(ctx, kind, userID, bookID)
}

// MoveToCart 从心愿单移到购物车，购物车里已有时只移除心愿单条目
func (s *service) MoveToCart(ctx context.Context, userID, bookID uint) error {
	if err := s.repo.Remove(ctx, KindWishlist, userID, bookID); err != nil {
		return err
	}

	inCart, err := s.repo.Contains(ctx, KindCart, userID, bookID)
	if err != nil {
		return err
	}
	if inCart {
		return nil
	}
	return s.repo.Add(ctx, KindCart, userID, bookID)
}

// BookIDs 按加入顺序返回图书id
func (s *service) BookIDs(ctx context.Context, kind Kind, userID uint) ([]uint, error) {
	return s.repo.BookIDs(ctx, kind, userID)
}
