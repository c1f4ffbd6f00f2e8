package book

import (
	"context"
	"errors"
)

// TopSellerLimit 畅销榜最多返回的图书数
const TopSellerLimit = 10

// Service 图书领域服务接口
// 设计说明:
// 1. 封装图书的业务规则校验(价格、评分、销量、ISBN唯一)
// 2. 作者的查找/创建由应用层编排,这里只接收解析好的作者
type Service interface {
	Publish(ctx context.Context, d Details, authorID uint, authorName string) (*Book, error)
	Revise(ctx context.Context, id uint, d Details, authorID uint, authorName string) (*Book, error)
	Remove(ctx context.Context, id uint) error

	GetByID(ctx context.Context, id uint) (*Book, error)
	GetByISBN(ctx context.Context, isbn string) (*Book, error)

	All(ctx context.Context) ([]*Book, error)
	ByAuthor(ctx context.Context, authorName string) ([]*Book, error)
	ByGenre(ctx context.Context, genre string) ([]*Book, error)
	TopSellers(ctx context.Context) ([]*Book, error)
	ByMinRating(ctx context.Context, threshold float64) ([]*Book, error)
	FirstN(ctx context.Context, n int) ([]*Book, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Publish 校验并创建图书，ISBN重复返回ErrISBNDuplicate
func (s *service) Publish(ctx context.Context, d Details, authorID uint, authorName string) (*Book, error) {
	b, err := NewBook(d, authorID, authorName)
	if err != nil {
		return nil, err
	}
	if err := s.ensureISBNFree(ctx, d.ISBN, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Revise 修改图书，销量不能减少
func (s *service) Revise(ctx context.Context, id uint, d Details, authorID uint, authorName string) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.ISBN != b.ISBN {
		if err := s.ensureISBNFree(ctx, d.ISBN, b.ID); err != nil {
			return nil, err
		}
	}
	if err := b.Revise(d, authorID, authorName); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Remove 删除图书
func (s *service) Remove(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// GetByID 按id查询
func (s *service) GetByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByISBN 按ISBN查询
func (s *service) GetByISBN(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

// All 全部图书
func (s *service) All(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx, ListFilter{})
}

// ByAuthor 按作者名查询
func (s *service) ByAuthor(ctx context.Context, authorName string) ([]*Book, error) {
	return s.repo.List(ctx, ListFilter{AuthorName: authorName})
}

// ByGenre 按类别查询
func (s *service) ByGenre(ctx context.Context, genre string) ([]*Book, error) {
	return s.repo.List(ctx, ListFilter{Genre: genre})
}

// TopSellers 销量前TopSellerLimit本,不足时返回全部
func (s *service) TopSellers(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx, ListFilter{Sort: SortBySoldCopies, Limit: TopSellerLimit})
}

// ByMinRating 评分不低于阈值
func (s *service) ByMinRating(ctx context.Context, threshold float64) ([]*Book, error) {
	return s.repo.List(ctx, ListFilter{MinRating: &threshold})
}

// FirstN 按id顺序返回前n本;n为0返回空列表,n为负数报错
func (s *service) FirstN(ctx context.Context, n int) ([]*Book, error) {
	switch {
	case n < 0:
		return nil, ErrInvalidCount
	case n == 0:
		return []*Book{}, nil
	}
	return s.repo.List(ctx, ListFilter{Limit: n})
}

func (s *service) ensureISBNFree(ctx context.Context, isbn string, self uint) error {
	existing, err := s.repo.FindByISBN(ctx, isbn)
	switch {
	case errors.Is(err, ErrBookNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return ErrISBNDuplicate
	default:
		return nil
	}
}
