package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// BrowseBooksUseCase 图书查询(只读)
type BrowseBooksUseCase struct {
	bookService book.Service
}

// NewBrowseBooksUseCase 创建图书查询用例
func NewBrowseBooksUseCase(bookService book.Service) *BrowseBooksUseCase {
	return &BrowseBooksUseCase{bookService: bookService}
}

// ByISBN 按ISBN查询单本
func (uc *BrowseBooksUseCase) ByISBN(ctx context.Context, isbn string) (*BookDTO, error) {
	b, err := uc.bookService.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	dto := NewBookDTO(b)
	return &dto, nil
}

// All 全部图书，按id升序
func (uc *BrowseBooksUseCase) All(ctx context.Context) ([]BookDTO, error) {
	return list(uc.bookService.All(ctx))
}

// ByAuthor 作者名完全匹配
func (uc *BrowseBooksUseCase) ByAuthor(ctx context.Context, name string) ([]BookDTO, error) {
	return list(uc.bookService.ByAuthor(ctx, name))
}

// ByGenre 按类别查询
func (uc *BrowseBooksUseCase) ByGenre(ctx context.Context, genre string) ([]BookDTO, error) {
	return list(uc.bookService.ByGenre(ctx, genre))
}

// TopSellers 销量前10，同销量按id升序
func (uc *BrowseBooksUseCase) TopSellers(ctx context.Context) ([]BookDTO, error) {
	return list(uc.bookService.TopSellers(ctx))
}

// ByMinRating 评分不低于threshold
func (uc *BrowseBooksUseCase) ByMinRating(ctx context.Context, threshold float64) ([]BookDTO, error) {
	return list(uc.bookService.ByMinRating(ctx, threshold))
}

// FirstN 按id顺序取前n本，n为0返回空数组
func (uc *BrowseBooksUseCase) FirstN(ctx context.Context, n int) ([]BookDTO, error) {
	return list(uc.bookService.FirstN(ctx, n))
}

func list(books []*book.Book, err error) ([]BookDTO, error) {
	if err != nil {
		return nil, err
	}
	return NewBookDTOs(books), nil
}
