package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/author"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
)

// UpdateBookUseCase 更新图书用例
// 业务规则:整体覆盖所有字段;销量不能减少;作者名变化时重新解析作者
type UpdateBookUseCase struct {
	txManager     *gormdb.TxManager
	authorService author.Service
	bookService   book.Service
	events        event.Publisher
}

// NewUpdateBookUseCase 创建更新图书用例
func NewUpdateBookUseCase(
	txManager *gormdb.TxManager,
	authorService author.Service,
	bookService book.Service,
	events event.Publisher,
) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		txManager:     txManager,
		authorService: authorService,
		bookService:   bookService,
		events:        events,
	}
}

// UpdateBookRequest 更新图书请求DTO
type UpdateBookRequest struct {
	ID uint
	CreateBookRequest
	Rating float64
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) error {
	cents, err := book.PriceToCents(req.Price)
	if err != nil {
		return err
	}
	details := book.Details{
		Title:         req.Title,
		Genre:         req.Genre,
		ISBN:          req.ISBN,
		Publisher:     req.Publisher,
		Price:         cents,
		YearPublished: req.YearPublished,
		Description:   req.Description,
		SoldCopies:    req.SoldCopies,
		Rating:        req.Rating,
	}

	var updated *book.Book
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 先确认图书存在,避免为不存在的图书创建作者
		if _, err := uc.bookService.GetByID(txCtx, req.ID); err != nil {
			return err
		}
		a, err := uc.authorService.Resolve(txCtx, req.Author)
		if err != nil {
			return err
		}
		updated, err = uc.bookService.Revise(txCtx, req.ID, details, a.ID, a.Name)
		return err
	})
	if err != nil {
		return err
	}

	event.Emit(ctx, uc.events, event.New(event.BookUpdated, event.BookPayload{
		BookID: updated.ID,
		ISBN:   updated.ISBN,
		Title:  updated.Title,
	}))
	return nil
}
