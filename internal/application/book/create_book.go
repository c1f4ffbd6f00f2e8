package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/author"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
)

// CreateBookUseCase 新增图书用例
// 设计说明:
// 1. 按作者名查找作者,不存在则创建,与插入图书在同一事务中
// 2. 事务提交后才发布book.created事件,发布失败不影响结果
type CreateBookUseCase struct {
	txManager     *gormdb.TxManager
	authorService author.Service
	bookService   book.Service
	events        event.Publisher
}

// NewCreateBookUseCase 创建新增图书用例
func NewCreateBookUseCase(
	txManager *gormdb.TxManager,
	authorService author.Service,
	bookService book.Service,
	events event.Publisher,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		txManager:     txManager,
		authorService: authorService,
		bookService:   bookService,
		events:        events,
	}
}

// CreateBookRequest 新增图书请求DTO
type CreateBookRequest struct {
	Title         string
	Genre         string
	Author        string // 作者名
	ISBN          string
	Publisher     string
	Price         float64 // 元
	YearPublished int
	Description   string
	SoldCopies    int
}

// Execute 执行新增图书用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDTO, error) {
	cents, err := book.PriceToCents(req.Price)
	if err != nil {
		return nil, err
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
	}

	var created *book.Book
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		a, err := uc.authorService.Resolve(txCtx, req.Author)
		if err != nil {
			return err
		}
		created, err = uc.bookService.Publish(txCtx, details, a.ID, a.Name)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	event.Emit(ctx, uc.events, event.New(event.BookCreated, event.BookPayload{
		BookID: created.ID,
		ISBN:   created.ISBN,
		Title:  created.Title,
	}))

	dto := NewBookDTO(created)
	return &dto, nil
}
