package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/domain/review"
	"github.com/xiebiao/bookstore-api/internal/domain/shelf"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
)

// DeleteBookUseCase 删除图书用例
// 学习要点:图书、书评、心愿单/购物车条目在同一事务中删除,
// 图书不存在时整个事务回滚
type DeleteBookUseCase struct {
	txManager   *gormdb.TxManager
	bookService book.Service
	reviewRepo  review.Repository
	shelfRepo   shelf.Repository
	events      event.Publisher
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(
	txManager *gormdb.TxManager,
	bookService book.Service,
	reviewRepo review.Repository,
	shelfRepo shelf.Repository,
	events event.Publisher,
) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		txManager:   txManager,
		bookService: bookService,
		reviewRepo:  reviewRepo,
		shelfRepo:   shelfRepo,
		events:      events,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.DeleteByBook(txCtx, id); err != nil {
			return err
		}
		if err := uc.shelfRepo.DeleteByBook(txCtx, id); err != nil {
			return err
		}
		return uc.bookService.Remove(txCtx, id)
	})
	if err != nil {
		return err
	}

	metrics.IncCounter(metrics.BooksDeletedTotal)
	event.Emit(ctx, uc.events, event.New(event.BookDeleted, event.BookPayload{BookID: id}))
	return nil
}
