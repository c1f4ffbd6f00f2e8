package review

import "context"

// Repository 书评仓储
type Repository interface {
	Create(ctx context.Context, review *Review) error
	// ListByUser 某用户的全部书评,按创建时间升序
	ListByUser(ctx context.Context, userID uint) ([]*Review, error)
	// ListAll 全部书评,评分高的在前,同分按创建时间倒序
	ListAll(ctx context.Context) ([]*Review, error)
	Summarize(ctx context.Context, bookID uint) (*Summary, error)
	DeleteByBook(ctx context.Context, bookID uint) error
	Count(ctx context.Context) (int64, error)
}
