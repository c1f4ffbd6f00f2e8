package shelf

import "context"

// Repository 书架仓储
type Repository interface {
	// Add 重复添加返回ErrDuplicate(kind)
	Add(ctx context.Context, kind Kind, userID, bookID uint) error
	// Remove 条目不存在返回ErrMissing(kind)
	Remove(ctx context.Context, kind Kind, userID, bookID uint) error
	Contains(ctx context.Context, kind Kind, userID, bookID uint) (bool, error)
	// BookIDs 按加入顺序返回图书ID
	BookIDs(ctx context.Context, kind Kind, userID uint) ([]uint, error)
	// DeleteByBook 从所有用户的心愿单和购物车中移除该书
	DeleteByBook(ctx context.Context, bookID uint) error
}
