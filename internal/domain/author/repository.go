package author

import "context"

// Repository 作者仓储
type Repository interface {
	Create(ctx context.Context, author *Author) error
	// FindByName 按名字精确查找，不存在返回ErrAuthorNotFound
	FindByName(ctx context.Context, name string) (*Author, error)
	Count(ctx context.Context) (int64, error)
}
