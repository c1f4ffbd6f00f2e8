package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 查询结果都带AuthorName
// 3. Delete是物理删除,关联的书评和书架记录由应用层在同一事务中清理
type Repository interface {
	Create(ctx context.Context, book *Book) error
	Update(ctx context.Context, book *Book) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*Book, error)
	FindByISBN(ctx context.Context, isbn string) (*Book, error)
	// FindByIDs 批量查询,不存在的ID被忽略,结果按ID升序
	FindByIDs(ctx context.Context, ids []uint) ([]*Book, error)

	List(ctx context.Context, filter ListFilter) ([]*Book, error)
	Count(ctx context.Context) (int64, error)
}

// SortOrder 列表排序方式
type SortOrder int

const (
	SortByID          SortOrder = iota // id升序
	SortBySoldCopies                   // 销量降序,同销量id升序
)

// ListFilter 列表查询条件,零值表示查询全部并按id排序
type ListFilter struct {
	AuthorName string   // 作者名精确匹配
	Genre      string   // 类别精确匹配
	MinRating  *float64 // rating >= MinRating
	Sort       SortOrder
	Limit      int // 0表示不限制
}
