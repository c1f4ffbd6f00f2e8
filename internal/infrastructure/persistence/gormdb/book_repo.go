package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// bookRepository 图书仓储实现
// 设计说明:
// 1. 读取时Preload("Author")填充作者名
// 2. 按作者名筛选时显式JOIN authors表
// 3. 处理ISBN唯一索引冲突,转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := fromBookEntity(b)
	if err := conn(ctx, r.db).Omit("Author").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return dbError("create book", err)
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := fromBookEntity(b)
	result := conn(ctx, r.db).Model(model).Omit("Author", "CreatedAt").Select("*").Updates(model)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return book.ErrISBNDuplicate
		}
		return dbError("update book", result.Error)
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 物理删除
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return dbError("delete book", result.Error)
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := conn(ctx, r.db).Preload("Author").First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, dbError("find book", err)
	}
	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	if err := conn(ctx, r.db).Preload("Author").Where("isbn = ?", isbn).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, dbError("find book by isbn", err)
	}
	return toBookEntity(&model), nil
}

// FindByIDs 批量查找，结果按id升序，不存在的id被忽略
func (r *bookRepository) FindByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	if len(ids) == 0 {
		return []*book.Book{}, nil
	}

	var models []BookModel
	if err := conn(ctx, r.db).Preload("Author").Where("id IN ?", ids).Order("id").Find(&models).Error; err != nil {
		return nil, dbError("find books by ids", err)
	}
	return toBookEntities(models), nil
}

// List 按过滤条件查询
// 学习要点:条件逐个追加到同一个*gorm.DB链上,最后一次执行
func (r *bookRepository) List(ctx context.Context, f book.ListFilter) ([]*book.Book, error) {
	query := conn(ctx, r.db).Model(&BookModel{}).Preload("Author")

	if f.AuthorName != "" {
		query = query.Select("books.*").
			Joins("JOIN authors ON authors.id = books.author_id").
			Where("authors.name = ?", f.AuthorName)
	}
	if f.Genre != "" {
		query = query.Where("books.genre = ?", f.Genre)
	}
	if f.MinRating != nil {
		query = query.Where("books.rating >= ?", *f.MinRating)
	}

	switch f.Sort {
	case book.SortBySoldCopies:
		query = query.Order("books.sold_copies DESC").Order("books.id ASC")
	default:
		query = query.Order("books.id ASC")
	}

	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	var models []BookModel
	if err := query.Find(&models).Error; err != nil {
		return nil, dbError("list books", err)
	}
	return toBookEntities(models), nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&BookModel{}).Count(&n).Error; err != nil {
		return 0, dbError("count books", err)
	}
	return n, nil
}

func fromBookEntity(b *book.Book) *BookModel {
	return &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Genre:         b.Genre,
		AuthorID:      b.AuthorID,
		ISBN:          b.ISBN,
		Publisher:     b.Publisher,
		Price:         b.Price,
		YearPublished: b.YearPublished,
		Description:   b.Description,
		SoldCopies:    b.SoldCopies,
		Rating:        b.Rating,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:            m.ID,
		Title:         m.Title,
		Genre:         m.Genre,
		AuthorID:      m.AuthorID,
		AuthorName:    m.Author.Name,
		ISBN:          m.ISBN,
		Publisher:     m.Publisher,
		Price:         m.Price,
		YearPublished: m.YearPublished,
		Description:   m.Description,
		SoldCopies:    m.SoldCopies,
		Rating:        m.Rating,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
