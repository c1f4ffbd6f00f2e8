package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/author"
)

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者，重名返回ErrAuthorDuplicate
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{Name: a.Name, Biography: a.Biography, Publisher: a.Publisher}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrAuthorDuplicate
		}
		return dbError("create author", err)
	}
	a.ID = model.ID
	return nil
}

// FindByName 按名字查找作者
func (r *authorRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	var model AuthorModel
	if err := conn(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, dbError("find author", err)
	}
	return toAuthorEntity(&model), nil
}

// Count 作者总数
func (r *authorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&AuthorModel{}).Count(&n).Error; err != nil {
		return 0, dbError("count authors", err)
	}
	return n, nil
}

func toAuthorEntity(m *AuthorModel) *author.Author {
	return &author.Author{
		ID:        m.ID,
		Name:      m.Name,
		Biography: m.Biography,
		Publisher: m.Publisher,
	}
}
