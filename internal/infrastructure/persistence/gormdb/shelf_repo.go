package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/shelf"
)

// shelfRepository 心愿单/购物车仓储
// 设计说明:两张表结构相同,按Kind选择模型
type shelfRepository struct {
	db *gorm.DB
}

// NewShelfRepository 创建书架仓储
func NewShelfRepository(db *gorm.DB) shelf.Repository {
	return &shelfRepository{db: db}
}

// Add 加入心愿单或购物车
func (r *shelfRepository) Add(ctx context.Context, kind shelf.Kind, userID, bookID uint) error {
	row, err := newShelfRow(kind, userID, bookID)
	if err != nil {
		return err
	}
	if err := conn(ctx, r.db).Create(row).Error; err != nil {
		if isDuplicateError(err) {
			return shelf.ErrDuplicate(kind)
		}
		return dbError("add to "+kind.String(), err)
	}
	return nil
}

// Remove 移出，不存在返回ErrNotInWishlist/ErrNotInCart
func (r *shelfRepository) Remove(ctx context.Context, kind shelf.Kind, userID, bookID uint) error {
	model, err := shelfModel(kind)
	if err != nil {
		return err
	}
	result := conn(ctx, r.db).Where("user_id = ? AND book_id = ?", userID, bookID).Delete(model)
	if result.Error != nil {
		return dbError("remove from "+kind.String(), result.Error)
	}
	if result.RowsAffected == 0 {
		return shelf.ErrMissing(kind)
	}
	return nil
}

// Contains 是否已在书架中
func (r *shelfRepository) Contains(ctx context.Context, kind shelf.Kind, userID, bookID uint) (bool, error) {
	model, err := shelfModel(kind)
	if err != nil {
		return false, err
	}
	var n int64
	if err := conn(ctx, r.db).Model(model).Where("user_id = ? AND book_id = ?", userID, bookID).Count(&n).Error; err != nil {
		return false, dbError("check "+kind.String(), err)
	}
	return n > 0, nil
}

// BookIDs 按加入顺序返回图书id
func (r *shelfRepository) BookIDs(ctx context.Context, kind shelf.Kind, userID uint) ([]uint, error) {
	model, err := shelfModel(kind)
	if err != nil {
		return nil, err
	}
	ids := []uint{}
	err = conn(ctx, r.db).Model(model).
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("book_id ASC").
		Pluck("book_id", &ids).Error
	if err != nil {
		return nil, dbError("list "+kind.String(), err)
	}
	return ids, nil
}

// DeleteByBook 从所有用户的心愿单和购物车中删除该书
func (r *shelfRepository) DeleteByBook(ctx context.Context, bookID uint) error {
	db := conn(ctx, r.db)
	if err := db.Where("book_id = ?", bookID).Delete(&WishlistModel{}).Error; err != nil {
		return dbError("delete wishlist entries", err)
	}
	if err := db.Where("book_id = ?", bookID).Delete(&CartModel{}).Error; err != nil {
		return dbError("delete cart entries", err)
	}
	return nil
}

func shelfModel(kind shelf.Kind) (any, error) {
	switch kind {
	case shelf.KindWishlist:
		return &WishlistModel{}, nil
	case shelf.KindCart:
		return &CartModel{}, nil
	default:
		return nil, fmt.Errorf("unknown shelf kind %q", kind)
	}
}

func newShelfRow(kind shelf.Kind, userID, bookID uint) (any, error) {
	switch kind {
	case shelf.KindWishlist:
		return &WishlistModel{UserID: userID, BookID: bookID}, nil
	case shelf.KindCart:
		return &CartModel{UserID: userID, BookID: bookID}, nil
	default:
		return nil, fmt.Errorf("unknown shelf kind %q", kind)
	}
}
