package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/review"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 保存书评
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		BookID:    rv.BookID,
		UserID:    rv.UserID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
	if err := conn(ctx, r.db).Omit("User").Create(model).Error; err != nil {
		return dbError("create review", err)
	}
	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	return nil
}

// ListByUser 某用户的全部书评
func (r *reviewRepository) ListByUser(ctx context.Context, userID uint) ([]*review.Review, error) {
	var models []ReviewModel
	err := conn(ctx, r.db).Preload("User").
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, dbError("list reviews by user", err)
	}
	return toReviewEntities(models), nil
}

// ListAll 全部书评，评分降序，同分按发表时间降序
func (r *reviewRepository) ListAll(ctx context.Context) ([]*review.Review, error) {
	var models []ReviewModel
	err := conn(ctx, r.db).Preload("User").
		Order("rating DESC").Order("created_at DESC").Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, dbError("list reviews", err)
	}
	return toReviewEntities(models), nil
}

// Summarize 一条SQL同时取条数和平均分
// AVG在没有行时返回NULL,用指针接收
func (r *reviewRepository) Summarize(ctx context.Context, bookID uint) (*review.Summary, error) {
	var row struct {
		Count   int64
		Average *float64
	}
	err := conn(ctx, r.db).Model(&ReviewModel{}).
		Select("COUNT(*) AS count, AVG(rating) AS average").
		Where("book_id = ?", bookID).
		Scan(&row).Error
	if err != nil {
		return nil, dbError("summarize reviews", err)
	}

	summary := &review.Summary{BookID: bookID, Count: row.Count}
	if row.Count > 0 {
		summary.Average = row.Average
	}
	return summary, nil
}

// DeleteByBook 删除某本书的全部书评
func (r *reviewRepository) DeleteByBook(ctx context.Context, bookID uint) error {
	if err := conn(ctx, r.db).Where("book_id = ?", bookID).Delete(&ReviewModel{}).Error; err != nil {
		return dbError("delete reviews by book", err)
	}
	return nil
}

// Count 书评总数
func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&ReviewModel{}).Count(&n).Error; err != nil {
		return 0, dbError("count reviews", err)
	}
	return n, nil
}

func toReviewEntities(models []ReviewModel) []*review.Review {
	reviews := make([]*review.Review, len(models))
	for i, m := range models {
		reviews[i] = &review.Review{
			ID:        m.ID,
			BookID:    m.BookID,
			UserID:    m.UserID,
			Username:  m.User.Username,
			Rating:    m.Rating,
			Comment:   m.Comment,
			CreatedAt: m.CreatedAt,
		}
	}
	return reviews
}
