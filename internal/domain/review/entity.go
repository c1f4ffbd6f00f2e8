package review

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review 书评
// 设计说明:按UserID/BookID引用用户和图书,Username由仓储查询时填充
type Review struct {
	ID        uint
	BookID    uint
	UserID    uint
	Username  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// NewReview 创建书评,评分必须在1~5之间
func NewReview(bookID, userID uint, username string, rating int, comment string) (*Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	return &Review{
		BookID:    bookID,
		UserID:    userID,
		Username:  username,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}, nil
}

// Summary 某本书的评分汇总
type Summary struct {
	BookID  uint
	Count   int64
	Average *float64 // 没有书评时为nil
}
