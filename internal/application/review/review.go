// Package review 书评用例
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/domain/review"
	"github.com/xiebiao/bookstore-api/internal/domain/user"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
)

// ReviewDTO 书评响应
type ReviewDTO struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// NewReviewDTO 领域对象 → DTO
func NewReviewDTO(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Username:  r.Username,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newReviewDTOs(reviews []*review.Review) []ReviewDTO {
	return lo.Map(reviews, func(r *review.Review, _ int) ReviewDTO { return NewReviewDTO(r) })
}

// AddReviewUseCase 发表书评
// 业务规则：
// 1. 评分必须在1~5之间
// 2. 用户和图书都必须存在
// 3. 返回该用户的全部书评
type AddReviewUseCase struct {
	userRepo   user.Repository
	bookRepo   book.Repository
	reviewRepo review.Repository
	events     event.Publisher
}

// NewAddReviewUseCase 创建发表书评用例
func NewAddReviewUseCase(userRepo user.Repository, bookRepo book.Repository, reviewRepo review.Repository, events event.Publisher) *AddReviewUseCase {
	return &AddReviewUseCase{userRepo: userRepo, bookRepo: bookRepo, reviewRepo: reviewRepo, events: events}
}

type AddReviewRequest struct {
	Username string
	BookID   uint
	Rating   int
	Comment  string
}

// Execute 保存书评后发布review.created事件
func (uc *AddReviewUseCase) Execute(ctx context.Context, req AddReviewRequest) ([]ReviewDTO, error) {
	u, err := uc.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if _, err := uc.bookRepo.FindByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	r, err := review.NewReview(req.BookID, u.ID, u.Username, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}
	if err := uc.reviewRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.ReviewsCreatedTotal)
	event.Emit(ctx, uc.events, event.New(event.ReviewCreated, event.ReviewPayload{
		ReviewID: r.ID,
		BookID:   r.BookID,
		UserID:   r.UserID,
		Rating:   r.Rating,
	}))

	reviews, err := uc.reviewRepo.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return newReviewDTOs(reviews), nil
}

// AverageRatingResponse 平均评分
// 没有书评时average_rating为null
type AverageRatingResponse struct {
	BookID        uint     `json:"book_id"`
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int64    `json:"review_count"`
	Message       string   `json:"message"`
}

// AverageRatingUseCase 计算图书平均评分
type AverageRatingUseCase struct {
	bookRepo   book.Repository
	reviewRepo review.Repository
}

// NewAverageRatingUseCase 创建平均评分用例
func NewAverageRatingUseCase(bookRepo book.Repository, reviewRepo review.Repository) *AverageRatingUseCase {
	return &AverageRatingUseCase{bookRepo: bookRepo, reviewRepo: reviewRepo}
}

// Execute 图书不存在返回404
func (uc *AverageRatingUseCase) Execute(ctx context.Context, bookID uint) (*AverageRatingResponse, error) {
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}

	summary, err := uc.reviewRepo.Summarize(ctx, bookID)
	if err != nil {
		return nil, err
	}

	resp := &AverageRatingResponse{
		BookID:        bookID,
		AverageRating: summary.Average,
		ReviewCount:   summary.Count,
		Message:       fmt.Sprintf("No reviews yet for book #%d", bookID),
	}
	if summary.Average != nil {
		resp.Message = fmt.Sprintf("%.2f for book #%d", *summary.Average, bookID)
	}
	return resp, nil
}

// ListReviewsUseCase 全部书评，评分高的在前
type ListReviewsUseCase struct {
	reviewRepo review.Repository
}

// NewListReviewsUseCase 创建书评列表用例
func NewListReviewsUseCase(reviewRepo review.Repository) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviewRepo: reviewRepo}
}

// Execute 返回全部书评
func (uc *ListReviewsUseCase) Execute(ctx context.Context) ([]ReviewDTO, error) {
	reviews, err := uc.reviewRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return newReviewDTOs(reviews), nil
}
