// Package event 领域事件
//
// 应用层在事务提交后发布事件，发布失败只记日志，不影响请求结果。
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 事件类型,同时作为消息的routing key
const (
	BookCreated   = "book.created"
	BookUpdated   = "book.updated"
	BookDeleted   = "book.deleted"
	ReviewCreated = "review.created"
	WishlistMoved = "wishlist.moved"
)

// Event 事件信封
type Event struct {
	ID         string    `json:"event_id"`
	Type       string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// New 生成带唯一ID的事件
func New(eventType string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher 事件发布者
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Emit 发布事件，失败只记日志(Publisher内部已记录详情)
func Emit(ctx context.Context, p Publisher, evt Event) {
	if err := p.Publish(ctx, evt); err != nil {
		zap.L().Debug("event not delivered",
			zap.String("event_id", evt.ID),
			zap.String("event_type", evt.Type),
			zap.Error(err))
	}
}

// BookPayload book.*事件内容
type BookPayload struct {
	BookID uint   `json:"book_id"`
	ISBN   string `json:"isbn,omitempty"`
	Title  string `json:"title,omitempty"`
}

// ReviewPayload review.created事件内容
type ReviewPayload struct {
	ReviewID uint `json:"review_id"`
	BookID   uint `json:"book_id"`
	UserID   uint `json:"user_id"`
	Rating   int  `json:"rating"`
}

// ShelfPayload wishlist.moved事件内容
type ShelfPayload struct {
	UserID uint `json:"user_id"`
	BookID uint `json:"book_id"`
}
