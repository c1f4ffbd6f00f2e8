package card

import "context"

// Repository 支付卡仓储
type Repository interface {
	Create(ctx context.Context, card *Card) error
	List(ctx context.Context) ([]*Card, error)
}
