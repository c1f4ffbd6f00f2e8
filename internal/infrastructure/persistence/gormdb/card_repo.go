package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/card"
)

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository 创建支付卡仓储
func NewCardRepository(db *gorm.DB) card.Repository {
	return &cardRepository{db: db}
}

// Create 保存支付卡
func (r *cardRepository) Create(ctx context.Context, c *card.Card) error {
	model := &CardModel{
		Name:           c.Name,
		CardNumber:     c.CardNumber,
		ExpirationDate: c.ExpirationDate,
		SecurityCode:   c.SecurityCode,
		ZipCode:        c.ZipCode,
		UserID:         c.UserID,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return dbError("create card", err)
	}
	c.ID = model.ID
	return nil
}

// List 全部支付卡
func (r *cardRepository) List(ctx context.Context) ([]*card.Card, error) {
	var models []CardModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, dbError("list cards", err)
	}

	cards := make([]*card.Card, len(models))
	for i, m := range models {
		cards[i] = &card.Card{
			ID:             m.ID,
			Name:           m.Name,
			CardNumber:     m.CardNumber,
			ExpirationDate: m.ExpirationDate,
			SecurityCode:   m.SecurityCode,
			ZipCode:        m.ZipCode,
			UserID:         m.UserID,
		}
	}
	return cards, nil
}
