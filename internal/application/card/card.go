// Package card 支付卡用例
package card

import (
	"context"

	"github.com/samber/lo"

	"github.com/xiebiao/bookstore-api/internal/domain/card"
	"github.com/xiebiao/bookstore-api/internal/domain/user"
)

// CardDTO 支付卡响应
type CardDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	CardNumber     string `json:"card_number"`
	ExpirationDate string `json:"expiration_date"`
	SecurityCode   string `json:"security_code"`
	ZipCode        string `json:"zip_code"`
	UserID         uint   `json:"user_id"`
}

// NewCardDTO 领域对象 → DTO
func NewCardDTO(c *card.Card) CardDTO {
	return CardDTO{
		ID:             c.ID,
		Name:           c.Name,
		CardNumber:     c.CardNumber,
		ExpirationDate: c.ExpirationDate,
		SecurityCode:   c.SecurityCode,
		ZipCode:        c.ZipCode,
		UserID:         c.UserID,
	}
}

// AddCardUseCase 为用户添加支付卡
// 业务规则：持卡用户必须存在，否则返回404
type AddCardUseCase struct {
	cardRepo card.Repository
	userRepo user.Repository
}

// NewAddCardUseCase 创建添加支付卡用例
func NewAddCardUseCase(cardRepo card.Repository, userRepo user.Repository) *AddCardUseCase {
	return &AddCardUseCase{cardRepo: cardRepo, userRepo: userRepo}
}

// AddCardRequest 添加支付卡请求DTO
type AddCardRequest struct {
	Name           string
	CardNumber     string
	ExpirationDate string
	SecurityCode   string
	ZipCode        string
	UserID         uint
}

// Execute 持卡用户不存在返回404
func (uc *AddCardUseCase) Execute(ctx context.Context, req AddCardRequest) (*CardDTO, error) {
	if _, err := uc.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	c := &card.Card{
		Name:           req.Name,
		CardNumber:     req.CardNumber,
		ExpirationDate: req.ExpirationDate,
		SecurityCode:   req.SecurityCode,
		ZipCode:        req.ZipCode,
		UserID:         req.UserID,
	}
	if err := uc.cardRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	dto := NewCardDTO(c)
	return &dto, nil
}

// ListCardsUseCase 列出全部支付卡
type ListCardsUseCase struct {
	cardRepo card.Repository
}

// NewListCardsUseCase 创建支付卡列表用例
func NewListCardsUseCase(cardRepo card.Repository) *ListCardsUseCase {
	return &ListCardsUseCase{cardRepo: cardRepo}
}

// Execute 返回全部支付卡
func (uc *ListCardsUseCase) Execute(ctx context.Context) ([]CardDTO, error) {
	cards, err := uc.cardRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(cards, func(c *card.Card, _ int) CardDTO { return NewCardDTO(c) }), nil
}
