package handler

import (
	"github.com/gin-gonic/gin"

	appcard "github.com/xiebiao/bookstore-api/internal/application/card"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// CardHandler 支付卡处理器
type CardHandler struct {
	addUseCase  *appcard.AddCardUseCase
	listUseCase *appcard.ListCardsUseCase
}

// NewCardHandler 创建支付卡处理器
func NewCardHandler(addUseCase *appcard.AddCardUseCase, listUseCase *appcard.ListCardsUseCase) *CardHandler {
	return &CardHandler{addUseCase: addUseCase, listUseCase: listUseCase}
}

// ListCards 支付卡列表
// @Summary      支付卡列表
// @Tags         支付卡
// @Produce      json
// @Success      200 {array} appcard.CardDTO
// @Router       /api/cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cards)
}

// CreateCard 添加支付卡
// @Summary      添加支付卡
// @Tags         支付卡
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCardRequest true "支付卡信息"
// @Success      200 {object} appcard.CardDTO
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	card, err := h.addUseCase.Execute(c.Request.Context(), appcard.AddCardRequest{
		Name:           req.Name,
		CardNumber:     req.CardNumber,
		ExpirationDate: req.ExpirationDate,
		SecurityCode:   req.SecurityCode,
		ZipCode:        req.ZipCode,
		UserID:         *req.UserID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, card)
}
