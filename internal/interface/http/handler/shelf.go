package handler

import (
	"github.com/gin-gonic/gin"

	appshelf "github.com/xiebiao/bookstore-api/internal/application/shelf"
	"github.com/xiebiao/bookstore-api/internal/domain/shelf"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// ShelfHandler 心愿单与购物车处理器
type ShelfHandler struct {
	addUseCase  *appshelf.AddToWishlistUseCase
	moveUseCase *appshelf.MoveToCartUseCase
	listUseCase *appshelf.ListShelfUseCase
}

// NewShelfHandler 创建心愿单/购物车处理器
func NewShelfHandler(
	addUseCase *appshelf.AddToWishlistUseCase,
	moveUseCase *appshelf.MoveToCartUseCase,
	listUseCase *appshelf.ListShelfUseCase,
) *ShelfHandler {
	return &ShelfHandler{addUseCase: addUseCase, moveUseCase: moveUseCase, listUseCase: listUseCase}
}

// Wishlist 查看心愿单
// @Summary      查看心愿单
// @Tags         心愿单
// @Produce      json
// @Param        username path string true "用户名"
// @Success      200 {array} appbook.BookDTO
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/wishlist/{username} [get]
func (h *ShelfHandler) Wishlist(c *gin.Context) {
	h.list(c, shelf.KindWishlist)
}

// Cart 查看购物车
// @Summary      查看购物车
// @Tags         购物车
// @Produce      json
// @Param        username path string true "用户名"
// @Success      200 {array} appbook.BookDTO
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/shopping-cart/{username} [get]
func (h *ShelfHandler) Cart(c *gin.Context) {
	h.list(c, shelf.KindCart)
}

// AddToWishlist 加入心愿单
// @Summary      加入心愿单
// @Tags         心愿单
// @Accept       json
// @Produce      json
// @Param        username path string true "用户名"
// @Param        request body dto.ShelfRequest true "图书ID"
// @Success      200 {object} appbook.BookDTO
// @Failure      404 {object} response.Response "用户或图书不存在"
// @Failure      409 {object} response.Response "已在心愿单中"
// @Router       /api/wishlist/{username} [post]
func (h *ShelfHandler) AddToWishlist(c *gin.Context) {
	var req dto.ShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	b, err := h.addUseCase.Execute(c.Request.Context(), c.Param("username"), *req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}

// MoveToCart 心愿单移入购物车
// @Summary      心愿单移入购物车
// @Description  从心愿单移除并加入购物车，两步在同一事务中完成
// @Tags         心愿单
// @Accept       json
// @Produce      json
// @Param        username path string true "用户名"
// @Param        request body dto.ShelfRequest true "图书ID"
// @Success      200 {object} appbook.BookDTO
// @Failure      404 {object} response.Response "用户或图书不存在，或不在心愿单中"
// @Router       /api/wishlist/{username} [delete]
func (h *ShelfHandler) MoveToCart(c *gin.Context) {
	var req dto.ShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	b, err := h.moveUseCase.Execute(c.Request.Context(), c.Param("username"), *req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}

func (h *ShelfHandler) list(c *gin.Context, kind shelf.Kind) {
	books, err := h.listUseCase.Execute(c.Request.Context(), kind, c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}
