package handler

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase *appbook.CreateBookUseCase
	updateUseCase *appbook.UpdateBookUseCase
	deleteUseCase *appbook.DeleteBookUseCase
	browseUseCase *appbook.BrowseBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
	browseUseCase *appbook.BrowseBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		browseUseCase: browseUseCase,
	}
}

// CreateBook 新增图书
// @Summary      新增图书
// @Description  按作者名关联作者，作者不存在时自动创建
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} appbook.BookDTO
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/book [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), toCreateBookRequest(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  整体覆盖图书字段，销量不能减少
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.Response "参数错误或销量减少"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/book/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	err := h.updateUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:                id,
		CreateBookRequest: toCreateBookRequest(req.BookRequest),
		Rating:            *req.Rating,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, UpdatedMessage)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  同时删除该书的书评、心愿单和购物车条目
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/book/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, fmt.Sprintf("You deleted book %d", id))
}

// ListBooks 全部图书
// @Summary      全部图书
// @Tags         图书
// @Produce      json
// @Success      200 {array} appbook.BookDTO
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	respondBooks(c)(h.browseUseCase.All(c.Request.Context()))
}

// GetBookByISBN 按ISBN查询
// @Summary      按ISBN查询图书
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} appbook.BookDTO
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/book/{isbn} [get]
func (h *BookHandler) GetBookByISBN(c *gin.Context) {
	b, err := h.browseUseCase.ByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}

// ListByAuthor 按作者查询
// @Summary      按作者名查询图书
// @Tags         图书
// @Produce      json
// @Param        name path string true "作者名"
// @Success      200 {array} appbook.BookDTO
// @Router       /api/books/{name} [get]
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	respondBooks(c)(h.browseUseCase.ByAuthor(c.Request.Context(), c.Param("name")))
}

// ListByGenre 按类型查询
// @Summary      按类型查询图书
// @Tags         图书
// @Produce      json
// @Param        genre path string true "类型"
// @Success      200 {array} appbook.BookDTO
// @Router       /api/books/genre/{genre} [get]
func (h *BookHandler) ListByGenre(c *gin.Context) {
	respondBooks(c)(h.browseUseCase.ByGenre(c.Request.Context(), c.Param("genre")))
}

// TopSellers 畅销榜
// @Summary      销量前10
// @Tags         图书
// @Produce      json
// @Success      200 {array} appbook.BookDTO
// @Router       /api/top-seller-books [get]
func (h *BookHandler) TopSellers(c *gin.Context) {
	respondBooks(c)(h.browseUseCase.TopSellers(c.Request.Context()))
}

// ListByRating 评分不低于阈值
// @Summary      按最低评分查询图书
// @Tags         图书
// @Produce      json
// @Param        rating path number true "最低评分"
// @Success      200 {array} appbook.BookDTO
// @Failure      400 {object} response.Response "阈值不是数字"
// @Router       /api/books/rating/{rating} [get]
func (h *BookHandler) ListByRating(c *gin.Context) {
	threshold, err := strconv.ParseFloat(c.Param("rating"), 64)
	// ParseFloat接受"NaN"和"Inf"
	if err != nil || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		response.Error(c, book.ErrInvalidThreshold)
		return
	}
	respondBooks(c)(h.browseUseCase.ByMinRating(c.Request.Context(), threshold))
}

// FirstN 按id顺序取前N本
// @Summary      取前N本图书
// @Tags         图书
// @Produce      json
// @Param        record path int true "数量"
// @Success      200 {array} appbook.BookDTO
// @Failure      400 {object} response.Response "数量不合法"
// @Router       /api/books/return/{record} [get]
func (h *BookHandler) FirstN(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("record"))
	if err != nil {
		response.Error(c, book.ErrInvalidCount)
		return
	}
	respondBooks(c)(h.browseUseCase.FirstN(c.Request.Context(), n))
}

func toCreateBookRequest(req dto.BookRequest) appbook.CreateBookRequest {
	return appbook.CreateBookRequest{
		Title:         req.Title,
		Genre:         req.Genre,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Publisher:     req.Publisher,
		Price:         *req.Price,
		YearPublished: *req.YearPublished,
		Description:   req.Description,
		SoldCopies:    *req.SoldCopies,
	}
}

// respondBooks 列表查询的统一输出
func respondBooks(c *gin.Context) func([]appbook.BookDTO, error) {
	return func(data []appbook.BookDTO, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, data)
	}
}
