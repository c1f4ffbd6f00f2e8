package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookstore-api/internal/application/review"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// ReviewHandler 书评处理器
type ReviewHandler struct {
	addUseCase     *appreview.AddReviewUseCase
	averageUseCase *appreview.AverageRatingUseCase
	listUseCase    *appreview.ListReviewsUseCase
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(
	addUseCase *appreview.AddReviewUseCase,
	averageUseCase *appreview.AverageRatingUseCase,
	listUseCase *appreview.ListReviewsUseCase,
) *ReviewHandler {
	return &ReviewHandler{addUseCase: addUseCase, averageUseCase: averageUseCase, listUseCase: listUseCase}
}

// AddReview 发表书评
// @Summary      发表书评
// @Description  返回该用户写过的全部书评
// @Tags         书评
// @Accept       json
// @Produce      json
// @Param        username path string true "用户名"
// @Param        request body dto.ReviewRequest true "书评"
// @Success      200 {array} appreview.ReviewDTO
// @Failure      400 {object} response.Response "评分不在1~5之间"
// @Failure      404 {object} response.Response "用户或图书不存在"
// @Router       /api/reviews/{username} [post]
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	reviews, err := h.addUseCase.Execute(c.Request.Context(), appreview.AddReviewRequest{
		Username: c.Param("username"),
		BookID:   *req.ID,
		Rating:   *req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reviews)
}

// AverageRating 平均评分
// @Summary      图书平均评分
// @Tags         书评
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} appreview.AverageRatingResponse
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/books/average/{id} [get]
func (h *ReviewHandler) AverageRating(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.averageUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListReviews 全部书评
// @Summary      全部书评
// @Description  评分高的在前，同分按时间倒序
// @Tags         书评
// @Produce      json
// @Success      200 {array} appreview.ReviewDTO
// @Router       /api/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reviews)
}
