package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookstore-api/internal/application/author"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// AuthorHandler 作者处理器
type AuthorHandler struct {
	createUseCase *appauthor.CreateAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(createUseCase *appauthor.CreateAuthorUseCase) *AuthorHandler {
	return &AuthorHandler{createUseCase: createUseCase}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} appauthor.AuthorDTO
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "作者已存在"
// @Router       /api/author [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	a, err := h.createUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		Name:      req.Name,
		Biography: req.Biography,
		Publisher: req.Publisher,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, a)
}
