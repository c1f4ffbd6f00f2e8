package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/bookstore-api/internal/application/user"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// UpdatedMessage 更新成功提示
const UpdatedMessage = "Successfully updated"

// UserHandler 用户HTTP处理器
type UserHandler struct {
	createUseCase *appuser.CreateUserUseCase
	updateUseCase *appuser.UpdateUserUseCase
	queryUseCase  *appuser.QueryUsersUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	createUseCase *appuser.CreateUserUseCase,
	updateUseCase *appuser.UpdateUserUseCase,
	queryUseCase *appuser.QueryUsersUseCase,
) *UserHandler {
	return &UserHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		queryUseCase:  queryUseCase,
	}
}

// ListUsers 用户列表
// @Summary      用户列表
// @Tags         用户
// @Produce      json
// @Success      200 {array} appuser.UserDTO
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.queryUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// GetUser 按id查询用户
// @Summary      查询用户
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} appuser.UserDTO
// @Failure      400 {object} response.Response "id不是数字"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.queryUseCase.ByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, u)
}

// GetUserByUsername 按用户名查询用户
// @Summary      按用户名查询用户
// @Tags         用户
// @Produce      json
// @Param        username path string true "用户名"
// @Success      200 {object} appuser.UserDTO
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/user/{username} [get]
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	u, err := h.queryUseCase.ByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, u)
}

// CreateUser 创建用户
// @Summary      创建用户
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "用户信息"
// @Success      200 {object} appuser.CreateUserResponse
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "用户名已存在"
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appuser.CreateUserRequest{
		Name:        req.Name,
		Username:    req.Username,
		Email:       req.Email,
		HomeAddress: req.HomeAddress,
		Password:    req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateUser 更新用户资料
// @Summary      更新用户资料
// @Description  覆盖name、username、home_address和password，email不可修改
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body dto.UpdateUserRequest true "用户资料"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户不存在"
// @Failure      409 {object} response.Response "用户名已存在"
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	err := h.updateUseCase.Execute(c.Request.Context(), appuser.UpdateUserRequest{
		ID:          id,
		Name:        req.Name,
		Username:    req.Username,
		HomeAddress: req.HomeAddress,
		Password:    req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, UpdatedMessage)
}
