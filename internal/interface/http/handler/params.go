package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// pathID 解析路径中的数字id，失败时已写入400响应
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, fmt.Sprintf("Invalid %s: %q", name, raw)))
		return 0, false
	}
	return uint(id), true
}
