// Package author 作者用例
package author

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/author"
)

// AuthorDTO 作者响应
type AuthorDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Biography string `json:"biography"`
	Publisher string `json:"publisher"`
}

// CreateAuthorUseCase 创建作者
// 业务规则：作者名唯一，重复返回409
type CreateAuthorUseCase struct {
	authorService author.Service
}

// NewCreateAuthorUseCase 创建新增作者用例
func NewCreateAuthorUseCase(authorService author.Service) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorService: authorService}
}

type CreateAuthorRequest struct {
	Name      string
	Biography string
	Publisher string
}

// Execute 作者重名返回409
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*AuthorDTO, error) {
	a, err := uc.authorService.Create(ctx, req.Name, req.Biography, req.Publisher)
	if err != nil {
		return nil, err
	}
	return &AuthorDTO{ID: a.ID, Name: a.Name, Biography: a.Biography, Publisher: a.Publisher}, nil
}
