package book

import (
	"github.com/samber/lo"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// BookDTO 图书响应
// 说明：price以元为单位输出，内部存储为分
type BookDTO struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Genre         string  `json:"genre"`
	Author        string  `json:"author"`
	AuthorID      uint    `json:"author_id"`
	ISBN          string  `json:"isbn"`
	Publisher     string  `json:"publisher"`
	Price         float64 `json:"price"`
	YearPublished int     `json:"year_published"`
	Description   string  `json:"description"`
	SoldCopies    int     `json:"sold_copies"`
	Rating        float64 `json:"rating"`
}

// NewBookDTO 实体 → 响应DTO
func NewBookDTO(b *book.Book) BookDTO {
	return BookDTO{
		ID:            b.ID,
		Title:         b.Title,
		Genre:         b.Genre,
		Author:        b.AuthorName,
		AuthorID:      b.AuthorID,
		ISBN:          b.ISBN,
		Publisher:     b.Publisher,
		Price:         book.CentsToPrice(b.Price),
		YearPublished: b.YearPublished,
		Description:   b.Description,
		SoldCopies:    b.SoldCopies,
		Rating:        b.Rating,
	}
}

// NewBookDTOs 列表转换，空列表输出 [] 而不是 null
func NewBookDTOs(books []*book.Book) []BookDTO {
	return lo.Map(books, func(b *book.Book, _ int) BookDTO {
		return NewBookDTO(b)
	})
}
