package dto

// BookRequest 新增图书请求
// 说明：数值字段用指针，0是合法值，required只检查字段是否出现
type BookRequest struct {
	Title         string   `json:"title" binding:"required" example:"The Go Programming Language"`
	Genre         string   `json:"genre" binding:"required" example:"Programming"`
	Author        string   `json:"author" binding:"required" example:"Alan Donovan"`
	ISBN          string   `json:"isbn" binding:"required" example:"9780134190440"`
	Publisher     string   `json:"publisher" binding:"required" example:"Addison-Wesley"`
	Price         *float64 `json:"price" binding:"required" example:"39.99"` // 元
	YearPublished *int     `json:"year_published" binding:"required" example:"2015"`
	Description   string   `json:"description" example:"The authoritative resource"`
	SoldCopies    *int     `json:"sold_copies" binding:"required" example:"1200"`
}

// UpdateBookRequest 更新图书请求，整体覆盖
type UpdateBookRequest struct {
	BookRequest
	Rating *float64 `json:"rating" binding:"required" example:"4.5"`
}

// AuthorRequest 创建作者请求
type AuthorRequest struct {
	Name      string `json:"name" binding:"required" example:"Alan Donovan"`
	Biography string `json:"biography" example:"Engineer at Google"`
	Publisher string `json:"publisher" example:"Addison-Wesley"`
}

// ShelfRequest 心愿单操作请求，id为图书id
type ShelfRequest struct {
	ID *uint `json:"id" binding:"required" example:"1"`
}

// ReviewRequest 发表书评请求
type ReviewRequest struct {
	ID      *uint  `json:"id" binding:"required" example:"1"` // 图书id
	Rating  *int   `json:"rating" binding:"required" example:"5"`
	Comment string `json:"comment" example:"Clear and thorough"`
}
