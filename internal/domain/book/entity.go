package book

import (
	"math"
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. 价格使用int64存储"分"(避免浮点数精度问题),接口层再换算成元
// 2. ISBN作为业务唯一标识(数据库层保证唯一性)
// 3. 作者是独立聚合,图书只保存AuthorID;AuthorName由仓储查询时填充
// 4. SoldCopies只增不减
type Book struct {
	ID            uint
	Title         string
	Genre         string
	AuthorID      uint
	AuthorName    string
	ISBN          string
	Publisher     string
	Price         int64 // 单位:分
	YearPublished int
	Description   string
	SoldCopies    int
	Rating        float64 // 0~5
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Details 可由调用方设置的图书字段(不含作者)
type Details struct {
	Title         string
	Genre         string
	ISBN          string
	Publisher     string
	Price         int64
	YearPublished int
	Description   string
	SoldCopies    int
	Rating        float64
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// NewBook 创建图书(工厂方法)
func NewBook(d Details, authorID uint, authorName string) (*Book, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &Book{AuthorID: authorID, AuthorName: authorName, CreatedAt: now, UpdatedAt: now}
	b.apply(d)
	return b, nil
}

// Revise 整体更新图书字段(领域行为)
// 业务规则:销量不能减少
func (b *Book) Revise(d Details, authorID uint, authorName string) error {
	if err := d.validate(); err != nil {
		return err
	}
	if d.SoldCopies < b.SoldCopies {
		return ErrSoldCopiesDecrease
	}

	b.apply(d)
	b.AuthorID = authorID
	b.AuthorName = authorName
	b.UpdatedAt = time.Now()
	return nil
}

func (b *Book) apply(d Details) {
	b.Title = d.Title
	b.Genre = d.Genre
	b.ISBN = d.ISBN
	b.Publisher = d.Publisher
	b.Price = d.Price
	b.YearPublished = d.YearPublished
	b.Description = d.Description
	b.SoldCopies = d.SoldCopies
	b.Rating = d.Rating
}

func (d Details) validate() error {
	if d.Price < 0 {
		return ErrInvalidPrice
	}
	if d.SoldCopies < 0 {
		return ErrInvalidSoldCopies
	}
	if d.Rating < MinRating || d.Rating > MaxRating || math.IsNaN(d.Rating) {
		return ErrInvalidRating
	}
	return nil
}

// MaxPrice 单价上限(元)，换算成分后远小于int64上限
const MaxPrice = 1e9

// PriceToCents 元 → 分(四舍五入)
func PriceToCents(price float64) (int64, error) {
	switch {
	case math.IsNaN(price) || price < 0:
		return 0, ErrInvalidPrice
	case price > MaxPrice:
		return 0, ErrPriceTooLarge
	}
	return int64(math.Round(price * 100)), nil
}

// CentsToPrice 分 → 元
func CentsToPrice(cents int64) float64 {
	return float64(cents) / 100
}
