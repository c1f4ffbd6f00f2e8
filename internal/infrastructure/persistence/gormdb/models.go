package gormdb

import (
	"time"
)

// 设计说明：
// 1. 这里是infrastructure层的数据模型，带GORM tag
// 2. domain层实体不依赖GORM，Repository负责两者之间的转换
// 3. 全部物理删除，没有DeletedAt

// UserModel 目录用户
type UserModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Username    string    `gorm:"uniqueIndex;size:50;not null"`
	Email       string    `gorm:"size:100;not null"`
	HomeAddress string    `gorm:"size:255"`
	Password    string    `gorm:"size:255;not null;comment:bcrypt摘要"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserModel) TableName() string { return "users" }

// CardModel 支付卡
type CardModel struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:100;not null"`
	CardNumber     string `gorm:"size:32;not null"`
	ExpirationDate string `gorm:"size:10;not null"`
	SecurityCode   string `gorm:"size:8;not null"`
	ZipCode        string `gorm:"size:10;not null"`
	UserID         uint   `gorm:"index;not null"`
}

func (CardModel) TableName() string { return "cards" }

// AuthorModel 作者
type AuthorModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Biography string `gorm:"type:text"`
	Publisher string `gorm:"size:100"`
}

func (AuthorModel) TableName() string { return "authors" }

// BookModel 图书
// 设计说明:
// 1. 价格使用int64存储"分"
// 2. ISBN有唯一索引
// 3. sold_copies、rating上有索引，畅销榜和评分筛选直接走索引
type BookModel struct {
	ID            uint        `gorm:"primaryKey"`
	Title         string      `gorm:"size:200;not null"`
	Genre         string      `gorm:"index;size:50"`
	AuthorID      uint        `gorm:"index;not null"`
	Author        AuthorModel `gorm:"foreignKey:AuthorID"`
	ISBN          string      `gorm:"column:isbn;uniqueIndex;size:20;not null"`
	Publisher     string      `gorm:"size:100"`
	Price         int64       `gorm:"not null;default:0;comment:价格(分)"`
	YearPublished int
	Description   string  `gorm:"type:text"`
	SoldCopies    int     `gorm:"index;not null;default:0"`
	Rating        float64 `gorm:"index;not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (BookModel) TableName() string { return "books" }

// ReviewModel 书评
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	BookID    uint      `gorm:"index;not null"`
	UserID    uint      `gorm:"index;not null"`
	User      UserModel `gorm:"foreignKey:UserID"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

func (ReviewModel) TableName() string { return "reviews" }

// WishlistModel 心愿单，(user_id, book_id)联合主键
type WishlistModel struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	BookID    uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (WishlistModel) TableName() string { return "wishlist" }

// CartModel 购物车，(user_id, book_id)联合主键
type CartModel struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	BookID    uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (CartModel) TableName() string { return "shopping_cart" }

// AdminModel 管理后台账号
type AdminModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:20;not null"`
	Password  string `gorm:"size:255;not null;comment:bcrypt摘要"`
	CreatedAt time.Time
}

func (AdminModel) TableName() string { return "admins" }
