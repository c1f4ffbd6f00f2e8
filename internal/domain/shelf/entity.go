// Package shelf 心愿单与购物车
//
// 两者结构相同：(user_id, book_id)联合主键，同一本书在同一用户的书架上最多出现一次。
package shelf

import (
	"time"
)

// Kind 书架类型
type Kind string

const (
	KindWishlist Kind = "wishlist"
	KindCart     Kind = "cart"
)

// String 返回书架名称
func (k Kind) String() string {
	return string(k)
}

// Entry 书架条目
type Entry struct {
	Kind    Kind
	UserID  uint
	BookID  uint
	AddedAt time.Time
}
