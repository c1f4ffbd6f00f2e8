package author

// Author 作者
// 设计说明：Name唯一，图书通过AuthorID引用作者，
// 创建/更新图书时按作者名查找，不存在则自动创建
type Author struct {
	ID        uint
	Name      string
	Biography string
	Publisher string
}
