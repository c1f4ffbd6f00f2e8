package gormdb

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的键，私有类型避免与其他包冲突
type txKey struct{}

// TxManager 事务管理器
// 学习要点:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB，Repository用conn(ctx)取出
// 3. ctx中已有事务时嵌套调用，GORM自动使用Savepoint
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction fn返回error时ROLLBACK，返回nil时COMMIT
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := shelfRepo.Remove(ctx, shelf.KindWishlist, userID, bookID); err != nil {
//	        return err // 自动回滚
//	    }
//	    return shelfRepo.Add(ctx, shelf.KindCart, userID, bookID)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return conn(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn 从context获取事务DB，没有事务时使用默认DB
// 注意：所有Repository方法都必须经过这里，否则事务内的操作会跑在另一个连接上
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
