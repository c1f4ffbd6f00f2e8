package gormdb

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// isDuplicateError 判断是否为唯一索引/主键冲突
// TranslateError开启后驱动会返回gorm.ErrDuplicatedKey，
// 这里再按错误信息兜底：
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - PostgreSQL 23505: duplicate key value violates unique constraint
// - SQLite: UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// dbError 包装数据库错误，原始错误只进日志，客户端看到"Database error"
func dbError(op string, err error) error {
	return apperrors.WithCause(apperrors.ErrDatabaseError, fmt.Errorf("%s: %w", op, err))
}
