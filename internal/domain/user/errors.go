package user

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// 用户领域错误
var (
	ErrUserNotFound      = apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "Username already exists")
)
