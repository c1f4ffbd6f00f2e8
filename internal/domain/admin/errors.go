package admin

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrAdminNotFound = apperrors.New(apperrors.ErrCodeAdminNotFound, "Admin not found")
	ErrUsernameTaken = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "That username already exists. Please choose a different one.")
	// ErrSessionNotFound 会话不存在或已过期
	ErrSessionNotFound = apperrors.New(apperrors.ErrCodeUnauthorized, "Session expired")
)
