package author

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrAuthorNotFound  = apperrors.New(apperrors.ErrCodeAuthorNotFound, "Author not found")
	ErrAuthorDuplicate = apperrors.New(apperrors.ErrCodeAuthorDuplicate, "Author already exists")
)
