package book

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// 图书领域错误定义
var (
	ErrBookNotFound  = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "A book with this ISBN already exists")

	ErrInvalidPrice       = apperrors.New(apperrors.ErrCodeInvalidPrice, "Price must not be negative")
	ErrPriceTooLarge      = apperrors.New(apperrors.ErrCodePriceTooLarge, "Price exceeds the maximum of 1000000000")
	ErrInvalidRating      = apperrors.New(apperrors.ErrCodeInvalidRating, "Book rating must be between 0 and 5")
	ErrInvalidThreshold   = apperrors.New(apperrors.ErrCodeInvalidRating, "Rating threshold must be a number")
	ErrInvalidSoldCopies  = apperrors.New(apperrors.ErrCodeSoldCopies, "Sold copies must not be negative")
	ErrSoldCopiesDecrease = apperrors.New(apperrors.ErrCodeSoldCopies, "Sold copies cannot decrease")
	ErrInvalidCount       = apperrors.New(apperrors.ErrCodeInvalidCount, "Record count must be a non-negative integer")
)
