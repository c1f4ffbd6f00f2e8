package review

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidRating, "Review rating must be between 1 and 5")
