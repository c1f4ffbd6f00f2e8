package shelf

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	ErrAlreadyInWishlist = apperrors.New(apperrors.ErrCodeShelfDuplicate, "Book is already in the wishlist")
	ErrAlreadyInCart     = apperrors.New(apperrors.ErrCodeShelfDuplicate, "Book is already in the shopping cart")
	ErrNotInWishlist     = apperrors.New(apperrors.ErrCodeShelfEntry, "Book is not in the wishlist")
	ErrNotInCart         = apperrors.New(apperrors.ErrCodeShelfEntry, "Book is not in the shopping cart")
)

// ErrDuplicate 对应书架的重复错误
func ErrDuplicate(kind Kind) error {
	if kind == KindCart {
		return ErrAlreadyInCart
	}
	return ErrAlreadyInWishlist
}

// ErrMissing 对应书架的不存在错误
func ErrMissing(kind Kind) error {
	if kind == KindCart {
		return ErrNotInCart
	}
	return ErrNotInWishlist
}
