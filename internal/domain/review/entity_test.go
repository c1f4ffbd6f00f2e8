package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		r, err := NewReview(1, 2, "jdoe", rating, "ok")
		require.NoError(t, err)
		assert.Equal(t, rating, r.Rating)
		assert.False(t, r.CreatedAt.IsZero())
	}

	for _, rating := range []int{0, 6, -1} {
		_, err := NewReview(1, 2, "jdoe", rating, "bad")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating=%d", rating)
	}
}
