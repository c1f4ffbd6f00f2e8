package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, b *Book) error { return m.Called(ctx, b).Error(0) }
func (m *mockRepo) Delete(ctx context.Context, id uint) error { return m.Called(ctx, id).Error(0) }

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*Book)
	return b, args.Error(1)
}

func (m *mockRepo) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	args := m.Called(ctx, isbn)
	b, _ := args.Get(0).(*Book)
	return b, args.Error(1)
}

func (m *mockRepo) FindByIDs(ctx context.Context, ids []uint) ([]*Book, error) {
	args := m.Called(ctx, ids)
	books, _ := args.Get(0).([]*Book)
	return books, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, f ListFilter) ([]*Book, error) {
	args := m.Called(ctx, f)
	books, _ := args.Get(0).([]*Book)
	return books, args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("ISBN未被占用", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByISBN", ctx, "9780441172719").Return(nil, ErrBookNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*book.Book")).Return(nil)

		b, err := NewService(repo).Publish(ctx, validDetails(), 7, "Frank Herbert")
		require.NoError(t, err)
		assert.Equal(t, uint(1), b.ID)
		assert.Equal(t, uint(7), b.AuthorID)
	})

	t.Run("ISBN重复", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByISBN", ctx, "9780441172719").Return(&Book{ID: 3}, nil)

		_, err := NewService(repo).Publish(ctx, validDetails(), 7, "Frank Herbert")
		assert.ErrorIs(t, err, ErrISBNDuplicate)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("校验失败不查库", func(t *testing.T) {
		repo := new(mockRepo)
		d := validDetails()
		d.Price = -100

		_, err := NewService(repo).Publish(ctx, d, 7, "Frank Herbert")
		assert.ErrorIs(t, err, ErrInvalidPrice)
		repo.AssertExpectations(t)
	})
}

func TestService_Revise(t *testing.T) {
	ctx := context.Background()
	existing := func() *Book {
		return &Book{ID: 5, ISBN: "9780441172719", SoldCopies: 100, AuthorID: 7}
	}

	t.Run("更换为他人的ISBN", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByID", ctx, uint(5)).Return(existing(), nil)
		repo.On("FindByISBN", ctx, "other").Return(&Book{ID: 6}, nil)

		d := validDetails()
		d.ISBN = "other"
		_, err := NewService(repo).Revise(ctx, 5, d, 7, "Frank Herbert")
		assert.ErrorIs(t, err, ErrISBNDuplicate)
	})

	t.Run("更新成功", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByID", ctx, uint(5)).Return(existing(), nil)
		repo.On("Update", ctx, mock.AnythingOfType("*book.Book")).Return(nil)

		d := validDetails()
		d.SoldCopies = 120
		b, err := NewService(repo).Revise(ctx, 5, d, 7, "Frank Herbert")
		require.NoError(t, err)
		assert.Equal(t, 120, b.SoldCopies)
	})
}

func TestService_Browse(t *testing.T) {
	ctx := context.Background()

	t.Run("畅销榜限制10本并按销量排序", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("List", ctx, ListFilter{Sort: SortBySoldCopies, Limit: TopSellerLimit}).Return([]*Book{{ID: 1}}, nil)

		books, err := NewService(repo).TopSellers(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 1)
		repo.AssertExpectations(t)
	})

	t.Run("FirstN边界", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo)

		books, err := svc.FirstN(ctx, 0)
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)

		_, err = svc.FirstN(ctx, -1)
		assert.ErrorIs(t, err, ErrInvalidCount)

		repo.On("List", ctx, ListFilter{Limit: 3}).Return([]*Book{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
		books, err = svc.FirstN(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, books, 3)
	})

	t.Run("评分阈值", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("List", ctx, mock.MatchedBy(func(f ListFilter) bool {
			return f.MinRating != nil && *f.MinRating == 4.5
		})).Return([]*Book{}, nil)

		_, err := NewService(repo).ByMinRating(ctx, 4.5)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
