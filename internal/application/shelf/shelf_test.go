package shelf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appshelf "github.com/xiebiao/bookstore-api/internal/application/shelf"
	"github.com/xiebiao/bookstore-api/internal/domain/author"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/domain/shelf"
	"github.com/xiebiao/bookstore-api/internal/domain/user"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-api/internal/testutil"
)

type captured struct{ events []event.Event }

func (c *captured) Publish(_ context.Context, evt event.Event) error {
	c.events = append(c.events, evt)
	return nil
}

func TestMoveToCart_AlreadyInCart(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := gormdb.NewUserRepository(db)
	books := gormdb.NewBookRepository(db)
	authors := gormdb.NewAuthorRepository(db)
	shelves := gormdb.NewShelfRepository(db)
	service := shelf.NewService(shelves)
	events := &captured{}

	u, err := user.NewUser("Ada", "ada", "ada@example.com", "", "pw")
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))

	a := &author.Author{Name: "Pike"}
	require.NoError(t, authors.Create(ctx, a))
	b, err := book.NewBook(book.Details{Title: "Go", Genre: "Programming", ISBN: "111", Price: 100}, a.ID, a.Name)
	require.NoError(t, err)
	require.NoError(t, books.Create(ctx, b))

	require.NoError(t, shelves.Add(ctx, shelf.KindWishlist, u.ID, b.ID))
	require.NoError(t, shelves.Add(ctx, shelf.KindCart, u.ID, b.ID))

	move := appshelf.NewMoveToCartUseCase(gormdb.NewTxManager(db), users, books, service, events)
	moved, err := move.Execute(ctx, "ada", b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", moved.Title)

	list := appshelf.NewListShelfUseCase(users, books, service)
	cart, err := list.Execute(ctx, shelf.KindCart, "ada")
	require.NoError(t, err)
	assert.Len(t, cart, 1, "购物车里仍然只有一条")

	wishlist, err := list.Execute(ctx, shelf.KindWishlist, "ada")
	require.NoError(t, err)
	assert.Empty(t, wishlist)

	require.Len(t, events.events, 1)
	assert.Equal(t, event.WishlistMoved, events.events[0].Type)
	assert.Equal(t, event.ShelfPayload{UserID: u.ID, BookID: b.ID}, events.events[0].Payload)
}
