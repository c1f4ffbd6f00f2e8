// Package shelf 心愿单与购物车用例
package shelf

import (
	"context"

	"github.com/samber/lo"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/domain/shelf"
	"github.com/xiebiao/bookstore-api/internal/domain/user"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
)

// AddToWishlistUseCase 加入心愿单
// 业务规则：用户和图书都必须存在；重复加入返回409
type AddToWishlistUseCase struct {
	userRepo     user.Repository
	bookRepo     book.Repository
	shelfService shelf.Service
}

// NewAddToWishlistUseCase 创建加入心愿单用例
func NewAddToWishlistUseCase(userRepo user.Repository, bookRepo book.Repository, shelfService shelf.Service) *AddToWishlistUseCase {
	return &AddToWishlistUseCase{userRepo: userRepo, bookRepo: bookRepo, shelfService: shelfService}
}

// Execute 返回被加入的图书
func (uc *AddToWishlistUseCase) Execute(ctx context.Context, username string, bookID uint) (*appbook.BookDTO, error) {
	u, b, err := lookup(ctx, uc.userRepo, uc.bookRepo, username, bookID)
	if err != nil {
		return nil, err
	}
	if err := uc.shelfService.Add(ctx, shelf.KindWishlist, u.ID, b.ID); err != nil {
		return nil, err
	}
	dto := appbook.NewBookDTO(b)
	return &dto, nil
}

// MoveToCartUseCase 心愿单 → 购物车
// 设计说明：移除与加入在同一事务中，提交后发布wishlist.moved事件
type MoveToCartUseCase struct {
	txManager    *gormdb.TxManager
	userRepo     user.Repository
	bookRepo     book.Repository
	shelfService shelf.Service
	events       event.Publisher
}

// NewMoveToCartUseCase 创建移入购物车用例
func NewMoveToCartUseCase(
	txManager *gormdb.TxManager,
	userRepo user.Repository,
	bookRepo book.Repository,
	shelfService shelf.Service,
	events event.Publisher,
) *MoveToCartUseCase {
	return &MoveToCartUseCase{
		txManager:    txManager,
		userRepo:     userRepo,
		bookRepo:     bookRepo,
		shelfService: shelfService,
		events:       events,
	}
}

// Execute 返回被移动的图书，不在心愿单中返回404
func (uc *MoveToCartUseCase) Execute(ctx context.Context, username string, bookID uint) (*appbook.BookDTO, error) {
	u, b, err := lookup(ctx, uc.userRepo, uc.bookRepo, username, bookID)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.shelfService.MoveToCart(txCtx, u.ID, b.ID)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.WishlistMovesTotal)
	event.Emit(ctx, uc.events, event.New(event.WishlistMoved, event.ShelfPayload{UserID: u.ID, BookID: b.ID}))

	dto := appbook.NewBookDTO(b)
	return &dto, nil
}

// ListShelfUseCase 查看心愿单或购物车
type ListShelfUseCase struct {
	userRepo     user.Repository
	bookRepo     book.Repository
	shelfService shelf.Service
}

// NewListShelfUseCase 创建书架查询用例
func NewListShelfUseCase(userRepo user.Repository, bookRepo book.Repository, shelfService shelf.Service) *ListShelfUseCase {
	return &ListShelfUseCase{userRepo: userRepo, bookRepo: bookRepo, shelfService: shelfService}
}

// Execute 按加入顺序返回图书，未知用户返回404
func (uc *ListShelfUseCase) Execute(ctx context.Context, kind shelf.Kind, username string) ([]appbook.BookDTO, error) {
	u, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ids, err := uc.shelfService.BookIDs(ctx, kind, u.ID)
	if err != nil {
		return nil, err
	}
	books, err := uc.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := lo.KeyBy(books, func(b *book.Book) uint { return b.ID })
	ordered := lo.FilterMap(ids, func(id uint, _ int) (*book.Book, bool) {
		b, ok := byID[id]
		return b, ok
	})
	return appbook.NewBookDTOs(ordered), nil
}

func lookup(ctx context.Context, users user.Repository, books book.Repository, username string, bookID uint) (*user.User, *book.Book, error) {
	u, err := users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	b, err := books.FindByID(ctx, bookID)
	if err != nil {
		return nil, nil, err
	}
	return u, b, nil
}
