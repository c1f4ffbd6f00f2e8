package admin

import (
	"context"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/domain/admin"
	"github.com/xiebiao/bookstore-api/internal/domain/author"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/review"
	"github.com/xiebiao/bookstore-api/internal/domain/user"
)

// DashboardView 后台首页数据
type DashboardView struct {
	Username   string
	Books      int64
	Authors    int64
	Users      int64
	Reviews    int64
	TopSellers []appbook.BookDTO
}

// DashboardUseCase 汇总目录统计
type DashboardUseCase struct {
	adminRepo   admin.Repository
	bookService book.Service
	bookRepo    book.Repository
	authorRepo  author.Repository
	userRepo    user.Repository
	reviewRepo  review.Repository
}

// NewDashboardUseCase 创建后台首页用例
func NewDashboardUseCase(
	adminRepo admin.Repository,
	bookService book.Service,
	bookRepo book.Repository,
	authorRepo author.Repository,
	userRepo user.Repository,
	reviewRepo review.Repository,
) *DashboardUseCase {
	return &DashboardUseCase{
		adminRepo:   adminRepo,
		bookService: bookService,
		bookRepo:    bookRepo,
		authorRepo:  authorRepo,
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
	}
}

// Execute 汇总计数与畅销榜，管理员不存在返回ErrAdminNotFound
func (uc *DashboardUseCase) Execute(ctx context.Context, adminID uint) (*DashboardView, error) {
	a, err := uc.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{Username: a.Username}
	counters := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&view.Books, uc.bookRepo.Count},
		{&view.Authors, uc.authorRepo.Count},
		{&view.Users, uc.userRepo.Count},
		{&view.Reviews, uc.reviewRepo.Count},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	top, err := uc.bookService.TopSellers(ctx)
	if err != nil {
		return nil, err
	}
	view.TopSellers = appbook.NewBookDTOs(top)
	return view, nil
}
