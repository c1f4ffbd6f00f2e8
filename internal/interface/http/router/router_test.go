package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appadmin "github.com/xiebiao/bookstore-api/internal/application/admin"
	appauthor "github.com/xiebiao/bookstore-api/internal/application/author"
	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	appcard "github.com/xiebiao/bookstore-api/internal/application/card"
	appreview "github.com/xiebiao/bookstore-api/internal/application/review"
	appshelf "github.com/xiebiao/bookstore-api/internal/application/shelf"
	appuser "github.com/xiebiao/bookstore-api/internal/application/user"
	"github.com/xiebiao/bookstore-api/internal/domain/admin"
	"github.com/xiebiao/bookstore-api/internal/domain/author"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/domain/shelf"
	"github.com/xiebiao/bookstore-api/internal/domain/user"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/gormdb"
	bsredis "github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-api/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/internal/interface/http/router"
	"github.com/xiebiao/bookstore-api/internal/testutil"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
)

// recorder 记录发布过的事件类型
type recorder struct {
	mu    sync.Mutex
	types []string
}

func (r *recorder) Publish(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, evt.Type)
	return nil
}

func (r *recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.types...)
}

type testApp struct {
	engine *gin.Engine
	events *recorder
	redis  *miniredis.Miniredis
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := testutil.Config()
	cfg.Metrics.Enabled = true
	logger := zap.NewNop()
	db := testutil.NewDB(t)
	rdb, mr := testutil.NewRedis(t)
	events := &recorder{}

	users := gormdb.NewUserRepository(db)
	cards := gormdb.NewCardRepository(db)
	authors := gormdb.NewAuthorRepository(db)
	books := gormdb.NewBookRepository(db)
	reviews := gormdb.NewReviewRepository(db)
	shelves := gormdb.NewShelfRepository(db)
	admins := gormdb.NewAdminRepository(db)
	tx := gormdb.NewTxManager(db)

	userService := user.NewService(users)
	authorService := author.NewService(authors)
	bookService := book.NewService(books)
	shelfService := shelf.NewService(shelves)
	adminService := admin.NewService(admins)

	sessions := bsredis.NewSessionStore(rdb)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire)

	h := router.Handlers{
		User: handler.NewUserHandler(
			appuser.NewCreateUserUseCase(userService),
			appuser.NewUpdateUserUseCase(userService),
			appuser.NewQueryUsersUseCase(userService),
		),
		Card: handler.NewCardHandler(
			appcard.NewAddCardUseCase(cards, users),
			appcard.NewListCardsUseCase(cards),
		),
		Author: handler.NewAuthorHandler(appauthor.NewCreateAuthorUseCase(authorService)),
		Book: handler.NewBookHandler(
			appbook.NewCreateBookUseCase(tx, authorService, bookService, events),
			appbook.NewUpdateBookUseCase(tx, authorService, bookService, events),
			appbook.NewDeleteBookUseCase(tx, bookService, reviews, shelves, events),
			appbook.NewBrowseBooksUseCase(bookService),
		),
		Shelf: handler.NewShelfHandler(
			appshelf.NewAddToWishlistUseCase(users, books, shelfService),
			appshelf.NewMoveToCartUseCase(tx, users, books, shelfService, events),
			appshelf.NewListShelfUseCase(users, books, shelfService),
		),
		Review: handler.NewReviewHandler(
			appreview.NewAddReviewUseCase(users, books, reviews, events),
			appreview.NewAverageRatingUseCase(books, reviews),
			appreview.NewListReviewsUseCase(reviews),
		),
		Admin: handler.NewAdminHandler(
			appadmin.NewRegisterUseCase(adminService),
			appadmin.NewLoginUseCase(adminService, sessions, jwtManager, logger),
			appadmin.NewLogoutUseCase(sessions, logger),
			appadmin.NewDashboardUseCase(admins, bookService, books, authors, users, reviews),
			cfg.JWT,
			logger,
		),
		AdminAuth: middleware.NewAdminAuth(appadmin.NewAuthorizeUseCase(sessions, jwtManager), cfg.JWT.CookieName, logger),
	}

	engine, err := router.New(cfg, logger, h)
	require.NoError(t, err)
	return &testApp{engine: engine, events: events, redis: mr}
}

func (a *testApp) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) form(t *testing.T, path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type bookBody struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Genre         string  `json:"genre"`
	Author        string  `json:"author"`
	AuthorID      uint    `json:"author_id"`
	ISBN          string  `json:"isbn"`
	Price         float64 `json:"price"`
	YearPublished int     `json:"year_published"`
	SoldCopies    int     `json:"sold_copies"`
	Rating        float64 `json:"rating"`
}

func newBook(title, isbn, author, genre string, sold int) map[string]any {
	return map[string]any{
		"title":          title,
		"genre":          genre,
		"author":         author,
		"isbn":           isbn,
		"publisher":      "Addison-Wesley",
		"price":          39.99,
		"year_published": 2015,
		"description":    "about " + title,
		"sold_copies":    sold,
	}
}

func newUser(username string) map[string]any {
	return map[string]any{
		"name":         "Name " + username,
		"username":     username,
		"email":        username + "@example.com",
		"home_address": "1 Main St",
		"password":     "secret",
	}
}

func (a *testApp) mustCreate(t *testing.T, path string, body any) {
	t.Helper()
	w := a.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = app.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bookstore_http_requests_total")
}

func TestUsersAPI(t *testing.T) {
	app := newTestApp(t)

	t.Run("创建用户", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/users", newUser("ada"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[map[string]any](t, w)
		assert.Equal(t, appuser.CreatedMessage, body["message"])
		assert.Equal(t, "ada", body["username"])
		assert.EqualValues(t, 1, body["id"])
		assert.NotEqual(t, "secret", body["password"], "只输出摘要")
	})

	t.Run("用户名重复返回409", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/users", newUser("ada"))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperrors.ErrCodeUsernameDuplicate, decode[errorBody](t, w).Code)
	})

	t.Run("缺少必填字段返回400", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/users", map[string]any{"name": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.ErrCodeBindError, decode[errorBody](t, w).Code)
	})

	t.Run("按id和用户名查询", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/users/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ada@example.com", decode[map[string]any](t, w)["email"])

		w = app.do(t, http.MethodGet, "/api/user/ada", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Name ada", decode[map[string]any](t, w)["name"])

		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/users/99", nil).Code)
		assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/api/users/abc", nil).Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/user/nobody", nil).Code)
	})

	t.Run("更新资料，邮箱不变", func(t *testing.T) {
		w := app.do(t, http.MethodPut, "/api/users/1", map[string]any{
			"name": "Ada King", "username": "ada", "home_address": "Ockham Park",
			"password": "engine", "email": "changed@example.com",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, handler.UpdatedMessage, decode[map[string]any](t, w)["message"])

		got := decode[map[string]any](t, app.do(t, http.MethodGet, "/api/users/1", nil))
		assert.Equal(t, "Ada King", got["name"])
		assert.Equal(t, "ada@example.com", got["email"])
	})

	t.Run("密码超过72字节返回400", func(t *testing.T) {
		long := newUser("carol")
		long["password"] = strings.Repeat("x", 73)
		w := app.do(t, http.MethodPost, "/api/users", long)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, apperrors.ErrCodePasswordLong, decode[errorBody](t, w).Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/user/carol", nil).Code)

		w = app.do(t, http.MethodPut, "/api/users/1", map[string]any{
			"name": "Ada King", "username": "ada", "home_address": "Ockham Park",
			"password": strings.Repeat("x", 80),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, apperrors.ErrCodePasswordLong, decode[errorBody](t, w).Code)
	})

	t.Run("用户列表", func(t *testing.T) {
		app.mustCreate(t, "/api/users", newUser("bob"))
		list := decode[[]map[string]any](t, app.do(t, http.MethodGet, "/api/users", nil))
		assert.Len(t, list, 2)
	})
}

func TestCardsAPI(t *testing.T) {
	app := newTestApp(t)
	app.mustCreate(t, "/api/users", newUser("ada"))

	card := map[string]any{
		"name": "Ada", "card_number": "4111111111111111", "expiration_date": "12/29",
		"security_code": "123", "zip_code": "10001", "user_id": 1,
	}
	w := app.do(t, http.MethodPost, "/api/cards", card)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "4111111111111111", decode[map[string]any](t, w)["card_number"])

	card["user_id"] = 42
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/api/cards", card).Code)

	list := decode[[]map[string]any](t, app.do(t, http.MethodGet, "/api/cards", nil))
	assert.Len(t, list, 1)
}

func TestBooksAPI(t *testing.T) {
	app := newTestApp(t)

	t.Run("新增图书并自动创建作者", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/book", newBook("Go", "111", "Donovan", "Programming", 10))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		b := decode[bookBody](t, w)
		assert.Equal(t, "Donovan", b.Author)
		assert.NotZero(t, b.AuthorID)
		assert.InDelta(t, 39.99, b.Price, 1e-9)

		app.mustCreate(t, "/api/book", newBook("Rust", "222", "Klabnik", "Programming", 30))
		app.mustCreate(t, "/api/book", newBook("Dune", "333", "Herbert", "Fiction", 20))
		app.mustCreate(t, "/api/book", newBook("Go 2", "444", "Donovan", "Programming", 30))
	})

	t.Run("作者重名返回409", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/author", map[string]any{"name": "Donovan"})
		assert.Equal(t, http.StatusConflict, w.Code)

		w = app.do(t, http.MethodPost, "/api/author", map[string]any{"name": "Pike", "biography": "Plan 9"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Plan 9", decode[map[string]any](t, w)["biography"])
	})

	t.Run("ISBN重复返回409", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/book", newBook("Copy", "111", "Someone", "X", 0))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("缺少数值字段返回400", func(t *testing.T) {
		body := newBook("No price", "555", "A", "B", 0)
		delete(body, "price")
		assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/api/book", body).Code)
	})

	t.Run("价格超出上限返回400", func(t *testing.T) {
		body := newBook("Gold", "666", "Midas", "Luxury", 0)
		body["price"] = 1e300
		w := app.do(t, http.MethodPost, "/api/book", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.ErrCodePriceTooLarge, decode[errorBody](t, w).Code)

		body["price"] = -1
		w = app.do(t, http.MethodPost, "/api/book", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.ErrCodeInvalidPrice, decode[errorBody](t, w).Code)
	})

	t.Run("查询", func(t *testing.T) {
		all := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/books", nil))
		require.Len(t, all, 4)
		assert.Equal(t, []uint{1, 2, 3, 4}, []uint{all[0].ID, all[1].ID, all[2].ID, all[3].ID})

		w := app.do(t, http.MethodGet, "/api/book/333", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Dune", decode[bookBody](t, w).Title)
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/book/999", nil).Code)

		byAuthor := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/books/Donovan", nil))
		assert.Len(t, byAuthor, 2)

		byGenre := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/books/genre/Fiction", nil))
		require.Len(t, byGenre, 1)
		assert.Equal(t, "Dune", byGenre[0].Title)

		assert.Empty(t, decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/books/Nobody", nil)))
	})

	t.Run("畅销榜按销量降序，同销量按id升序", func(t *testing.T) {
		top := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/top-seller-books", nil))
		require.Len(t, top, 4)
		assert.Equal(t, []string{"Rust", "Go 2", "Dune", "Go"},
			[]string{top[0].Title, top[1].Title, top[2].Title, top[3].Title})
	})

	t.Run("前N本", func(t *testing.T) {
		first := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/books/return/2", nil))
		assert.Len(t, first, 2)

		w := app.do(t, http.MethodGet, "/api/books/return/0", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())

		assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/api/books/return/-1", nil).Code)
		assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/api/books/return/abc", nil).Code)
	})

	t.Run("更新图书", func(t *testing.T) {
		update := newBook("Dune Messiah", "333", "Frank Herbert", "Fiction", 25)
		update["rating"] = 4.5
		w := app.do(t, http.MethodPut, "/api/book/3", update)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		b := decode[bookBody](t, app.do(t, http.MethodGet, "/api/book/333", nil))
		assert.Equal(t, "Dune Messiah", b.Title)
		assert.Equal(t, "Frank Herbert", b.Author)
		assert.Equal(t, 4.5, b.Rating)

		update["sold_copies"] = 1
		w = app.do(t, http.MethodPut, "/api/book/3", update)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.ErrCodeSoldCopies, decode[errorBody](t, w).Code)

		update["sold_copies"] = 30
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPut, "/api/book/99", update).Code)
	})

	t.Run("按评分过滤", func(t *testing.T) {
		rated := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/books/rating/4", nil))
		require.Len(t, rated, 1)
		assert.Equal(t, uint(3), rated[0].ID)

		for _, threshold := range []string{"high", "NaN", "Inf", "-Inf"} {
			w := app.do(t, http.MethodGet, "/api/books/rating/"+threshold, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, threshold)
			assert.Equal(t, book.ErrInvalidThreshold.Message, decode[errorBody](t, w).Message, threshold)
		}
	})

	t.Run("删除图书", func(t *testing.T) {
		w := app.do(t, http.MethodDelete, "/api/book/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "You deleted book 1", decode[map[string]any](t, w)["message"])

		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodDelete, "/api/book/1", nil).Code)
		assert.Len(t, decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/books", nil)), 3)
	})

	assert.Equal(t, []string{
		event.BookCreated, event.BookCreated, event.BookCreated, event.BookCreated,
		event.BookUpdated, event.BookDeleted,
	}, app.events.Types())
}

func TestShelvesAPI(t *testing.T) {
	app := newTestApp(t)
	app.mustCreate(t, "/api/users", newUser("ada"))
	app.mustCreate(t, "/api/book", newBook("Go", "111", "Donovan", "Programming", 1))
	app.mustCreate(t, "/api/book", newBook("Dune", "333", "Herbert", "Fiction", 1))

	t.Run("加入心愿单", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/wishlist/ada", map[string]any{"id": 2})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Dune", decode[bookBody](t, w).Title)
		app.mustCreate(t, "/api/wishlist/ada", map[string]any{"id": 1})

		w = app.do(t, http.MethodPost, "/api/wishlist/ada", map[string]any{"id": 2})
		assert.Equal(t, http.StatusConflict, w.Code)

		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/api/wishlist/nobody", map[string]any{"id": 1}).Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/api/wishlist/ada", map[string]any{"id": 99}).Code)
	})

	t.Run("按加入顺序列出", func(t *testing.T) {
		list := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/wishlist/ada", nil))
		require.Len(t, list, 2)
		assert.Equal(t, "Dune", list[0].Title)
		assert.Equal(t, "Go", list[1].Title)
	})

	t.Run("移入购物车", func(t *testing.T) {
		w := app.do(t, http.MethodDelete, "/api/wishlist/ada", map[string]any{"id": 2})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		wishlist := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/wishlist/ada", nil))
		require.Len(t, wishlist, 1)
		assert.Equal(t, "Go", wishlist[0].Title)

		cart := decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/shopping-cart/ada", nil))
		require.Len(t, cart, 1)
		assert.Equal(t, "Dune", cart[0].Title)
	})

	t.Run("不在心愿单中返回404", func(t *testing.T) {
		w := app.do(t, http.MethodDelete, "/api/wishlist/ada", map[string]any{"id": 2})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apperrors.ErrCodeShelfEntry, decode[errorBody](t, w).Code)
	})

	t.Run("删除图书同时清理书架", func(t *testing.T) {
		require.Equal(t, http.StatusOK, app.do(t, http.MethodDelete, "/api/book/2", nil).Code)
		assert.Empty(t, decode[[]bookBody](t, app.do(t, http.MethodGet, "/api/shopping-cart/ada", nil)))
	})

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/shopping-cart/nobody", nil).Code)
	assert.Contains(t, app.events.Types(), event.WishlistMoved)
}

func TestReviewsAPI(t *testing.T) {
	app := newTestApp(t)
	app.mustCreate(t, "/api/users", newUser("ada"))
	app.mustCreate(t, "/api/users", newUser("bob"))
	app.mustCreate(t, "/api/book", newBook("Go", "111", "Donovan", "Programming", 1))
	app.mustCreate(t, "/api/book", newBook("Dune", "333", "Herbert", "Fiction", 1))

	t.Run("没有书评时平均分为null", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/books/average/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"book_id":1,"average_rating":null,"review_count":0,"message":"No reviews yet for book #1"}`, w.Body.String())
	})

	t.Run("评分越界返回400", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/reviews/ada", map[string]any{"id": 1, "rating": 6, "comment": "!"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.ErrCodeInvalidRating, decode[errorBody](t, w).Code)
	})

	t.Run("发表书评返回该用户全部书评", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/reviews/ada", map[string]any{"id": 1, "rating": 3, "comment": "ok"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Len(t, decode[[]map[string]any](t, w), 1)

		w = app.do(t, http.MethodPost, "/api/reviews/ada", map[string]any{"id": 2, "rating": 5, "comment": "great"})
		require.Equal(t, http.StatusOK, w.Code)
		mine := decode[[]map[string]any](t, w)
		require.Len(t, mine, 2)
		assert.Equal(t, "ada", mine[0]["username"])

		app.mustCreate(t, "/api/reviews/bob", map[string]any{"id": 1, "rating": 4})

		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/api/reviews/nobody", map[string]any{"id": 1, "rating": 4}).Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/api/reviews/ada", map[string]any{"id": 9, "rating": 4}).Code)
	})

	t.Run("平均分", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/books/average/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"book_id":1,"average_rating":3.5,"review_count":2,"message":"3.50 for book #1"}`, w.Body.String())

		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/books/average/9", nil).Code)
	})

	t.Run("全部书评按评分降序", func(t *testing.T) {
		all := decode[[]map[string]any](t, app.do(t, http.MethodGet, "/api/reviews", nil))
		require.Len(t, all, 3)
		assert.EqualValues(t, []any{5.0, 4.0, 3.0}, []any{all[0]["rating"], all[1]["rating"], all[2]["rating"]})
	})

	assert.Equal(t, []string{event.BookCreated, event.BookCreated, event.ReviewCreated, event.ReviewCreated, event.ReviewCreated},
		app.events.Types())
}

func (a *testApp) sessionKeys() []string {
	var keys []string
	for _, k := range a.redis.Keys() {
		if strings.HasPrefix(k, "admin:session:") {
			keys = append(keys, k)
		}
	}
	return keys
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	return nil
}

func TestAdminPages(t *testing.T) {
	app := newTestApp(t)
	creds := url.Values{"username": {"root"}, "password": {"toor1234"}}

	t.Run("公开页面", func(t *testing.T) {
		for _, path := range []string{"/admins/", "/admins/login", "/admins/register", "/admins/incorrect"} {
			w := app.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		}
	})

	t.Run("注册", func(t *testing.T) {
		w := app.form(t, "/admins/register", url.Values{"username": {"abc"}, "password": {"toor1234"}})
		assert.Equal(t, http.StatusBadRequest, w.Code, "用户名少于4个字符")

		w = app.form(t, "/admins/register", creds)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))

		// 20个字符但有80字节
		w = app.form(t, "/admins/register", url.Values{"username": {"emoji"}, "password": {strings.Repeat("😀", 20)}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Password must be at most 72 bytes")

		w = app.form(t, "/admins/register", creds)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "That username already exists. Please choose a different one.")
	})

	t.Run("未登录访问后台跳转到登录页", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/admins/dashboard", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))

		w = app.do(t, http.MethodGet, "/admins/dashboard", nil, &http.Cookie{Name: "admin_session", Value: "garbage"})
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("密码错误跳转到错误页", func(t *testing.T) {
		w := app.form(t, "/admins/login", url.Values{"username": {"root"}, "password": {"wrong-pw"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admins/incorrect", w.Header().Get("Location"))

		w = app.form(t, "/admins/login", url.Values{"username": {"nobody"}, "password": {"toor1234"}})
		assert.Equal(t, "/admins/incorrect", w.Header().Get("Location"))
	})

	t.Run("登录、访问后台、退出", func(t *testing.T) {
		app.mustCreate(t, "/api/book", newBook("Go", "111", "Donovan", "Programming", 7))

		w := app.form(t, "/admins/login", creds)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admins/dashboard", w.Header().Get("Location"))
		cookie := sessionCookie(w)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Len(t, app.sessionKeys(), 1)

		w = app.do(t, http.MethodGet, "/admins/dashboard", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "root")
		assert.Contains(t, w.Body.String(), "Go")

		w = app.do(t, http.MethodGet, "/admins/logout", nil, cookie)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))
		cleared := sessionCookie(w)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Empty(t, app.sessionKeys())
		assert.True(t, app.redis.Exists("admin:blacklist:"+cookie.Value))

		// 旧Token已进入黑名单
		w = app.do(t, http.MethodGet, "/admins/dashboard", nil, cookie)
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("会话过期后需要重新登录", func(t *testing.T) {
		w := app.form(t, "/admins/login", creds)
		cookie := sessionCookie(w)
		require.NotNil(t, cookie)

		keys := app.sessionKeys()
		require.Len(t, keys, 1)
		app.redis.Del(keys[0])
		w = app.do(t, http.MethodGet, "/admins/dashboard", nil, cookie)
		assert.Equal(t, http.StatusFound, w.Code)
	})
}
