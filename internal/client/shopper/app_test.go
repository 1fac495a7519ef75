package shopper

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/internal/client/cart"
	"storefront/internal/client/gateway"
	"storefront/internal/client/storage"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	mocks "storefront/internal/mocks/client"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the debounced observer and the test read output safely.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCartStore(t *testing.T) *cart.Store {
	t.Helper()

	backing, err := storage.Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = backing.Close() })

	store := cart.NewStore(cart.NewPersistence(backing, discardLogger()), discardLogger())
	store.Initialize(context.Background())

	return store
}

func newTestApp(t *testing.T) (*App, *mocks.MockGateway, *syncBuffer) {
	t.Helper()

	gw := mocks.NewMockGateway(t)
	out := &syncBuffer{}

	return New(gw, newCartStore(t), 20*time.Millisecond, out, discardLogger()), gw, out
}

func lipstick() *entity.Product {
	return &entity.Product{
		ID:                 7,
		Title:              "Red Lipstick",
		Category:           "beauty",
		Price:              decimal.RequireFromString("12.99"),
		DiscountPercentage: decimal.RequireFromString("10"),
		Rating:             decimal.RequireFromString("4.56"),
		Stock:              3,
	}
}

func TestApp_Login(t *testing.T) {
	app, gw, out := newTestApp(t)
	gw.EXPECT().Login(mock.Anything, "emilys", "emilyspass").
		Return(&entity.User{Username: "emilys", FirstName: "Emily", LastName: "Johnson"}, nil)

	require.NoError(t, app.Login(context.Background(), "emilys", "emilyspass"))
	assert.Equal(t, "Logged in as Emily Johnson (emilys)\n", out.String())
}

func TestApp_LoginRejected(t *testing.T) {
	app, gw, _ := newTestApp(t)
	gw.EXPECT().Login(mock.Anything, "emilys", "nope").Return(nil, &gateway.APIError{
		Status:  http.StatusUnauthorized,
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid username or password",
	})

	err := app.Login(context.Background(), "emilys", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password", err.Error())
}

func TestApp_ProtectedCallWithoutSession(t *testing.T) {
	app, gw, _ := newTestApp(t)
	gw.EXPECT().Categories(mock.Anything).Return(nil, &gateway.APIError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED"})

	err := app.Categories(context.Background())
	assert.True(t, errors.Is(err, ErrNotLoggedIn))
}

func TestApp_WhoAmI(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		app, gw, out := newTestApp(t)
		gw.EXPECT().Session(mock.Anything).Return(&gateway.SessionInfo{}, nil)

		require.NoError(t, app.WhoAmI(context.Background()))
		assert.Equal(t, "Not logged in\n", out.String())
	})

	t.Run("authenticated", func(t *testing.T) {
		app, gw, out := newTestApp(t)
		expires := time.Now().Add(2*time.Hour + 30*time.Second)
		gw.EXPECT().Session(mock.Anything).Return(&gateway.SessionInfo{
			Authenticated: true,
			User:          &entity.User{Username: "emilys", FirstName: "Emily", LastName: "Johnson", Email: "e@x.com"},
			ExpiresAt:     &expires,
		}, nil)

		require.NoError(t, app.WhoAmI(context.Background()))
		assert.Contains(t, out.String(), "Emily Johnson (emilys) <e@x.com>")
		assert.Contains(t, out.String(), "Session expires in 2h0m")
	})
}

func TestApp_ProductsBuildsQuery(t *testing.T) {
	app, gw, out := newTestApp(t)
	want := entity.ProductQuery{Limit: 12, Skip: 12, Search: "phone", Category: "smartphones", SortBy: "price", Order: "asc"}
	gw.EXPECT().Products(mock.Anything, want).Return(&entity.ProductPage{
		Products: []entity.Product{*lipstick()},
		Total:    13,
	}, nil)

	err := app.Products(context.Background(), ListOptions{Search: "phone", Category: "smartphones", Sort: "price-asc", Page: 2})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Red Lipstick")
	assert.Contains(t, out.String(), "Page 2 of 2 (13 products)")
}

func TestApp_ProductsRejectsBadSort(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Products(context.Background(), ListOptions{Sort: "sideways"})
	assert.Error(t, err)
}

func TestApp_Product(t *testing.T) {
	app, gw, out := newTestApp(t)
	gw.EXPECT().Product(mock.Anything, 7).Return(lipstick(), nil)

	require.NoError(t, app.Product(context.Background(), 7))
	assert.Contains(t, out.String(), "Price:    $11.69 (was $12.99, 10% off)")
	assert.Contains(t, out.String(), "Rating:   4.6")
	assert.Contains(t, out.String(), "3 in stock")
}

func TestApp_CartFlow(t *testing.T) {
	ctx := context.Background()
	app, gw, out := newTestApp(t)
	gw.EXPECT().Product(mock.Anything, 7).Return(lipstick(), nil).Times(2)

	require.NoError(t, app.AddToCart(ctx, 7))
	require.NoError(t, app.AddToCart(ctx, 7))
	assert.Contains(t, out.String(), "Added to cart!\nCart: 1 item\n")
	assert.Contains(t, out.String(), "Added to cart!\nCart: 2 items\n")

	app.SetQuantity(ctx, 7, 5)
	assert.True(t, strings.HasSuffix(out.String(), "Cart: 5 items\n"))

	app.SetQuantity(ctx, 7, 0)
	assert.True(t, strings.HasSuffix(out.String(), "Cart: 5 items\n"))

	app.ShowCart()
	assert.Contains(t, out.String(), "Subtotal: $64.95")

	app.RemoveFromCart(ctx, 7)
	assert.True(t, strings.HasSuffix(out.String(), "Cart: 0 items\n"))

	app.ClearCart(ctx)
	app.ShowCart()
	assert.Contains(t, out.String(), "Your cart is empty")
}

func TestApp_AddToCartUnknownProduct(t *testing.T) {
	app, gw, _ := newTestApp(t)
	gw.EXPECT().Product(mock.Anything, 999).Return(nil, &gateway.APIError{
		Status:  http.StatusNotFound,
		Code:    "PRODUCT_NOT_FOUND",
		Message: "Product not found",
	})

	err := app.AddToCart(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, "Product not found", err.Error())
	assert.True(t, app.cart.Snapshot().IsEmpty())
}

func TestApp_AddToCartUpstreamFailure(t *testing.T) {
	app, gw, _ := newTestApp(t)
	gw.EXPECT().Product(mock.Anything, 7).Return(nil, &gateway.APIError{
		Status:  http.StatusBadGateway,
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: "Failed to fetch product",
	})

	err := app.AddToCart(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch product, please try again", err.Error())
}

func TestApp_LogoutKeepsCart(t *testing.T) {
	ctx := context.Background()
	app, gw, _ := newTestApp(t)
	gw.EXPECT().Product(mock.Anything, 7).Return(lipstick(), nil)
	gw.EXPECT().Logout(mock.Anything).Return(nil)

	require.NoError(t, app.AddToCart(ctx, 7))
	require.NoError(t, app.Logout(ctx))

	assert.Equal(t, 1, app.cart.Snapshot().TotalItems())
}
