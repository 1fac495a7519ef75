// Package shopper implements the shopper commands on top of the gateway
// client, the cart store and the catalog query state.
package shopper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/client/cart"
	"storefront/internal/client/catalog"
	"storefront/internal/client/gateway"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/util"
)

// Gateway is the subset of the gateway client used by the commands.
type Gateway interface {
	Login(ctx context.Context, username, password string) (*entity.User, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*gateway.SessionInfo, error)
	Categories(ctx context.Context) ([]string, error)
	Products(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error)
	Product(ctx context.Context, id int) (*entity.Product, error)
}

// ErrNotLoggedIn is returned when the gateway rejects the saved session.
var ErrNotLoggedIn = errors.New("not logged in, run `shopper login -u <username> -p <password>`")

// App runs shopper commands and writes their output to out.
type App struct {
	gateway  Gateway
	cart     *cart.Store
	debounce time.Duration
	logger   *slog.Logger

	mu  sync.Mutex
	out io.Writer
}

// New creates the app. The cart must already be initialized.
func New(gw Gateway, store *cart.Store, debounce time.Duration, out io.Writer, logger *slog.Logger) *App {
	return &App{
		gateway:  gw,
		cart:     store,
		debounce: debounce,
		logger:   logger,
		out:      out,
	}
}

// printf serialises output from the debounced search and the input loop.
func (a *App) printf(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	fmt.Fprintf(a.out, format, args...)
}

// Login exchanges credentials for a saved session.
func (a *App) Login(ctx context.Context, username, password string) error {
	user, err := a.gateway.Login(ctx, username, password)
	if err != nil {
		return describe(err)
	}

	a.printf("Logged in as %s %s (%s)\n", user.FirstName, user.LastName, user.Username)

	return nil
}

// Logout ends the session. The cart is kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gateway.Logout(ctx); err != nil {
		return describe(err)
	}

	a.printf("Logged out\n")

	return nil
}

// WhoAmI prints the session owner.
func (a *App) WhoAmI(ctx context.Context) error {
	info, err := a.gateway.Session(ctx)
	if err != nil {
		return describe(err)
	}

	if !info.Authenticated || info.User == nil {
		a.printf("Not logged in\n")

		return nil
	}

	a.printf("%s %s (%s) <%s>\n", info.User.FirstName, info.User.LastName, info.User.Username, info.User.Email)
	if info.ExpiresAt != nil {
		a.printf("Session expires in %s\n", util.FormatDuration(time.Until(*info.ExpiresAt)))
	}

	return nil
}

// Categories lists the category slugs.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.gateway.Categories(ctx)
	if err != nil {
		return describe(err)
	}

	for _, c := range categories {
		a.printf("%s\n", c)
	}

	return nil
}

// ListOptions are the listing filters given on the command line.
type ListOptions struct {
	Search   string
	Category string
	Sort     string
	Page     int
}

// Products prints one listing page.
func (a *App) Products(ctx context.Context, opts ListOptions) error {
	state := catalog.NewQueryState(a.debounce, nil)
	if opts.Category != "" {
		state.SetCategory(opts.Category)
	}
	if opts.Search != "" {
		state.EditSearch(opts.Search)
		state.FlushSearch()
	}
	if err := state.SetSort(opts.Sort); err != nil {
		return err
	}
	state.SetPage(opts.Page)

	return a.showPage(ctx, state.Query(), state.Page())
}

// Product prints one product.
func (a *App) Product(ctx context.Context, id int) error {
	product, err := a.gateway.Product(ctx, id)
	if err != nil {
		return describe(err)
	}

	a.printf("%s", renderProduct(product))

	return nil
}

// ShowCart prints the cart and its badge.
func (a *App) ShowCart() {
	snapshot := a.cart.Snapshot()
	a.printf("%s", renderCart(snapshot))
	a.printf("%s\n", renderBadge(snapshot))
}

// AddToCart fetches product id and adds one unit.
func (a *App) AddToCart(ctx context.Context, id int) error {
	product, err := a.gateway.Product(ctx, id)
	if err != nil {
		return describe(err)
	}

	a.cart.Add(ctx, *product)
	a.logger.Debug("product added to cart", slog.Int("product_id", id))
	a.printf("Added to cart!\n")
	a.printf("%s\n", renderBadge(a.cart.Snapshot()))

	return nil
}

// RemoveFromCart drops the line for id.
func (a *App) RemoveFromCart(ctx context.Context, id int) {
	a.cart.Remove(ctx, id)
	a.printf("%s\n", renderBadge(a.cart.Snapshot()))
}

// SetQuantity sets the quantity of the line for id.
func (a *App) SetQuantity(ctx context.Context, id, quantity int) {
	if quantity <= 0 {
		a.printf("Quantity must be at least 1; use `cart remove` to drop a line\n")
	}
	a.cart.SetQuantity(ctx, id, quantity)
	a.printf("%s\n", renderBadge(a.cart.Snapshot()))
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) {
	a.cart.Clear(ctx)
	a.printf("%s\n", renderBadge(a.cart.Snapshot()))
}

func (a *App) showPage(ctx context.Context, query entity.ProductQuery, page int) error {
	result, err := a.gateway.Products(ctx, query)
	if err != nil {
		return describe(err)
	}

	a.printf("%s", renderPage(result, page))

	return nil
}

// describe turns gateway failures into messages for the terminal.
func describe(err error) error {
	apiErr, ok := errors.Find[*gateway.APIError](err)
	if !ok {
		return err
	}

	if gateway.IsUnauthorized(err) {
		if apiErr.Code == "INVALID_CREDENTIALS" {
			return errors.New(apiErr.Message)
		}

		return ErrNotLoggedIn
	}

	if apiErr.Code == "PRODUCT_NOT_FOUND" {
		return errors.New(apiErr.Message)
	}

	if apiErr.Message != "" {
		if len(apiErr.Details) > 0 {
			return errors.Errorf("%s: %v", apiErr.Message, apiErr.Details)
		}

		return errors.Errorf("%s, please try again", apiErr.Message)
	}

	return err
}
