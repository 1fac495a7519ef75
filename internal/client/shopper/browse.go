package shopper

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"storefront/internal/client/catalog"
	"storefront/internal/domain/entity"
)

const browseHelp = `Type to search. Commands:
  /category <slug>   filter by category (clears the search)
  /sort <field-order> e.g. price-asc, empty to clear
  /page <n>          go to page n
  /next, /prev       move one page
  /add <id>          add one unit to the cart
  /cart              show the cart
  /quit              leave
`

// Browse runs an interactive listing session. Plain text lines are search
// edits and go through the debouncer; slash commands apply immediately.
func (a *App) Browse(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var state *catalog.QueryState
	state = catalog.NewQueryState(a.debounce, func(query entity.ProductQuery) {
		if err := a.showPage(ctx, query, state.Page()); err != nil {
			a.printf("Error: %v\n", err)
		}
	})
	defer state.CancelSearch()

	unsubscribe := a.cart.Subscribe(func(c entity.Cart) {
		a.printf("%s\n", renderBadge(c))
	})
	defer unsubscribe()

	a.printf("%s", browseHelp)
	if err := a.showPage(ctx, state.Query(), state.Page()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "/") {
			state.EditSearch(line)

			continue
		}

		if quit := a.browseCommand(ctx, state, line); quit {
			return nil
		}
	}

	// Input closed while a search edit was still pending.
	state.FlushSearch()

	return scanner.Err()
}

func (a *App) browseCommand(ctx context.Context, state *catalog.QueryState, line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/quit", "/q":
		return true
	case "/category":
		state.SetCategory(arg)
	case "/sort":
		if err := state.SetSort(arg); err != nil {
			a.printf("Error: %v\n", err)
		}
	case "/page":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			a.printf("Error: page must be a positive integer\n")

			return false
		}
		state.SetPage(n)
	case "/next":
		state.SetPage(state.Page() + 1)
	case "/prev":
		state.SetPage(state.Page() - 1)
	case "/add":
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			a.printf("Error: id must be a positive integer\n")

			return false
		}
		product, err := a.gateway.Product(ctx, id)
		if err != nil {
			a.printf("Error: %v\n", describe(err))

			return false
		}
		a.cart.Add(ctx, *product)
		a.printf("Added to cart!\n")
	case "/cart":
		a.printf("%s", renderCart(a.cart.Snapshot()))
	case "/help":
		a.printf("%s", browseHelp)
	default:
		a.printf("Unknown command %s, try /help\n", name)
	}

	return false
}
