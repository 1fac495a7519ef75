package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"storefront/internal/client/shopper"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login:      Start a session
// - logout:     End the session (the cart is kept)
// - whoami:     Show the session owner
// - categories: List categories
// - products:   List, search, filter and sort products
// - product:    Show one product
// - cart:       show | add | remove | qty | clear
// - browse:     Interactive listing with debounced search

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	productsCmd := flag.NewFlagSet("products", flag.ExitOnError)
	productCmd := flag.NewFlagSet("product", flag.ExitOnError)
	cartCmd := flag.NewFlagSet("cart", flag.ExitOnError)

	// login parameters
	loginUser := loginCmd.String("u", "", "Username")
	loginPass := loginCmd.String("p", "", "Password")

	// products parameters
	productsSearch := productsCmd.String("search", "", "Search text (takes priority over category)")
	productsCategory := productsCmd.String("category", "", "Category slug")
	productsSort := productsCmd.String("sort", "", "Sort as <field>-<asc|desc>, e.g. price-asc")
	productsPage := productsCmd.Int("page", 1, "Page number, 12 products per page")

	// product parameters
	productID := productCmd.Int("id", 0, "Product id")

	// cart parameters
	cartID := cartCmd.Int("id", 0, "Product id")
	cartQty := cartCmd.Int("n", 1, "Quantity for qty")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	flags := shopperFlags{
		Login: loginFlags{
			cmd:      loginCmd,
			username: loginUser,
			password: loginPass,
		},
		Products: productsFlags{
			cmd:      productsCmd,
			search:   productsSearch,
			category: productsCategory,
			sort:     productsSort,
			page:     productsPage,
		},
		Product: productFlags{
			cmd: productCmd,
			id:  productID,
		},
		Cart: cartFlags{
			cmd: cartCmd,
			id:  cartID,
			qty: cartQty,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type shopperFlags struct {
	Login    loginFlags
	Products productsFlags
	Product  productFlags
	Cart     cartFlags
}

type loginFlags struct {
	cmd      *flag.FlagSet
	username *string
	password *string
}

type productsFlags struct {
	cmd      *flag.FlagSet
	search   *string
	category *string
	sort     *string
	page     *int
}

type productFlags struct {
	cmd *flag.FlagSet
	id  *int
}

type cartFlags struct {
	cmd *flag.FlagSet
	id  *int
	qty *int
}

func runSubcommand(ctx context.Context, flags *shopperFlags) error {
	switch os.Args[1] {
	case "login":
		return handleLogin(ctx, flags)
	case "logout":
		return withApp(ctx, func(a *shopper.App) error { return a.Logout(ctx) })
	case "whoami":
		return withApp(ctx, func(a *shopper.App) error { return a.WhoAmI(ctx) })
	case "categories":
		return withApp(ctx, func(a *shopper.App) error { return a.Categories(ctx) })
	case "products":
		return handleProducts(ctx, flags)
	case "product":
		return handleProduct(ctx, flags)
	case "cart":
		return handleCart(ctx, flags)
	case "browse":
		return withApp(ctx, func(a *shopper.App) error { return a.Browse(ctx, os.Stdin) })
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleLogin(ctx context.Context, flags *shopperFlags) error {
	if err := flags.Login.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	return withApp(ctx, func(a *shopper.App) error {
		return a.Login(ctx, *flags.Login.username, *flags.Login.password)
	})
}

func handleProducts(ctx context.Context, flags *shopperFlags) error {
	if err := flags.Products.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse products flags")
	}

	return withApp(ctx, func(a *shopper.App) error {
		return a.Products(ctx, listOptions(flags.Products))
	})
}

func handleProduct(ctx context.Context, flags *shopperFlags) error {
	if err := flags.Product.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse product flags")
	}

	if *flags.Product.id <= 0 {
		return errors.New("-id must be a positive integer")
	}

	return withApp(ctx, func(a *shopper.App) error { return a.Product(ctx, *flags.Product.id) })
}

func handleCart(ctx context.Context, flags *shopperFlags) error {
	action := "show"
	args := os.Args[2:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		action, args = args[0], args[1:]
	}

	if err := flags.Cart.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse cart flags")
	}

	id := *flags.Cart.id
	needsID := action == "add" || action == "remove" || action == "qty"
	if needsID && id <= 0 {
		return errors.Errorf("cart %s needs -id", action)
	}

	return withApp(ctx, func(a *shopper.App) error {
		switch action {
		case "show":
			a.ShowCart()
		case "add":
			return a.AddToCart(ctx, id)
		case "remove":
			a.RemoveFromCart(ctx, id)
		case "qty":
			a.SetQuantity(ctx, id, *flags.Cart.qty)
		case "clear":
			a.ClearCart(ctx)
		default:
			return errors.Errorf("unknown cart action %q", action)
		}

		return nil
	})
}

func printUsage() {
	fmt.Println("Usage: shopper <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login -u <username> -p <password>")
	fmt.Println("  logout")
	fmt.Println("  whoami")
	fmt.Println("  categories")
	fmt.Println("  products [-search text] [-category slug] [-sort field-order] [-page n]")
	fmt.Println("  product -id <id>")
	fmt.Println("  cart [show|add -id <id>|remove -id <id>|qty -id <id> -n <qty>|clear]")
	fmt.Println("  browse")
}
