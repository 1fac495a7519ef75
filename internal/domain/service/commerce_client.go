package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// Resources proxied from the commerce API.
const (
	ResourceLogin      = "login"
	ResourceCategories = "categories"
	ResourceProduct    = "product"
	ResourceProducts   = "products"
)

// Credentials is the login payload forwarded to the commerce API.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is the commerce API answer to a successful login.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         entity.User
}

// CachePolicy describes how long a proxied resource may be reused.
// A zero TTL means the response is never cached.
type CachePolicy struct {
	Resource string
	TTL      time.Duration
}

// CommerceClient defines the calls made to the upstream commerce API.
// Every call except Authenticate attaches token as a bearer credential.
type CommerceClient interface {
	// Authenticate exchanges credentials for tokens and a profile. Never cached.
	Authenticate(ctx context.Context, creds Credentials) (*AuthResult, error)

	// Categories lists category slugs.
	Categories(ctx context.Context, token string) ([]string, error)

	// Product fetches one product by id.
	Product(ctx context.Context, token string, id int) (*entity.Product, error)

	// Products lists, searches or filters products according to query.
	Products(ctx context.Context, token string, query entity.ProductQuery) (*entity.ProductPage, error)

	// Policy returns the cache policy applied to resource.
	Policy(resource string) CachePolicy
}
