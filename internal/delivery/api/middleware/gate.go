package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/access"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// GateMiddleware redirects navigations the access policy does not allow.
// It must run after SessionMiddleware.
type GateMiddleware struct {
	policy  *access.Policy
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewGateMiddleware creates a new gate middleware
func NewGateMiddleware(policy *access.Policy, m *metrics.Metrics, logger *slog.Logger) *GateMiddleware {
	return &GateMiddleware{
		policy:  policy,
		metrics: m,
		logger:  logger,
	}
}

// Handle applies the policy decision for the request path.
func (m *GateMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		authenticated := deliverycontext.GetSession(c).Authenticated()

		decision := m.policy.Decide(path, authenticated)
		if decision.Action != access.Redirect {
			return next(c)
		}

		ctx := c.Request().Context()
		class := m.policy.Classify(path).String()
		m.metrics.GateRedirect(ctx, class, decision.Target)
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Redirecting navigation",
			slog.String("class", class),
			slog.String("target", decision.Target),
		)

		return c.Redirect(http.StatusFound, decision.Target)
	}
}
