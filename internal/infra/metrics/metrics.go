// Package metrics exposes the gateway's OpenTelemetry instruments.
package metrics

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/fx"
)

const (
	meterName       = "storefront"
	defaultInterval = 10 * time.Second
)

// Metrics holds the gateway instruments
type Metrics struct {
	upstreamRequests metric.Int64Counter
	upstreamDuration metric.Float64Histogram
	cacheHits        metric.Int64Counter
	cacheMisses      metric.Int64Counter
	gateRedirects    metric.Int64Counter
}

// Params holds dependencies for Metrics, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the meter provider. Without an enabled exporter the provider has
// no reader, so recording is cheap and nothing leaves the process.
func New(params Params) (*Metrics, error) {
	provider, err := newProvider(context.Background(), params.Config)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Shutting down meter provider")

			return errors.WithStack(provider.Shutdown(ctx))
		},
	})

	return NewWithProvider(provider)
}

func newProvider(ctx context.Context, cfg *config.Config) (*sdkmetric.MeterProvider, error) {
	res := resource.NewSchemaless(
		semconv.ServiceName(cfg.Env.ServiceName),
		attribute.String("deployment.environment", cfg.Env.Env),
	)

	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return sdkmetric.NewMeterProvider(sdkmetric.WithResource(res)), nil
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Metrics.Endpoint),
		otlpmetrichttp.WithURLPath("/v1/metrics"),
	}
	if cfg.Metrics.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create OTLP metric exporter")
	}

	interval := cfg.Metrics.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	), nil
}

// NewWithProvider creates the instruments on provider.
func NewWithProvider(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(meterName)

	upstreamRequests, err := meter.Int64Counter(
		"storefront.upstream.requests",
		metric.WithDescription("Requests sent to the commerce API"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create upstream requests counter")
	}

	upstreamDuration, err := meter.Float64Histogram(
		"storefront.upstream.duration",
		metric.WithDescription("Commerce API request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create upstream duration histogram")
	}

	cacheHits, err := meter.Int64Counter(
		"storefront.cache.hits",
		metric.WithDescription("Proxied responses served from cache"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create cache hits counter")
	}

	cacheMisses, err := meter.Int64Counter(
		"storefront.cache.misses",
		metric.WithDescription("Proxied responses fetched from upstream"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create cache misses counter")
	}

	gateRedirects, err := meter.Int64Counter(
		"storefront.gate.redirects",
		metric.WithDescription("Navigations redirected by the session gate"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create gate redirects counter")
	}

	return &Metrics{
		upstreamRequests: upstreamRequests,
		upstreamDuration: upstreamDuration,
		cacheHits:        cacheHits,
		cacheMisses:      cacheMisses,
		gateRedirects:    gateRedirects,
	}, nil
}

// NewNoop returns instruments backed by a reader-less provider.
func NewNoop() *Metrics {
	m, err := NewWithProvider(sdkmetric.NewMeterProvider())
	if err != nil {
		panic(err)
	}

	return m
}

// RecordUpstream records one upstream call. status is 0 on transport failure.
func (m *Metrics) RecordUpstream(ctx context.Context, resource string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("resource", resource),
		attribute.String("status_class", statusClass(status)),
	)
	m.upstreamRequests.Add(ctx, 1, attrs)
	m.upstreamDuration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
}

// CacheHit records a response served from cache.
func (m *Metrics) CacheHit(ctx context.Context, resource string) {
	m.cacheHits.Add(ctx, 1, metric.WithAttributes(attribute.String("resource", resource)))
}

// CacheMiss records a cacheable response that had to be fetched.
func (m *Metrics) CacheMiss(ctx context.Context, resource string) {
	m.cacheMisses.Add(ctx, 1, metric.WithAttributes(attribute.String("resource", resource)))
}

// GateRedirect records a redirect issued for a path class.
func (m *Metrics) GateRedirect(ctx context.Context, class, target string) {
	m.gateRedirects.Add(ctx, 1, metric.WithAttributes(
		attribute.String("class", class),
		attribute.String("target", target),
	))
}

func statusClass(status int) string {
	if status <= 0 {
		return "error"
	}

	return strconv.Itoa(status/100) + "xx"
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
