package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider       *metric.MeterProvider
	meter               otelmetric.Meter
	submissionCounter   otelmetric.Int64Counter
	notificationCounter otelmetric.Int64Counter
	gateCounter         otelmetric.Int64Counter
	requestDuration     otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	submissionCounter, _ := meter.Int64Counter(
		"submissions.processed",
		otelmetric.WithDescription("Number of form submissions processed"),
	)

	notificationCounter, _ := meter.Int64Counter(
		"notifications.dispatched",
		otelmetric.WithDescription("Number of notification deliveries attempted"),
	)

	gateCounter, _ := meter.Int64Counter(
		"gates.checked",
		otelmetric.WithDescription("Number of captcha and OTP gate checks"),
	)

	requestDuration, _ := meter.Float64Histogram(
		"requests.duration",
		otelmetric.WithDescription("Request handling duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:       provider,
		meter:               meter,
		submissionCounter:   submissionCounter,
		notificationCounter: notificationCounter,
		gateCounter:         gateCounter,
		requestDuration:     requestDuration,
	}
}

func (o *Observability) RecordSubmission(ctx context.Context, formType, outcome string) {
	if o != nil && o.submissionCounter != nil {
		o.submissionCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("form", formType),
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) RecordNotification(ctx context.Context, channel, outcome string) {
	if o != nil && o.notificationCounter != nil {
		o.notificationCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("channel", channel),
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) RecordGateCheck(ctx context.Context, gate, outcome string) {
	if o != nil && o.gateCounter != nil {
		o.gateCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("gate", gate),
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) RecordRequestDuration(ctx context.Context, route string, duration time.Duration, status int) {
	if o != nil && o.requestDuration != nil {
		o.requestDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("route", route),
			attribute.Int("status", status),
		))
	}
}

func (o *Observability) Shutdown() {
	if o != nil && o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
