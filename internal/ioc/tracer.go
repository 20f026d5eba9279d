package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "stock-alert"

// InitZipkinTracer 未配置 trace.zipkinUrl 时返回 nil，全局使用 noop tracer
func InitZipkinTracer() *trace.TracerProvider {
	type Config struct {
		ZipkinURL string  `yaml:"zipkinUrl"`
		Ratio     float64 `yaml:"ratio"`
	}
	cfg := Config{Ratio: 1}
	err := econf.UnmarshalKey("trace", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.ZipkinURL == "" {
		return nil
	}

	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		panic(err)
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.Ratio))),
		trace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	elog.DefaultLogger.Info("已启用 zipkin 链路追踪", elog.String("url", cfg.ZipkinURL))
	return tp
}
