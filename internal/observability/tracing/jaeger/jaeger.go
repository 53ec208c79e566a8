package jaeger

import (
	"context"
	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	conf "github.com/yur1-dev/koka-backend/internal/config"
	"go.uber.org/zap"
)

func Start(ctx context.Context, serviceName string, c conf.JaegerConfig) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  c.Sampler.Type,
			Param: c.Sampler.Param,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           c.Reporter.LogSpans,
			LocalAgentHostPort: c.Reporter.LocalAgentHostPort,
		},
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		zap.L().Error("Failed to create tracer", zap.Error(err))
		return
	}

	opentracing.SetGlobalTracer(tracer)
	zap.L().Info("Tracer started", zap.String("service", serviceName))

	<-ctx.Done()
	if err := closer.Close(); err != nil {
		zap.L().Warn("Error closing tracer", zap.Error(err))
	}
}
