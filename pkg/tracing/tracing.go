package tracing

import (
	"context"
	"io"

	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"claritel/claritel_go_admin_service/config"
)

// Setup installs the global jaeger tracer. The returned closer flushes
// pending spans; it is a no-op closer when no agent is configured.
func Setup(cfg config.Config) (io.Closer, error) {
	if cfg.JaegerHostPort == "" {
		return io.NopCloser(nil), nil
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.JaegerHostPort,
			LogSpans:           false,
		},
	}

	tracer, closer, err := jcfg.NewTracer()
	if err != nil {
		return nil, err
	}

	opentracing.SetGlobalTracer(tracer)

	return closer, nil
}

func StartSpanFromContext(ctx context.Context, spanName string, req interface{}) (opentracing.Span, context.Context) {
	dbSpan, ctx := opentracing.StartSpanFromContext(ctx, spanName)

	dbSpan.SetTag("request", req)
	dbSpan.LogKV("event", "request", "value", req)
	return dbSpan, ctx
}
