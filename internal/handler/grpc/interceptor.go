package grpc

import (
	"context"
	"path"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryInterceptor attaches a request-scoped logger to the call context, then
// logs and counts every finished call with its status code.
func (h *Handler) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	method := path.Base(info.FullMethod)

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("grpc_method", method)
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	var event *zerolog.Event
	switch {
	case err == nil:
		event = l.Info()
	case code == codes.Internal || code == codes.Unknown:
		event = l.Error().Err(err)
	default:
		event = l.Debug().Err(err)
	}
	event.Str("code", code.String()).Dur("duration", time.Since(start)).Send()

	if h.metrics != nil {
		h.metrics.ObserveGRPC(method, code.String())
	}

	return resp, err
}
