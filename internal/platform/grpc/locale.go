package grpc

import (
	"context"
	"strings"

	"github.com/louisbranch/utility.tools/internal/platform/requestctx"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// LocaleMetadataKey carries the caller's locale tag on outgoing calls.
const LocaleMetadataKey = "x-locale"

// LocaleUnaryClientInterceptor copies the locale stored by requestctx into
// outgoing metadata unless the caller already set one.
func LocaleUnaryClientInterceptor() gogrpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *gogrpc.ClientConn, invoker gogrpc.UnaryInvoker, opts ...gogrpc.CallOption) error {
		return invoker(WithOutgoingLocale(ctx, requestctx.LocaleFromContext(ctx)), method, req, reply, cc, opts...)
	}
}

// WithOutgoingLocale appends locale to the outgoing metadata of ctx.
func WithOutgoingLocale(ctx context.Context, locale string) context.Context {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ctx
	}
	if md, ok := metadata.FromOutgoingContext(ctx); ok && len(md.Get(LocaleMetadataKey)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, LocaleMetadataKey, locale)
}

// LocaleFromIncoming returns the first x-locale value of the incoming call,
// or fallback when absent.
func LocaleFromIncoming(ctx context.Context, fallback string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return fallback
	}
	for _, value := range md.Get(LocaleMetadataKey) {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return fallback
}
