package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/billfeed/billfeed/internal/common"
)

// UnaryLogging tags every request with an ID and logs its outcome.
func UnaryLogging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.NewString()
		ctx = common.WithRequestID(ctx, rid)
		start := time.Now()

		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc.failed",
				"method", info.FullMethod,
				"request_id", rid,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc.ok",
			"method", info.FullMethod,
			"request_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, nil
	}
}
