package mcpserver

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// loggingMiddleware logs every incoming method call
func loggingMiddleware(logger zerolog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			start := time.Now()

			result, err := next(ctx, method, req)

			if err != nil {
				logger.Error().
					Err(err).
					Str("method", method).
					Dur("duration", time.Since(start)).
					Msg("MCP call failed")
				return result, err
			}

			logger.Debug().
				Str("method", method).
				Dur("duration", time.Since(start)).
				Msg("MCP call completed")
			return result, nil
		}
	}
}
