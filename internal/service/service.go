// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, enforces business rules and calls
// repository methods to read and persist data.
package service

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerFromContext prefers the request-scoped logger stored by the
// context enhancer middleware and falls back to the service logger.
func loggerFromContext(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
