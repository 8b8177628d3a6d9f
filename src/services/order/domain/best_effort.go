package domain

import (
	"context"
	"fmt"
	"go-order-relay/src/infrastructure/log"
)

// BestEffort runs fn and discards its failure. Errors and panics are logged,
// never returned.
func BestEffort(ctx context.Context, logger log.Logger, operation string, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Exception(ctx, operation+" panicked", fmt.Errorf("panic: %v", r))
		}
	}()

	if err := fn(ctx); err != nil {
		logger.WarnWithExtra(ctx, operation+" failed", map[string]any{"Exception": err.Error()})
	}
}
