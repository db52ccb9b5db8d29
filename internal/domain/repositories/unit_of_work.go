package repositories

import (
	"context"
)

// UnitOfWork executes a function within a single transaction so a state
// mutation and the notification rows it produces commit or roll back together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
