package interfaces

import "context"

// CleanupGuard decides which records the suite may destroy
type CleanupGuard interface {
	// AllowDelete reports whether the record identified by email may be deleted
	AllowDelete(ctx context.Context, email string) bool
}
