package repository

import "context"

type strongReadKey struct{}

// WithStrongRead marks ctx so reads go to the primary instead of a replica.
// Use it for reads that must observe a write committed moments earlier.
func WithStrongRead(ctx context.Context) context.Context {
	return context.WithValue(ctx, strongReadKey{}, true)
}

// IsStrongRead reports whether ctx was marked by WithStrongRead.
func IsStrongRead(ctx context.Context) bool {
	v, _ := ctx.Value(strongReadKey{}).(bool)

	return v
}
