package service

import "context"

// ReceiptStorage keeps receipt images referenced by ShoppingLog.ReceiptRef.
type ReceiptStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)
	Delete(ctx context.Context, key string) error
}
