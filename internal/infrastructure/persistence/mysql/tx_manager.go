package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager wraps gorm's Transaction. The transaction *gorm.DB travels in
// the context so every repository call inside fn joins the same transaction;
// fn returning an error rolls everything back.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

type txKey struct{}

// Transaction runs fn atomically.
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// getDB returns the transaction DB when the context carries one, the plain
// connection otherwise.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
