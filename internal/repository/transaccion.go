package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor runs fn inside a database transaction. Every repository call
// made with the ctx passed to fn joins that transaction; a returned error
// rolls it back.
type Transactor interface {
	EnTransaccion(ctx context.Context, fn func(ctx context.Context) error) error
}

type gormTransactor struct{ db *gorm.DB }

func NewTransactor(db *gorm.DB) Transactor { return &gormTransactor{db: db} }

func (t *gormTransactor) EnTransaccion(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested calls reuse the outer transaction.
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conexion returns the transaction carried by ctx, or db.
func conexion(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
