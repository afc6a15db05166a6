package database

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// GormTx runs a unit of work in one SQL transaction. Repositories join it by
// resolving their handle through Conn.
type GormTx struct{ db *gorm.DB }

func NewGormTx(db *gorm.DB) *GormTx { return &GormTx{db: db} }

func (g *GormTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (g *GormTx) Atomic() bool { return true }

// Conn returns the transaction bound to ctx, or db scoped to ctx.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// Sequential runs the unit of work without isolation. Used for MongoDB
// deployments without replica sets; callers compensate on failure.
type Sequential struct{}

func (Sequential) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (Sequential) Atomic() bool { return false }
