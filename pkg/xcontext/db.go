package xcontext

import (
	"context"

	"gorm.io/gorm"
)

// dbTx is shared by every context derived from the one that began the
// transaction, so a commit is seen by deferred rollbacks holding older copies.
type dbTx struct {
	tx *gorm.DB
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the running transaction if any, otherwise the database handle.
func DB(ctx context.Context) *gorm.DB {
	if t, ok := ctx.Value(dbTxKey{}).(*dbTx); ok && t.tx != nil {
		return t.tx
	}

	return ctx.Value(dbKey{}).(*gorm.DB).WithContext(ctx)
}

// WithDBTransaction begins a transaction. Every repository call made with the
// returned context runs inside it.
func WithDBTransaction(ctx context.Context) context.Context {
	tx := ctx.Value(dbKey{}).(*gorm.DB).WithContext(ctx).Begin()
	return context.WithValue(ctx, dbTxKey{}, &dbTx{tx: tx})
}

// WithCommitDBTransaction commits the running transaction. The context is left
// without a transaction whatever the result.
func WithCommitDBTransaction(ctx context.Context) (context.Context, error) {
	t, ok := ctx.Value(dbTxKey{}).(*dbTx)
	if !ok || t.tx == nil {
		return ctx, nil
	}

	err := t.tx.Commit().Error
	t.tx = nil
	return ctx, err
}

// WithRollbackDBTransaction rollbacks the running transaction. It is a no-op
// after a commit, so it is safe to defer.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	if t, ok := ctx.Value(dbTxKey{}).(*dbTx); ok && t.tx != nil {
		t.tx.Rollback()
		t.tx = nil
	}

	return ctx
}
