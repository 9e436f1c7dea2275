package stark

import (
	"sync"
)

// Context captures the constant point table and the generator tables used by
// hashing, message construction and signing.  A Context is immutable after
// creation and safe for concurrent use.
type Context struct {
	table        *PointTable
	ecmultGenCtx *EcmultGenContext
}

var (
	defaultCtx     *Context
	defaultCtxOnce sync.Once
)

// ContextCreate creates a context over the given point table.  Message hashing
// chains two-input hashes, so the table must support at least two inputs.
func ContextCreate(table *PointTable) (*Context, error) {
	if table == nil {
		return nil, makeError(ErrInvalidPointTable, "point table is nil")
	}
	if table.MaxInputs() < 2 {
		return nil, makeError(ErrInvalidPointTable,
			"point table must support at least two hash inputs")
	}
	return &Context{
		table:        table,
		ecmultGenCtx: getGlobalGenContext(),
	}, nil
}

// DefaultContext returns the shared context over the embedded point table.
// It panics if the embedded table is corrupt, which can only happen with a
// broken build.
func DefaultContext() *Context {
	defaultCtxOnce.Do(func() {
		table, err := DefaultPointTable()
		if err != nil {
			panic("embedded point table: " + err.Error())
		}
		if defaultCtx, err = ContextCreate(table); err != nil {
			panic("embedded point table: " + err.Error())
		}
	})
	return defaultCtx
}

// Table returns the context's point table
func (ctx *Context) Table() *PointTable {
	return ctx.table
}
