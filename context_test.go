package stark

import (
	"errors"
	"sync"
	"testing"
)

func TestContextCreate(t *testing.T) {
	table, err := DefaultPointTable()
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := ContextCreate(table)
	if err != nil {
		t.Fatalf("ContextCreate: %v", err)
	}
	if ctx.Table() != table {
		t.Error("context should hold the given table")
	}
	if ctx.ecmultGenCtx == nil || !ctx.ecmultGenCtx.initialized {
		t.Error("generator tables should be initialized")
	}
}

func TestContextCreateErrors(t *testing.T) {
	if _, err := ContextCreate(nil); !errors.Is(err, ErrInvalidPointTable) {
		t.Errorf("nil table: expected ErrInvalidPointTable, got %v", err)
	}

	raw := embeddedPairs(t)[:2+hashBitsPerInput]
	small, err := LoadPointTable(encodePairs(t, raw))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ContextCreate(small); !errors.Is(err, ErrInvalidPointTable) {
		t.Errorf("one input table: expected ErrInvalidPointTable, got %v", err)
	}
}

func TestDefaultContextConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	ctxs := make([]*Context, 8)
	for i := range ctxs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctxs[i] = DefaultContext()
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(ctxs); i++ {
		if ctxs[i] != ctxs[0] {
			t.Fatal("DefaultContext should return one shared context")
		}
	}
}
