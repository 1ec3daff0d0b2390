package symbols_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gophp-lang/corephp/internal/symbols"
	"github.com/gophp-lang/corephp/internal/typesystem"
)

func TestRegisterAndGetFunction(t *testing.T) {
	idx := symbols.New()
	idx.RegisterFunction(&symbols.FunctionSymbol{Name: "strlen", ReturnType: typesystem.Integer})

	sym, ok := idx.GetFunction("strlen")
	assert.True(t, ok)
	assert.Equal(t, typesystem.Integer, sym.ReturnType)

	_, ok = idx.GetFunction("missing_func")
	assert.False(t, ok)
}

func TestRegisterClassReplacesExistingEntry(t *testing.T) {
	idx := symbols.New()
	idx.RegisterClass(&symbols.ClassSymbol{Name: "Widget", Parent: "Base"})
	idx.RegisterClass(&symbols.ClassSymbol{Name: "Widget", Parent: "OtherBase"})

	sym, ok := idx.GetClass("Widget")
	assert.True(t, ok)
	assert.Equal(t, "OtherBase", sym.Parent)
}

func TestIndexIsSafeForConcurrentReadsAndWrites(t *testing.T) {
	idx := symbols.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			idx.RegisterFunction(&symbols.FunctionSymbol{Name: "f"})
		}(i)
		go func() {
			defer wg.Done()
			idx.GetFunction("f")
		}()
	}
	wg.Wait()
}
