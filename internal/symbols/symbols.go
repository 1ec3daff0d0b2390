// Package symbols is the symbol index consulted by the type engine: an
// already-populated store of function/class reflections exposing return
// types and existence queries, treated as an external collaborator rather
// than something the parser or type engine builds itself. The
// concurrency-safe map shape is trimmed down to the flat read-only lookup
// this system's inference pass needs, without the type aliases, trait
// instances, or constraint dictionaries a full module symbol table would
// carry.
package symbols

import (
	"sync"

	"github.com/gophp-lang/corephp/internal/typesystem"
)

// FunctionSymbol is one indexed function's signature, as far as the type
// engine needs it.
type FunctionSymbol struct {
	Name       string
	ReturnType typesystem.Type
	ParamTypes []typesystem.Type
}

// ClassSymbol is one indexed class's minimal reflection.
type ClassSymbol struct {
	Name    string
	Parent  string
	Methods map[string]*FunctionSymbol
}

// Index is a read-only (after population), concurrency-safe map of
// resolved function/class names to their reflections.
type Index struct {
	mu        sync.RWMutex
	functions map[string]*FunctionSymbol
	classes   map[string]*ClassSymbol
}

// New builds an empty Index.
func New() *Index {
	return &Index{functions: map[string]*FunctionSymbol{}, classes: map[string]*ClassSymbol{}}
}

// RegisterFunction adds or replaces a function entry; used by callers to
// pre-populate the index (e.g. from a prelude of built-in declarations)
// before running the type engine.
func (idx *Index) RegisterFunction(sym *FunctionSymbol) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.functions[sym.Name] = sym
}

// RegisterClass adds or replaces a class entry.
func (idx *Index) RegisterClass(sym *ClassSymbol) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.classes[sym.Name] = sym
}

// GetFunction looks up a function by its fully-qualified name.
func (idx *Index) GetFunction(name string) (*FunctionSymbol, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	sym, ok := idx.functions[name]
	return sym, ok
}

// GetClass looks up a class by its fully-qualified name.
func (idx *Index) GetClass(name string) (*ClassSymbol, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	sym, ok := idx.classes[name]
	return sym, ok
}
