// Package analyzer is the type engine: a single in-order AST walk that
// assigns every node an inferred typesystem.Type and records it in a
// TypeMap, consulting a symbols.Index for call/new resolution and a
// lexical Scope stack for variable types. This is a flat structural
// pass rather than a full Hindley-Milner unification engine: generic
// instantiation and full semantic validation are out of scope, so
// there is no unifier, substitution, or constraint solver here.
package analyzer

import "github.com/gophp-lang/corephp/internal/typesystem"

// Scope is one lexical variable-type binding frame. Function boundaries
// push a fresh root scope; nested blocks share their parent's scope
// rather than pushing their own, since the source language does not
// block-scope variables.
type Scope struct {
	variables map[string]typesystem.Type
	outer     *Scope
}

func newScope(outer *Scope) *Scope {
	return &Scope{variables: map[string]typesystem.Type{}, outer: outer}
}

// Lookup searches this scope and its outer chain.
func (s *Scope) Lookup(name string) (typesystem.Type, bool) {
	for sc := s; sc != nil; sc = sc.outer {
		if t, ok := sc.variables[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// Set binds name in this scope (not an outer one).
func (s *Scope) Set(name string, t typesystem.Type) {
	s.variables[name] = t
}

// TypeMap is node-id → inferred Type; an unrecorded id reads as Mixed.
type TypeMap map[uint32]typesystem.Type

// Get returns the recorded type for id, or Mixed if none was recorded.
func (m TypeMap) Get(id uint32) typesystem.Type {
	if t, ok := m[id]; ok {
		return t
	}
	return typesystem.Mixed
}
