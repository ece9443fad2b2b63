// Package environment implements Lox's lexically scoped,
// nested variable environment: a chain of scopes from innermost
// (current) to outermost (global), with write-through assignment.
package environment

import (
	"github.com/MoMus2000/muslox/internal/loxerr"
	"github.com/MoMus2000/muslox/internal/value"
)

// Environment is one scope in the chain. Parent is a non-owning
// back-reference: a child never outlives the statement that created it
// (the interpreter's Block handling is LIFO), so no cycle can form.
type Environment struct {
	parent *Environment
	values map[string]value.Value
}

// New returns a fresh global scope with no parent.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// PushChild returns a new scope enclosed by e. The interpreter calls
// this on Block entry and discards the result (restoring e as current)
// on Block exit.
func (e *Environment) PushChild() *Environment {
	return &Environment{parent: e, values: make(map[string]value.Value)}
}

// Parent returns e's enclosing scope, or nil at the global scope. The
// interpreter uses this to restore the current scope after a Block
// exits.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define unconditionally inserts or overwrites name in e's own scope
// (never a parent). Redefinition is intentionally silent — the REPL
// relies on this to let `var x = 1;` on one line and another `var x =
// 2;` on a later line coexist without ceremony.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get walks the chain innermost-to-outermost looking for name.
func (e *Environment) Get(name string) (value.Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, loxerr.UndefinedVariable(name)
}

// Assign walks the chain looking for the first scope that already
// binds name and overwrites it there. It never creates a new binding —
// assigning to a name absent from the whole chain is UndefinedVariable.
func (e *Environment) Assign(name string, v value.Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return nil
		}
	}
	return loxerr.UndefinedVariable(name)
}
