// Package interpreter evaluates a parsed Lox program: statement
// execution, scope push/pop for blocks, loop/conditional control flow,
// and expression evaluation including short-circuiting logical
// operators.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/MoMus2000/muslox/internal/ast"
	"github.com/MoMus2000/muslox/internal/environment"
	"github.com/MoMus2000/muslox/internal/loxerr"
	"github.com/MoMus2000/muslox/internal/value"
)

// Interpreter holds the mutable execution state: the current (innermost)
// scope and the stream print writes to. A single Interpreter is reused
// across lines in the REPL so variable bindings persist.
type Interpreter struct {
	env    *environment.Environment
	Stdout io.Writer
}

// New returns an Interpreter with a fresh global scope, writing print
// output to os.Stdout.
func New() *Interpreter {
	return &Interpreter{env: environment.New(), Stdout: os.Stdout}
}

// Run executes stmts in program order against the interpreter's current
// scope. The first runtime error (UndefinedVariable, TypeError, or
// AssertionFailed) aborts the remainder of stmts and is returned.
func (in *Interpreter) Run(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, v.String())
		return nil

	case *ast.VarStmt:
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		in.env.Define(s.Name, v)
		return nil

	case *ast.Assert:
		// An error raised while evaluating the assert expression is
		// printed and swallowed rather than propagated; only a clean
		// False result is fatal.
		v, err := in.evaluate(s.Expr)
		if err != nil {
			fmt.Fprintln(in.Stdout, err)
			return nil
		}
		if v == value.False {
			return loxerr.AssertionFailed()
		}
		return nil

	case *ast.Block:
		return in.executeBlock(s.Stmts)

	case *ast.If:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		switch cond {
		case value.True:
			return in.execute(s.Then)
		case value.False:
			if s.Else != nil {
				return in.execute(s.Else)
			}
			return nil
		default:
			return loxerr.Typef("if condition must be a boolean")
		}

	case *ast.While:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		panic(fmt.Sprintf("interpreter: unreachable Statement variant: %T", stmt))
	}
}

// executeBlock creates a child scope, runs stmts against it, and
// restores the enclosing scope on every exit path, error or not.
func (in *Interpreter) executeBlock(stmts []ast.Statement) error {
	outer := in.env
	in.env = outer.PushChild()
	defer func() { in.env = outer }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
