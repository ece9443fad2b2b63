package interpreter

import (
	"strings"

	"github.com/MoMus2000/muslox/internal/ast"
	"github.com/MoMus2000/muslox/internal/loxerr"
	"github.com/MoMus2000/muslox/internal/token"
	"github.com/MoMus2000/muslox/internal/value"
)

// evaluate dispatches one case per ast.Expression variant and returns
// the expression's value or the first runtime error underneath it.
func (in *Interpreter) evaluate(e ast.Expression) (value.Value, error) {
	switch ex := e.(type) {
	case *ast.Literal:
		return ex.Value, nil

	case *ast.Grouping:
		return in.evaluate(ex.Inner)

	case *ast.Var:
		return in.env.Get(ex.Name)

	case *ast.Assign:
		v, err := in.evaluate(ex.Value)
		if err != nil {
			return nil, err
		}
		if err := in.env.Assign(ex.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Unary:
		return in.evalUnary(ex)

	case *ast.Logical:
		return in.evalLogical(ex)

	case *ast.Binary:
		return in.evalBinary(ex)

	default:
		panic("interpreter: unreachable Expression variant")
	}
}

func (in *Interpreter) evalUnary(ex *ast.Unary) (value.Value, error) {
	right, err := in.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, loxerr.Typef("operand of unary '-' must be a number, got %s", kindName(right))
		}
		return -n, nil
	case token.Bang:
		return value.Bool(!value.Truthy(right)), nil
	default:
		panic("interpreter: unreachable unary operator")
	}
}

// evalLogical implements short-circuiting and/or that normalize to
// True/False rather than returning the last-evaluated operand. The
// right operand is never evaluated once the left operand's truthiness
// determines the result.
func (in *Interpreter) evalLogical(ex *ast.Logical) (value.Value, error) {
	left, err := in.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.And:
		if !value.Truthy(left) {
			return value.False, nil
		}
	case token.Or:
		if value.Truthy(left) {
			return value.True, nil
		}
	default:
		panic("interpreter: unreachable logical operator")
	}

	right, err := in.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}
	return value.Bool(value.Truthy(right)), nil
}

func (in *Interpreter) evalBinary(ex *ast.Binary) (value.Value, error) {
	left, err := in.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.Plus:
		return evalPlus(left, right)
	case token.Minus, token.Star, token.Slash:
		return evalArith(ex.Op.Kind, left, right)
	case token.Less, token.LessEqual, token.Greater, token.GreaterEqual:
		return evalOrder(ex.Op.Kind, left, right)
	case token.EqualEqual, token.BangEqual:
		return evalEquality(ex.Op.Kind, left, right)
	default:
		panic("interpreter: unreachable binary operator")
	}
}

// evalPlus handles `+`'s two domains: Number+Number (sum) and
// String+String (concatenation). String*Number-style repetition is
// handled separately by evalArith's Star case — see there.
func evalPlus(left, right value.Value) (value.Value, error) {
	if ls, lok := left.(value.Str); lok {
		if rs, rok := right.(value.Str); rok {
			return ls + rs, nil
		}
	}
	if ln, lok := left.(value.Number); lok {
		if rn, rok := right.(value.Number); rok {
			return ln + rn, nil
		}
	}
	return nil, loxerr.Typef("'+' requires two numbers or two strings, got %s and %s", kindName(left), kindName(right))
}

// evalArith handles `-`, `*`, `/` on two Numbers, plus the special
// String * Number repetition rule: a string repeated ⌊n⌋ times,
// clamped to 0 for negative or NaN counts.
func evalArith(op token.Kind, left, right value.Value) (value.Value, error) {
	if op == token.Star {
		if s, ok := left.(value.Str); ok {
			if n, ok := right.(value.Number); ok {
				return repeatString(s, n), nil
			}
		}
		if s, ok := right.(value.Str); ok {
			if n, ok := left.(value.Number); ok {
				return repeatString(s, n), nil
			}
		}
	}

	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return nil, loxerr.Typef("arithmetic operator requires two numbers, got %s and %s", kindName(left), kindName(right))
	}

	switch op {
	case token.Minus:
		return ln - rn, nil
	case token.Star:
		return ln * rn, nil
	case token.Slash:
		return ln / rn, nil // division by zero yields IEEE inf/nan, no trap
	default:
		panic("interpreter: unreachable arithmetic operator")
	}
}

// repeatString repeats s ⌊n⌋ times; negative or NaN counts yield the
// empty string rather than erroring.
func repeatString(s value.Str, n value.Number) value.Value {
	f := float64(n)
	if f != f || f < 0 { // f != f is the NaN check
		return value.Str("")
	}
	count := int(f) // truncates toward zero
	return value.Str(strings.Repeat(string(s), count))
}

func evalOrder(op token.Kind, left, right value.Value) (value.Value, error) {
	order, ok := value.Compare(left, right)
	if !ok {
		return nil, loxerr.Typef("comparison requires two numbers or two strings, got %s and %s", kindName(left), kindName(right))
	}

	switch op {
	case token.Less:
		return value.Bool(order == value.OrderLess), nil
	case token.LessEqual:
		return value.Bool(order != value.OrderGreater), nil
	case token.Greater:
		return value.Bool(order == value.OrderGreater), nil
	case token.GreaterEqual:
		return value.Bool(order != value.OrderLess), nil
	default:
		panic("interpreter: unreachable comparison operator")
	}
}

func evalEquality(op token.Kind, left, right value.Value) (value.Value, error) {
	eq, ok := value.Equal(left, right)
	if !ok {
		return nil, loxerr.Typef("'==' requires matching types, got %s and %s", kindName(left), kindName(right))
	}
	if op == token.BangEqual {
		return value.Bool(!eq), nil
	}
	return value.Bool(eq), nil
}

func kindName(v value.Value) string {
	switch v.Kind() {
	case value.KindNumber:
		return "number"
	case value.KindString:
		return "string"
	case value.KindTrue, value.KindFalse:
		return "boolean"
	case value.KindNil:
		return "nil"
	default:
		return "value"
	}
}
