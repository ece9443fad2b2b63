// Package value implements Lox's runtime value domain: the
// closed sum of Number, String, True, False, and Nil, along with the
// truthiness, equality, ordering, and stringification rules that
// operate on it.
package value

import (
	"fmt"
	"strconv"
)

// Kind tags which of the five closed variants a Value holds.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindTrue
	KindFalse
	KindNil
)

// Value is Lox's dynamically-typed runtime value. It is a closed
// sum: every switch over Kind in this package and in internal/interpreter
// is expected to enumerate all five variants.
type Value interface {
	Kind() Kind
	String() string
}

// Number is an IEEE-754 double.
type Number float64

func (Number) Kind() Kind { return KindNumber }

// String returns the shortest round-trip decimal rendering, which is
// what print and assertion diagnostics show.
func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// Str is Lox's immutable text value. Named Str, not String, so
// it doesn't collide with the built-in string type or the Value.String
// method it implements.
type Str string

func (Str) Kind() Kind       { return KindString }
func (s Str) String() string { return string(s) }

type trueValue struct{}

func (trueValue) Kind() Kind     { return KindTrue }
func (trueValue) String() string { return "true" }

type falseValue struct{}

func (falseValue) Kind() Kind     { return KindFalse }
func (falseValue) String() string { return "false" }

type nilValue struct{}

func (nilValue) Kind() Kind     { return KindNil }
func (nilValue) String() string { return "nil" }

// True, False, and Nil are Lox's only instances of their
// respective nullary variants; nothing else should construct them, so
// pointer identity is irrelevant and these can be freely shared.
var (
	True  Value = trueValue{}
	False Value = falseValue{}
	Nil   Value = nilValue{}
)

// Bool lifts a Go bool into Lox's True/False variants.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Truthy projects a Value onto the boolean used by control-flow
// predicates: Nil and False are falsy, True is truthy, non-empty
// strings are truthy. Numbers are truthy only when non-negative; a
// negative number is falsy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nilValue:
		return false
	case falseValue:
		return false
	case trueValue:
		return true
	case Number:
		return float64(val) >= 0.0
	case Str:
		return len(val) > 0
	default:
		panic(fmt.Sprintf("value: unreachable Kind in Truthy: %T", v))
	}
}

// Equal implements same-variant equality: Number==Number and
// String==String compare by value (IEEE equality, so NaN != NaN); True
// and False each equal only themselves; Nil equals only Nil. Any other
// pairing is not an equality Lox defines, signaled by ok=false
// so the caller can raise a TypeError.
func Equal(a, b Value) (equal bool, ok bool) {
	switch av := a.(type) {
	case Number:
		bv, same := b.(Number)
		return same && av == bv, same
	case Str:
		bv, same := b.(Str)
		return same && av == bv, same
	case trueValue:
		_, same := b.(trueValue)
		return same, same || isBoolean(b)
	case falseValue:
		_, same := b.(falseValue)
		return same, same || isBoolean(b)
	case nilValue:
		_, same := b.(nilValue)
		return same, same
	default:
		return false, false
	}
}

func isBoolean(v Value) bool {
	switch v.(type) {
	case trueValue, falseValue:
		return true
	default:
		return false
	}
}

// Ordering is the result of comparing two ordered Values.
type Ordering int

const (
	OrderLess Ordering = iota - 1
	OrderEqual
	OrderGreater
)

// Compare orders two Values: Number×Number compares numerically,
// String×String compares by byte-lexicographic order. Any other
// pairing has no ordering, signaled by ok=false.
func Compare(a, b Value) (order Ordering, ok bool) {
	switch av := a.(type) {
	case Number:
		bv, same := b.(Number)
		if !same {
			return 0, false
		}
		switch {
		case av < bv:
			return OrderLess, true
		case av > bv:
			return OrderGreater, true
		default:
			return OrderEqual, true
		}
	case Str:
		bv, same := b.(Str)
		if !same {
			return 0, false
		}
		switch {
		case av < bv:
			return OrderLess, true
		case av > bv:
			return OrderGreater, true
		default:
			return OrderEqual, true
		}
	default:
		return 0, false
	}
}
