package sat

import "fmt"

// Var identifies a Boolean variable. Variables are numbered 1..nVars,
// matching the DIMACS convention; 0 is never a valid variable.
type Var int32

// Literal is a nonzero signed integer: its absolute value identifies a
// Var, its sign the polarity. Zero is reserved as the clause terminator
// in the arena and is never a valid literal.
type Literal int32

// Lit builds the literal for variable v with the given polarity.
func Lit(v Var, positive bool) Literal {
	if positive {
		return Literal(v)
	}
	return Literal(-v)
}

// Var returns the literal's underlying variable.
func (l Literal) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// IsPositive reports whether l asserts its variable, as opposed to its
// negation.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Negate returns the opposite literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int32(l))
}
