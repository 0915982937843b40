package rational

import "fmt"

// Operand is anything a binary operation accepts on its right-hand side:
// a Rational, an Int, a Float or a Text literal.
type Operand interface {
	toRational() (Rational, error)
}

type (
	Int   int64
	Float float64
	Text  string
)

func (x Rational) toRational() (Rational, error) { return x, nil }
func (i Int) toRational() (Rational, error)      { return FromInt(int64(i)) }
func (f Float) toRational() (Rational, error)    { return FromFloat64(float64(f)) }
func (s Text) toRational() (Rational, error)     { return Parse(string(s)) }

// ToRational normalizes an operand: a Rational is returned as is, an Int or
// Float goes through FromInt or FromFloat64 and a Text through Parse.
func ToRational(v Operand) (Rational, error) {
	if v == nil {
		return Rational{}, fmt.Errorf("%w: nil operand", ErrInvalidArgument)
	}
	return v.toRational()
}
