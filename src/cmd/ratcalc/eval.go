package main

import (
	"errors"
	"fmt"
	"strconv"

	"ratnum/src/numeric/rational"
)

var errUsage = errors.New("usage")

type op struct {
	arity int
	run   func(x rational.Rational, y string) (string, error)
}

func unary(f func(rational.Rational) (string, error)) op {
	return op{arity: 1, run: func(x rational.Rational, _ string) (string, error) { return f(x) }}
}

func binary(f func(x, y rational.Rational) (string, error)) op {
	return op{arity: 2, run: func(x rational.Rational, y string) (string, error) {
		r, err := rational.Parse(y)
		if err != nil {
			return "", err
		}
		return f(x, r)
	}}
}

func arith(f func(x rational.Rational, y rational.Operand) (rational.Rational, error)) op {
	return binary(func(x, y rational.Rational) (string, error) {
		r, err := f(x, y)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	})
}

func predicate(f func(x, y rational.Rational) bool) op {
	return binary(func(x, y rational.Rational) (string, error) {
		return strconv.FormatBool(f(x, y)), nil
	})
}

func integer(f func(rational.Rational) int64) op {
	return unary(func(x rational.Rational) (string, error) {
		return strconv.FormatInt(f(x), 10), nil
	})
}

var ops = map[string]op{
	"add": arith(rational.Rational.Add),
	"sub": arith(rational.Rational.Sub),
	"mul": arith(rational.Rational.Mul),
	"div": arith(rational.Rational.Div),
	"pow": {arity: 2, run: func(x rational.Rational, y string) (string, error) {
		exp, err := strconv.ParseInt(y, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: exponent %q is not an integer", rational.ErrInvalidArgument, y)
		}
		r, err := x.Pow(exp)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}},
	"cmp": binary(func(x, y rational.Rational) (string, error) {
		return strconv.Itoa(x.Cmp(y)), nil
	}),
	"eq":  predicate(rational.Rational.Eq),
	"lt":  predicate(rational.Rational.Lt),
	"gt":  predicate(rational.Rational.Gt),
	"lte": predicate(rational.Rational.Lte),
	"gte": predicate(rational.Rational.Gte),
	"neg": unary(func(x rational.Rational) (string, error) { return x.Neg().String(), nil }),
	"abs": unary(func(x rational.Rational) (string, error) { return x.Abs().String(), nil }),
	"inv": unary(func(x rational.Rational) (string, error) {
		r, err := x.Inv()
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}),
	"floor": integer(rational.Rational.Floor),
	"ceil":  integer(rational.Rational.Ceil),
	"round": integer(rational.Rational.Round),
	"int":   integer(rational.Rational.Int64),
	"float": unary(func(x rational.Rational) (string, error) {
		return strconv.FormatFloat(x.Float64(), 'g', -1, 64), nil
	}),
}

// Eval applies the named operation to its literal arguments and returns the
// display form of the result.
func Eval(name string, args []string) (string, error) {
	o, ok := ops[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown operation %q", errUsage, name)
	}
	if len(args) != o.arity {
		return "", fmt.Errorf("%w: %s takes %d operand(s), got %d", errUsage, name, o.arity, len(args))
	}
	x, err := rational.Parse(args[0])
	if err != nil {
		return "", err
	}
	y := ""
	if o.arity == 2 {
		y = args[1]
	}
	return o.run(x, y)
}
