package rational

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type binaryOp func(x Rational, y Operand) (Rational, error)

func TestArithmetic(t *testing.T) {
	add, sub, mul, div := binaryOp(Rational.Add), binaryOp(Rational.Sub), binaryOp(Rational.Mul), binaryOp(Rational.Div)

	for idx, tc := range []struct {
		name string
		op   binaryOp
		x    Rational
		y    Operand
		out  Rational
		err  error
	}{
		{"add", add, rat(1, 2), rat(1, 3), rat(5, 6), nil},
		{"add", add, rat(1, 6), rat(1, 3), rat(1, 2), nil},
		{"add", add, rat(-1, 2), rat(1, 2), Zero, nil},
		{"add", add, Zero, rat(3, 7), rat(3, 7), nil},
		{"add", add, rat(maxInt64, 1), rat(-maxInt64, 1), Zero, nil},
		{"add", add, rat(1, maxInt64), rat(1, maxInt64), rat(2, maxInt64), nil},
		{"add", add, rat(maxInt64, 1), Int(1), Zero, ErrOverflow},
		{"add", add, rat(1, maxInt64), rat(1, maxInt64-1), Zero, ErrOverflow},
		{"add", add, rat(-maxInt64, 1), Int(-1), Zero, ErrOutOfRange},

		{"sub", sub, rat(1, 2), rat(1, 3), rat(1, 6), nil},
		{"sub", sub, rat(1, 3), rat(1, 2), rat(-1, 6), nil},
		{"sub", sub, rat(5, 4), rat(5, 4), Zero, nil},
		{"sub", sub, rat(-maxInt64, 1), Int(2), Zero, ErrOverflow},

		{"mul", mul, rat(2, 3), rat(3, 4), rat(1, 2), nil},
		{"mul", mul, rat(-2, 3), rat(3, 4), rat(-1, 2), nil},
		{"mul", mul, rat(-2, 3), rat(-9, 4), rat(3, 2), nil},
		{"mul", mul, rat(5, 7), Zero, Zero, nil},
		{"mul", mul, rat(maxInt64, 2), rat(2, maxInt64), One, nil},
		{"mul", mul, rat(1<<40, 3), rat(3, 1<<20), rat(1<<20, 1), nil},
		{"mul", mul, rat(maxInt64, 1), Int(2), Zero, ErrOverflow},
		{"mul", mul, rat(1, maxInt64), rat(1, 2), Zero, ErrOverflow},

		{"div", div, rat(1, 2), rat(1, 4), rat(2, 1), nil},
		{"div", div, rat(-3, 4), rat(3, 8), rat(-2, 1), nil},
		{"div", div, rat(3, 4), rat(-3, 8), rat(-2, 1), nil},
		{"div", div, Zero, rat(5, 1), Zero, nil},
		{"div", div, rat(1, 2), Zero, Zero, ErrInvalidArgument},
		{"div", div, rat(maxInt64, 1), rat(1, 2), Zero, ErrOverflow},

		// Mixed operands go through ToRational.
		{"add", add, rat(1, 2), Int(1), rat(3, 2), nil},
		{"add", add, rat(1, 2), Float(0.25), rat(3, 4), nil},
		{"add", add, rat(1, 2), Text("1/3"), rat(5, 6), nil},
		{"mul", mul, rat(1, 2), Text(" -4 "), rat(-2, 1), nil},
		{"add", add, rat(1, 2), Float(math.NaN()), Zero, ErrInvalidArgument},
		{"add", add, rat(1, 2), Int(minInt64), Zero, ErrOutOfRange},
		{"add", add, rat(1, 2), Text("x"), Zero, ErrInvalidArgument},
		{"add", add, rat(1, 2), nil, Zero, ErrInvalidArgument},
	} {
		t.Run(fmt.Sprintf("%d/%s(%s,%v)", idx, tc.name, tc.x, tc.y), func(t *testing.T) {
			out, err := tc.op(tc.x, tc.y)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, out, "found %s, expected %s", out, tc.out)
		})
	}
}

func TestNegAbsInv(t *testing.T) {
	for idx, tc := range []struct {
		in, neg, abs, inv Rational
	}{
		{rat(2, 3), rat(-2, 3), rat(2, 3), rat(3, 2)},
		{rat(-2, 3), rat(2, 3), rat(2, 3), rat(-3, 2)},
		{rat(-5, 1), rat(5, 1), rat(5, 1), rat(-1, 5)},
		{rat(1, maxInt64), rat(-1, maxInt64), rat(1, maxInt64), rat(maxInt64, 1)},
		{rat(-maxInt64, 1), rat(maxInt64, 1), rat(maxInt64, 1), rat(-1, maxInt64)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			require.Equal(t, tc.neg, tc.in.Neg())
			require.Equal(t, tc.abs, tc.in.Abs())
			inv, err := tc.in.Inv()
			require.NoError(t, err)
			require.Equal(t, tc.inv, inv)
			require.Positive(t, inv.Den())
		})
	}

	require.Equal(t, Zero, Zero.Neg())
	require.Equal(t, Zero, Zero.Abs())
	_, err := Zero.Inv()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPow(t *testing.T) {
	for idx, tc := range []struct {
		in  Rational
		exp int64
		out Rational
		err error
	}{
		{rat(2, 3), 3, rat(8, 27), nil},
		{rat(2, 3), -2, rat(9, 4), nil},
		{rat(-2, 3), -3, rat(-27, 8), nil},
		{rat(-2, 3), 2, rat(4, 9), nil},
		{rat(7, 9), 1, rat(7, 9), nil},
		{rat(7, 9), 0, One, nil},
		{Zero, 0, One, nil},
		{Zero, 5, Zero, nil},
		{rat(2, 1), 62, rat(1<<62, 1), nil},
		{rat(1, 2), -62, rat(1<<62, 1), nil},
		{rat(-1, 1), math.MinInt64, One, nil},
		{rat(-1, 1), math.MaxInt64, rat(-1, 1), nil},

		{Zero, -1, Zero, ErrInvalidArgument},
		{rat(1, 2), 63, Zero, ErrOverflow},
		{rat(3, 1), 40, Zero, ErrOverflow},
		{rat(2, 1), math.MinInt64, Zero, ErrOverflow},
		{rat(-2, 1), 63, Zero, ErrOutOfRange},
	} {
		t.Run(fmt.Sprintf("%d/%s**%d", idx, tc.in, tc.exp), func(t *testing.T) {
			out, err := tc.in.Pow(tc.exp)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, out)
		})
	}
}

func TestFloorCeilRound(t *testing.T) {
	for _, tc := range []struct {
		in                 Rational
		floor, ceil, round int64
	}{
		{rat(7, 2), 3, 4, 4},
		{rat(-7, 2), -4, -3, -4},
		{rat(5, 2), 2, 3, 3},
		{rat(-5, 2), -3, -2, -3},
		{rat(7, 3), 2, 3, 2},
		{rat(-7, 3), -3, -2, -2},
		{rat(8, 3), 2, 3, 3},
		{rat(1, 2), 0, 1, 1},
		{rat(-1, 2), -1, 0, -1},
		{rat(1, 3), 0, 1, 0},
		{rat(3, 1), 3, 3, 3},
		{rat(-3, 1), -3, -3, -3},
		{Zero, 0, 0, 0},
		{rat(maxInt64, 2), maxInt64 / 2, maxInt64/2 + 1, maxInt64/2 + 1},
		{rat(-maxInt64, 2), -maxInt64/2 - 1, -maxInt64 / 2, -maxInt64/2 - 1},
		{rat(maxInt64, 1), maxInt64, maxInt64, maxInt64},
		{rat(maxInt64-1, maxInt64), 0, 1, 1},
	} {
		t.Run(tc.in.String(), func(t *testing.T) {
			require.Equal(t, tc.floor, tc.in.Floor(), "floor")
			require.Equal(t, tc.ceil, tc.in.Ceil(), "ceil")
			require.Equal(t, tc.round, tc.in.Round(), "round")
		})
	}
}
